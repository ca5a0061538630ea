package zotero

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"shelf-gateway/core/utils"
)

// maxChildren caps child listings per item. Real items carry a handful of
// attachments and notes; 50 is the same headroom the source library uses.
const maxChildren = 50

// Attachments lists an item's attachment children, each with a resolved
// download URL.
func (c *client) Attachments(ctx context.Context, itemKey string) ([]Attachment, error) {
	records, err := c.children(ctx, itemKey, "attachment")
	if err != nil {
		return nil, err
	}

	attachments := make([]Attachment, 0, len(records))
	for _, it := range records {
		a := attachmentFromItem(it)
		a.ResolvedURL = c.resolveAttachmentURL(a)
		attachments = append(attachments, a)
	}
	return attachments, nil
}

// Notes lists an item's note children.
func (c *client) Notes(ctx context.Context, itemKey string) ([]Note, error) {
	records, err := c.children(ctx, itemKey, "note")
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(records))
	for _, it := range records {
		notes = append(notes, noteFromItem(it))
	}
	return notes, nil
}

func (c *client) children(ctx context.Context, itemKey, itemType string) ([]Item, error) {
	if !IsItemKey(itemKey) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, itemKey)
	}

	query := url.Values{}
	query.Set("itemType", itemType)
	query.Set("limit", strconv.Itoa(maxChildren))

	body, _, err := c.get(ctx, "items/"+itemKey+"/children", query)
	if err != nil {
		return nil, err
	}

	var records []Item
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode children of %s: %w", itemKey, err)
	}
	return records, nil
}

func attachmentFromItem(it Item) Attachment {
	return Attachment{
		Key:         it.Key,
		ParentItem:  utils.ToString(it.Data["parentItem"]),
		ContentType: utils.ToString(it.Data["contentType"]),
		Filename:    utils.ToString(it.Data["filename"]),
		Title:       utils.ToString(it.Data["title"]),
		URL:         utils.ToString(it.Data["url"]),
		LinkMode:    utils.ToString(it.Data["linkMode"]),
		Links:       it.Links,
	}
}

func noteFromItem(it Item) Note {
	return Note{
		Key:          it.Key,
		Title:        utils.ToString(it.Data["title"]),
		Content:      utils.ToString(it.Data["note"]),
		DateModified: utils.ToString(it.Data["dateModified"]),
	}
}

// resolveAttachmentURL builds the download URL for an attachment. The chain
// is evaluated in order, first match wins:
//
//  1. With a WebDAV base configured, synced file attachments live at
//     {base}/{key}.zip, the sync client's fixed naming convention. Plain
//     linked URLs are exempt; WebDAV never stores those.
//  2. The API's enclosure link, or the self link with a /file suffix.
//  3. The attachment's stored url field.
//  4. Empty.
//
// The API key is appended only for URLs on the API host itself (authorize
// handles the host check).
func (c *client) resolveAttachmentURL(a Attachment) string {
	if c.webdav != "" && a.LinkMode != "linked_url" {
		return c.webdav + "/" + a.Key + ".zip"
	}

	var raw string
	switch {
	case a.Links["enclosure"].Href != "":
		raw = a.Links["enclosure"].Href
	case a.Links["self"].Href != "":
		raw = a.Links["self"].Href + "/file"
	case a.URL != "":
		raw = a.URL
	default:
		return ""
	}
	return c.authorize(raw)
}
