package models

import (
	"regexp"
	"strings"

	"shelf-gateway/core/utils"
	"shelf-gateway/core/zotero"
)

// yearRe pulls the first four-digit run out of a free-form date string.
var yearRe = regexp.MustCompile(`\d{4}`)

// Creator is one author or contributor of a library item. Single-field
// names ("Name") and split names are both possible upstream.
type Creator struct {
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Display returns the creator's presentable name.
func (c Creator) Display() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// LibraryItem is the normalized shape of one top-level bibliographic item.
// Attachments and CoverURL stay empty until the enrichment pass fills them.
type LibraryItem struct {
	Key          string              `json:"key"`
	Title        string              `json:"title"`
	Creators     []Creator           `json:"creators"`
	Collections  []string            `json:"collections"`
	AbstractNote string              `json:"abstractNote"`
	Tags         []string            `json:"tags"`
	Extra        string              `json:"extra"`
	Year         int                 `json:"year,omitempty"`
	Attachments  []zotero.Attachment `json:"attachments"`
	CoverURL     string              `json:"coverUrl"`
	Raw          map[string]any      `json:"raw,omitempty"`
}

// FromItem normalizes one raw API item. Malformed fields degrade to their
// zero values rather than failing the whole listing.
func FromItem(it zotero.Item) LibraryItem {
	item := LibraryItem{
		Key:          it.Key,
		Title:        it.Title(),
		Creators:     []Creator{},
		Collections:  utils.ToStringSlice(it.Data["collections"]),
		AbstractNote: utils.ToString(it.Data["abstractNote"]),
		Tags:         []string{},
		Extra:        utils.ToString(it.Data["extra"]),
		Year:         utils.ToInt(yearRe.FindString(utils.ToString(it.Data["date"]))),
		Attachments:  []zotero.Attachment{},
		Raw:          it.Data,
	}

	if creators, ok := it.Data["creators"].([]any); ok {
		for _, raw := range creators {
			m, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			c := Creator{
				Name:      utils.ToString(m["name"]),
				FirstName: utils.ToString(m["firstName"]),
				LastName:  utils.ToString(m["lastName"]),
			}
			if c.Display() != "" {
				item.Creators = append(item.Creators, c)
			}
		}
	}

	if tags, ok := it.Data["tags"].([]any); ok {
		for _, raw := range tags {
			if m, ok := raw.(map[string]any); ok {
				if tag := utils.ToString(m["tag"]); tag != "" {
					item.Tags = append(item.Tags, tag)
				}
			}
		}
	}

	return item
}
