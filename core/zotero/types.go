package zotero

import (
	"sort"

	"shelf-gateway/core/utils"
)

// Link is one entry of an item's links map (self, alternate, enclosure, up).
type Link struct {
	Href string `json:"href"`
	Type string `json:"type,omitempty"`
}

// Links maps link names to their targets as returned by the API.
type Links map[string]Link

// Item is a raw library record as returned by the API with include=data.
// Data is kept untyped: item types are heterogeneous and the normalizers
// pick out the fields they understand.
type Item struct {
	Key     string         `json:"key"`
	Version int            `json:"version,omitempty"`
	Links   Links          `json:"links,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Data    map[string]any `json:"data"`
}

// ItemType returns the record's item type ("book", "attachment", "note", ...).
func (it Item) ItemType() string {
	return utils.ToString(it.Data["itemType"])
}

// Title returns the record's title, empty when absent.
func (it Item) Title() string {
	return utils.ToString(it.Data["title"])
}

// RelatedKeys extracts related-item keys from the record's relation map.
// Relation values are either a single URI or an array of URIs; each URI's
// trailing path segment is validated as a key and duplicates are dropped.
// Predicates are visited in sorted order so the result is deterministic.
func (it Item) RelatedKeys() []string {
	rel, ok := it.Data["relations"].(map[string]any)
	if !ok || len(rel) == 0 {
		return nil
	}

	predicates := make([]string, 0, len(rel))
	for p := range rel {
		predicates = append(predicates, p)
	}
	sort.Strings(predicates)

	var keys []string
	seen := make(map[string]struct{})
	collect := func(uri string) {
		key, ok := KeyFromURI(uri)
		if !ok {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	for _, p := range predicates {
		switch v := rel[p].(type) {
		case string:
			collect(v)
		case []any:
			for _, entry := range v {
				if uri, ok := entry.(string); ok {
					collect(uri)
				}
			}
		}
	}
	return keys
}

// Collection is a named grouping of items. The resolver surfaces a root and
// its direct children only; deeper nesting is never recursed.
type Collection struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Attachment is a child record representing a file or link tied to an item.
// ResolvedURL is derived by the URL-resolution chain, never read from the
// payload, and is stable for a given attachment and configuration.
type Attachment struct {
	Key         string `json:"key"`
	ParentItem  string `json:"parentItem,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Filename    string `json:"fileName,omitempty"`
	Title       string `json:"title,omitempty"`
	URL         string `json:"url,omitempty"`
	LinkMode    string `json:"linkMode,omitempty"`
	Links       Links  `json:"links,omitempty"`
	ResolvedURL string `json:"resolvedUrl,omitempty"`
}

// Note is a child record carrying free-text HTML. Content is only ever
// interpreted by the cover resolver's scanners.
type Note struct {
	Key          string `json:"key"`
	Title        string `json:"title,omitempty"`
	Content      string `json:"content"`
	DateModified string `json:"dateModified,omitempty"`
}
