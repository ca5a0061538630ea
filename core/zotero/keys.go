package zotero

import (
	"regexp"
	"strings"
)

var itemKeyRe = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// IsItemKey reports whether s has the 8-character upper-alphanumeric shape
// the library uses for item, attachment, and collection keys. Keys extracted
// from free text (relation URIs, note HTML) must pass this check before use.
func IsItemKey(s string) bool {
	return itemKeyRe.MatchString(s)
}

// KeyFromURI extracts an item key from a relation URI such as
// "http://zotero.org/users/12345/items/ABCD2345". The key must be the final
// path segment and must directly follow an "items" segment; anything else
// (including a key of unexpected length) yields no match rather than a guess.
func KeyFromURI(uri string) (string, bool) {
	uri = strings.TrimSpace(uri)
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	uri = strings.TrimSuffix(uri, "/")
	parts := strings.Split(uri, "/")
	if len(parts) < 2 {
		return "", false
	}
	key := parts[len(parts)-1]
	if parts[len(parts)-2] != "items" || !IsItemKey(key) {
		return "", false
	}
	return key, true
}
