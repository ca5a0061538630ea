package covers

import (
	"regexp"
	"strings"

	"shelf-gateway/core/zotero"

	"github.com/PuerkitoBio/goquery"
)

// entityReplacer undoes the escaping the note editor applies to markup
// stored inside rich text. A single pass keeps double-escaped sequences
// ("&amp;quot;") from decoding twice.
var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

var (
	// A data URI inside a quoted src attribute, and the same with the
	// quotes stripped by some editor along the way.
	dataURIQuoted = regexp.MustCompile(`src=["'](data:image/[^"']+)["']`)
	dataURIBare   = regexp.MustCompile(`src=(data:image/[^\s"'<>]+)`)

	// Attachment references that survive only as attribute-shaped text
	// after the markup itself was mangled.
	keyAttrRe = regexp.MustCompile(`(?i)\b(?:data-attachment-key|zapi:key|key)=["']?([A-Z0-9]{8})\b["']?`)

	// Image placeholders some editors leave behind: a paragraph carrying
	// width/height attributes with the attachment key in its text.
	paragraphRe = regexp.MustCompile(`(?is)<p([^>]*)>(.*?)</p>`)
	keyTokenRe  = regexp.MustCompile(`\b[A-Z0-9]{8}\b`)
)

// keyAttrNames are the attribute names that carry embedded-attachment
// references, in the order they are trusted.
var keyAttrNames = []string{"data-attachment-key", "zapi:key", "key"}

// extractNoteImage scans one flagged note's content for a cover image
// reference. Matchers run from most to least direct: an inline data URI,
// then an embedded-attachment reference resolved against the item's
// fetched attachments, then the editor's image placeholder pattern.
// Returns "" when nothing usable is found.
func extractNoteImage(content string, byKey map[string]zotero.Attachment) string {
	decoded := entityReplacer.Replace(content)

	if m := dataURIQuoted.FindStringSubmatch(decoded); m != nil {
		return m[1]
	}
	if m := dataURIBare.FindStringSubmatch(decoded); m != nil {
		return m[1]
	}

	if url := keyFromMarkup(decoded, byKey); url != "" {
		return url
	}
	for _, m := range keyAttrRe.FindAllStringSubmatch(decoded, -1) {
		if url := resolveKeyRef(m[1], byKey); url != "" {
			return url
		}
	}

	return keyFromPlaceholder(decoded, byKey)
}

// keyFromMarkup walks the parsed note DOM looking for an element whose
// attributes reference an attachment by key.
func keyFromMarkup(decoded string, byKey map[string]zotero.Attachment) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return ""
	}

	var url string
	doc.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, name := range keyAttrNames {
			val, ok := s.Attr(name)
			if !ok {
				continue
			}
			if resolved := resolveKeyRef(val, byKey); resolved != "" {
				url = resolved
				return false
			}
		}
		return true
	})
	return url
}

// keyFromPlaceholder looks for a sized paragraph, the placeholder shape
// left where an embedded image used to be, and resolves any key-looking
// token inside it.
func keyFromPlaceholder(decoded string, byKey map[string]zotero.Attachment) string {
	for _, m := range paragraphRe.FindAllStringSubmatch(decoded, -1) {
		attrs, inner := strings.ToLower(m[1]), m[2]
		if !strings.Contains(attrs, "width=") || !strings.Contains(attrs, "height=") {
			continue
		}
		for _, tok := range keyTokenRe.FindAllString(inner, -1) {
			if url := resolveKeyRef(tok, byKey); url != "" {
				return url
			}
		}
	}
	return ""
}

// resolveKeyRef maps a raw key reference to the resolved URL of the
// matching fetched attachment, or "" when the key is malformed, unknown,
// or the attachment has no usable URL.
func resolveKeyRef(raw string, byKey map[string]zotero.Attachment) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if !zotero.IsItemKey(key) {
		return ""
	}
	if a, ok := byKey[key]; ok {
		return a.ResolvedURL
	}
	return ""
}
