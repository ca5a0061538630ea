package covers

import (
	"strings"

	"shelf-gateway/core/zotero"
)

// WebCoverTitle marks an attachment as the curated cover image. Its URL is
// used unconditionally, before any note scanning or scoring.
const WebCoverTitle = "Book Cover (Web)"

// B64NoteMarker flags a note as carrying an embedded cover image.
const B64NoteMarker = "Book Cover (b64)"

// Source identifies which resolution rule produced a cover URL.
type Source string

const (
	SourceNamedAttachment Source = "named_attachment"
	SourceNote            Source = "note"
	SourceScored          Source = "scored_attachment"
	SourceNone            Source = "none"
)

// NoteMiss records a flagged note that matched none of the extraction
// patterns. Misses are diagnostics for manual cleanup, not errors.
type NoteMiss struct {
	NoteKey string
	Title   string
}

// Result is the outcome of one cover resolution.
type Result struct {
	// URL is the chosen cover reference. Empty means nothing usable was
	// found and the caller should render a placeholder.
	URL string
	// Source tells which precedence rule produced URL.
	Source Source
	// Misses lists flagged notes that yielded no image reference.
	Misses []NoteMiss
}

// Resolve picks one cover image reference for an item from its attachments
// and notes. An attachment titled WebCoverTitle is answered immediately,
// regardless of how other candidates would score. Otherwise notes flagged
// with B64NoteMarker are scanned in order, and if none of them yields a
// reference the attachments are ranked heuristically.
func Resolve(attachments []zotero.Attachment, notes []zotero.Note) Result {
	var res Result

	for _, a := range attachments {
		if strings.TrimSpace(a.Title) == WebCoverTitle {
			res.URL = a.ResolvedURL
			res.Source = SourceNamedAttachment
			return res
		}
	}

	byKey := make(map[string]zotero.Attachment, len(attachments))
	for _, a := range attachments {
		byKey[a.Key] = a
	}

	for _, n := range notes {
		if !strings.Contains(n.Content, B64NoteMarker) {
			continue
		}
		if url := extractNoteImage(n.Content, byKey); url != "" {
			res.URL = url
			res.Source = SourceNote
			return res
		}
		// Keep looking, but remember the note so the miss can be surfaced.
		res.Misses = append(res.Misses, NoteMiss{NoteKey: n.Key, Title: n.Title})
	}

	if url := pickScored(attachments); url != "" {
		res.URL = url
		res.Source = SourceScored
		return res
	}

	res.Source = SourceNone
	return res
}
