package covers

import (
	"regexp"
	"strings"

	"shelf-gateway/core/zotero"
)

// imageExtRe matches common raster image extensions, tolerating a trailing
// query string on remote URLs.
var imageExtRe = regexp.MustCompile(`(?i)\.(jpe?g|png|gif|webp|bmp)(\?.*)?$`)

// Rank is the heuristic rating of one attachment as a cover candidate. The
// reasons make a chosen weight auditable when coverage looks wrong.
type Rank struct {
	Score   int
	Reasons []string
}

// RankAttachment rates how strongly an attachment looks like a cover image.
// The declared content type is the strongest signal since it comes from the
// library itself; a URL extension beats a filename extension because the
// remote file is what actually gets rendered; a "cover" title is a weak
// hint on its own. Signals are independent and additive.
func RankAttachment(a zotero.Attachment) Rank {
	var r Rank
	if strings.HasPrefix(a.ContentType, "image/") {
		r.Score += 4
		r.Reasons = append(r.Reasons, "image content type")
	}
	if imageExtRe.MatchString(a.Filename) {
		r.Score += 2
		r.Reasons = append(r.Reasons, "image filename extension")
	}
	if imageExtRe.MatchString(a.URL) {
		r.Score += 3
		r.Reasons = append(r.Reasons, "image url extension")
	}
	if strings.Contains(strings.ToLower(a.Title), "cover") {
		r.Score++
		r.Reasons = append(r.Reasons, "cover in title")
	}
	return r
}

// pickScored selects a cover among attachments once the explicit signals
// missed. The whole top score group is considered in original order, and
// URL kinds are tried from most to least trustworthy within it.
func pickScored(attachments []zotero.Attachment) string {
	if len(attachments) == 0 {
		return ""
	}

	scores := make([]int, len(attachments))
	best := 0
	for i, a := range attachments {
		scores[i] = RankAttachment(a).Score
		if scores[i] > best {
			best = scores[i]
		}
	}

	var top []zotero.Attachment
	for i, a := range attachments {
		if scores[i] == best {
			top = append(top, a)
		}
	}

	// A declared image type whose fallback chain produced a URL.
	for _, a := range top {
		if strings.HasPrefix(a.ContentType, "image/") && a.ResolvedURL != "" {
			return a.ResolvedURL
		}
	}
	// A served file link that looks like an image.
	for _, a := range top {
		if linkLooksLikeImage(a) && a.ResolvedURL != "" {
			return a.ResolvedURL
		}
	}
	// A stored third-party URL that looks like an image.
	for _, a := range top {
		if imageExtRe.MatchString(a.URL) {
			return a.URL
		}
	}
	// Anything that at least claims to be a cover.
	for _, a := range top {
		if strings.Contains(strings.ToLower(a.Title+a.URL), "cover") && a.ResolvedURL != "" {
			return a.ResolvedURL
		}
	}
	return ""
}

func linkLooksLikeImage(a zotero.Attachment) bool {
	for _, rel := range []string{"enclosure", "self"} {
		if l, ok := a.Links[rel]; ok && imageExtRe.MatchString(l.Href) {
			return true
		}
	}
	return false
}
