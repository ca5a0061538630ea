package models

import (
	"shelf-gateway/core/zotero"

	libmodels "shelf-gateway/feature/library/models"
)

// Bundle is the aggregated detail payload for one item. Assembled per
// request, never cached.
type Bundle struct {
	Item         libmodels.LibraryItem   `json:"item"`
	Attachments  []zotero.Attachment     `json:"attachments"`
	Notes        []zotero.Note           `json:"notes"`
	RelatedItems []libmodels.LibraryItem `json:"relatedItems"`
}
