package models

import "time"

// ItemStatus is the audit outcome for one library item.
type ItemStatus struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	CoverURL string `json:"coverUrl,omitempty"`
	// Source tells which resolution rule produced CoverURL.
	Source string `json:"source,omitempty"`
	// FlaggedNotes lists keys of notes that carry the cover marker but
	// yielded no image reference. They usually need manual repair.
	FlaggedNotes []string `json:"flaggedNotes,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// Report aggregates cover coverage across the audited listing.
type Report struct {
	Total       int            `json:"total"`
	Covered     int            `json:"covered"`
	Missing     int            `json:"missing"`
	BySource    map[string]int `json:"bySource"`
	Items       []ItemStatus   `json:"items"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
