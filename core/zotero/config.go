package zotero

import "strings"

// Library types accepted by the remote API.
const (
	LibraryUsers  = "users"
	LibraryGroups = "groups"
)

// Config holds the coordinates and fetch policy for one remote library.
type Config struct {
	// LibraryType selects the library namespace: "users" or "groups".
	LibraryType string `mapstructure:"library_type" default:"users"`
	// LibraryID is the numeric id of the library.
	LibraryID int `mapstructure:"library_id" default:"0"`
	// APIKey is the secret key for private libraries. Optional for public ones.
	APIKey string `mapstructure:"api_key" default:""`
	// BaseURL is the API root. Override it to point tests at a fake server.
	BaseURL string `mapstructure:"base_url" default:"https://api.zotero.org"`
	// WebDAVBase, when set, overrides file attachment URLs with the WebDAV
	// sync convention {WebDAVBase}/{attachmentKey}.zip.
	WebDAVBase string `mapstructure:"webdav_base" default:""`
	// Collection is the key of the shelf's root collection. Empty means the
	// whole library.
	Collection string `mapstructure:"collection" default:""`
	// Collections is an optional comma-separated allow-list of collection
	// keys shown to clients. The root collection is always kept.
	Collections string `mapstructure:"collections" default:""`
	// PageSize is the listing page size, capped at 100 by the API.
	PageSize int `mapstructure:"page_size" default:"100"`
	// Concurrency bounds in-flight per-item enrichment fetches.
	Concurrency int `mapstructure:"concurrency" default:"6"`
	// RequestsPerSecond paces outgoing API requests.
	RequestsPerSecond int `mapstructure:"requests_per_second" default:"5"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
	// CacheTTLSeconds keeps served listings for this long before they are
	// fetched again. Zero serves every view fresh.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// IsValidLibraryType checks if the configured library type is valid.
func (c Config) IsValidLibraryType() bool {
	switch c.LibraryType {
	case LibraryUsers, LibraryGroups:
		return true
	default:
		return false
	}
}

// AllowList returns the configured collection allow-list as keys,
// or nil when no allow-list is set.
func (c Config) AllowList() []string {
	if strings.TrimSpace(c.Collections) == "" {
		return nil
	}
	var keys []string
	for _, part := range strings.Split(c.Collections, ",") {
		if key := strings.TrimSpace(part); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// Validate checks that the library coordinates are usable. It returns a
// *ConfigError describing the first problem found.
func (c Config) Validate() error {
	if !c.IsValidLibraryType() {
		return &ConfigError{Field: "library_type", Reason: "must be \"users\" or \"groups\""}
	}
	if c.LibraryID <= 0 {
		return &ConfigError{Field: "library_id", Reason: "missing or not a positive number"}
	}
	return nil
}
