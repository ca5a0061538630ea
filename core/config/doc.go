// Package config provides configuration management for the shelf gateway.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Zotero: Remote library coordinates (type, id, key) and fetch policy
//     (root collection, allow-list, page size, concurrency, WebDAV base)
//
// Environment variables map to nested keys with underscores, e.g.
// ZOTERO_LIBRARY_ID sets zotero.library_id.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Zotero.LibraryID)
package config
