// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the
// configuration structure for server settings so core/config can embed it.
//
// # Configuration
//
// The Config struct defines the HTTP port and the optional API key that
// protects the shelf endpoints.
package server
