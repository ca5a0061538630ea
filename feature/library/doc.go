// Package library implements the shelf listing feature.
//
// It turns the remote bibliographic library into the normalized item and
// collection listings the shelf views render:
//  1. Collections: the configured root collection and its direct
//     sub-collections, or the library's top-level collections.
//  2. Items: paginated top-level items, deduplicated across collections
//     and sorted by title.
//  3. Enrichment: per-item attachments and one resolved cover image,
//     fetched under a bounded concurrency limit.
//
// # Listing Cache
//
// Enriched listings multiply upstream request volume (two children lookups
// per item), so the service runs them through `core/cache`: concurrent
// identical requests collapse into one upstream pass and, when a TTL is
// configured, repeat views are served from memory.
//
// # Components
//
//   - Service: Resolves collections, lists items and attaches covers.
//   - Handler: Exposes the listing endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /api/items : List top-level items, enriched with covers.
//   - GET /api/collections : List the served collection tree.
//   - GET /api/collections/default : Suggest the first non-empty collection.
package library
