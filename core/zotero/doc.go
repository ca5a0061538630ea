// Package zotero provides a read-only client for the Zotero Web API.
//
// It wraps the library endpoints used by the shelf (item listings, collections,
// item children, batched lookups) behind a small interface so features can be
// unit-tested against a mock (as seen in core/zotero/mocks). All requests are
// scoped to a single configured library and paced by a client-side rate limiter.
//
// # Client Interface
//
// The Client interface is the explicit context object for one remote library.
// It is constructed once from a Config and passed to every feature; two clients
// for two libraries can coexist without sharing state.
//
// # Operations
//
//   - TopItems / CollectionItems: Paginated top-level item listings with
//     key-deduplication and attachment/note filtering.
//   - Collections / Collection / SubCollections: Shallow collection tree
//     (a root and its direct children, never deeper).
//   - CollectionItemCount: Cheap item-count probe via the total-results header.
//   - Attachments / Notes: Child records for one item, capped at 50, with
//     resolved download URLs (API links or a WebDAV naming convention).
//   - Item / ItemsByKeys: Single and batched item detail lookups.
//
// # Pagination
//
// Listings walk the resource page by page (at most 100 records per request),
// advancing the start offset by the number of raw records actually received.
// The walk stops when the target count is satisfied, a short page signals the
// end of the data, or the running count reaches the server-reported total.
//
// # Errors
//
// Construction fails with *ConfigError before any network call when the
// library coordinates are unusable. Requests that reach the server but come
// back non-2xx fail with *RemoteError carrying the status and body.
//
// # Usage
//
//	client, err := zotero.NewClient(cfg)
//	items, err := client.TopItems(ctx, 100)
package zotero
