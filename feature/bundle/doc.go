// Package bundle assembles the per-item detail payload.
//
// A bundle aggregates everything the detail view needs for one item: the
// item record itself, its attachments and notes, and any related items the
// record references. The three child fetches run concurrently; related
// items are looked up in one batched request afterwards, and only when the
// item actually references any.
//
// Bundles are assembled per request and never cached; the caller owns the
// result and discards it once rendered.
//
// # HTTP Endpoints
//
//   - GET /api/items/:key : Assemble the detail bundle for one item.
package bundle
