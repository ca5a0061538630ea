// Package covers picks one representative cover image per library item.
//
// Covers arrive in three unreliable shapes: a curated attachment pointing at
// a web image, a base64 image embedded in a specially flagged note, or an
// ordinary attachment that merely looks like an image. Newer library clients
// additionally rewrite embedded note images into bare attachment references,
// so the note scanner has to chase keys as well as data URIs.
//
// # Resolution Order
//
//   - Named attachment: an attachment titled exactly "Book Cover (Web)"
//     wins unconditionally.
//   - Flagged note: a note containing "Book Cover (b64)" is entity-decoded
//     and scanned for a data URI or an embedded attachment reference.
//   - Heuristic scoring: remaining attachments are ranked by how strongly
//     they look like an image, and the best candidate's URL is used.
//
// A resolution that finds nothing is not an error; callers render a
// placeholder instead.
//
// # HTTP Endpoints
//
//   - GET /api/covers/report : Resolves a cover for every listed item and
//     reports per-item outcomes plus aggregate coverage counts.
package covers
