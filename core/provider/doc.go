// Package provider defines the remote side of a reconciliation cycle.
//
// A provider exposes resource listings one page at a time through the Lister
// interface. The reconciliation engine only ever sees that interface; the
// concrete transport (the HTTP Client here, or the minio-backed bucket lister
// in feature/bucket) is wired in by the call site.
//
// # Pagination contract
//
// ListPage is driven by an opaque cursor: a non-empty NextCursor means "call
// again with this cursor", an empty one means the listing is exhausted.
// Implementations must be idempotent per cursor so a retried cycle observes
// the same pages.
package provider
