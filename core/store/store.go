package store

import "context"

// ScopeFilter narrows queries to one owner scope. Zero-valued fields are
// not applied.
type ScopeFilter struct {
	// EndpointLink restricts matches to records owned by this endpoint.
	EndpointLink string

	// RegionID restricts matches to one provider region.
	RegionID string

	// SourceTaskLink restricts matches to records created by this
	// reconciliation pathway.
	SourceTaskLink string
}

// Store is the local inventory contract consumed by the reconciliation
// engine. Implementations must make every write idempotent: cycles run with
// at-least-once semantics and may repeat any batch with identical input.
type Store interface {
	// QueryByRemoteIDs returns the records of one kind within scope whose
	// remote ids are in ids, keyed by remote id.
	QueryByRemoteIDs(ctx context.Context, kind string, scope ScopeFilter, ids []string) (map[string]Resource, error)

	// QueryStale returns one page of records of the given kind within scope
	// whose UpdateTimeMicros predates olderThanMicros. The returned cursor
	// is opaque; empty means exhausted. Paging must stay correct when the
	// caller deletes or unlinks already-returned records between calls.
	QueryStale(ctx context.Context, kind string, scope ScopeFilter, olderThanMicros int64, cursor string, limit int) ([]Resource, string, error)

	// Create inserts a record, or refreshes it if a record with the same
	// (kind, remote id, region) already exists.
	Create(ctx context.Context, res Resource) error

	// Patch applies a field-level update to the record at selfLink and
	// advances its UpdateTimeMicros.
	Patch(ctx context.Context, selfLink string, fields map[string]any) error

	// Delete removes the record at selfLink.
	Delete(ctx context.Context, selfLink string) error

	// DeleteByParent removes all records whose ParentLink is parentLink.
	DeleteByParent(ctx context.Context, parentLink string) error

	// Retire flips the record at selfLink to RETIRED/OFF in place.
	Retire(ctx context.Context, selfLink string) error

	// UnlinkEndpoint removes endpointLink from the record's endpoint set,
	// leaving the record itself for a separate groomer to purge once no
	// endpoints remain.
	UnlinkEndpoint(ctx context.Context, selfLink, endpointLink string) error

	// CreateTagIfAbsent idempotently materializes a tag pair and returns
	// its self-link.
	CreateTagIfAbsent(ctx context.Context, key, value string) (string, error)

	// AppendTagLinks adds the given tag links to the record's TagLinks set
	// (collection-style add, preserving concurrently added links).
	AppendTagLinks(ctx context.Context, selfLink string, tagLinks []string) error
}
