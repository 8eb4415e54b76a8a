package provider

import "context"

// Record is a single remote resource as reported by the provider for one
// page fetch. It is an immutable snapshot and is never persisted directly;
// adapters map it into a local inventory record.
type Record struct {
	// ID is the provider-assigned identifier (e.g., "i-abc123", "vol-9f2",
	// a bucket name). It is the join key against local records.
	ID string `json:"id"`

	// Name is the human-readable name reported by the provider.
	Name string `json:"name"`

	// State is the provider-side lifecycle state (e.g., "running", "available").
	State string `json:"state"`

	// Tags is the raw provider tag set, including the reserved "Name" tag.
	Tags map[string]string `json:"tags"`

	// Links holds remote-id references to related resources, keyed by
	// relation (e.g., "subnets" -> subnet ids, "security-groups" -> sg ids).
	Links map[string][]string `json:"links"`

	// Attrs carries provider-specific attributes that map to kind-specific
	// local fields (instance type, cidr, endpoint address, ...).
	Attrs map[string]string `json:"attrs"`

	// CapacityMB is the capacity for sized resources (disks, images).
	CapacityMB int64 `json:"capacityMB"`
}

// DisplayName returns the record's name, falling back to the reserved
// "Name" tag when the provider reports no explicit name.
func (r Record) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Tags["Name"]
}

// Page is one page of a remote listing.
type Page struct {
	// Records are the remote records on this page.
	Records []Record `json:"records"`

	// NextCursor is the opaque continuation cursor. Empty means the listing
	// is exhausted.
	NextCursor string `json:"nextCursor"`
}

// Scope identifies the remote account slice a listing runs against.
type Scope struct {
	// EndpointLink references the owning account/endpoint document.
	EndpointLink string

	// Region is the provider region to enumerate.
	Region string

	// Account is the provider account identifier.
	Account string

	// TenantLinks scope created records to tenants.
	TenantLinks []string

	// ResourcePoolLink references the resource pool created records are
	// placed in.
	ResourcePoolLink string

	// OwnerAuth is the owner-scoped provider credential. When empty the
	// client's configured key is used.
	OwnerAuth string
}

// Lister yields pages of remote resource records for a scope. Implementations
// must be safe to call repeatedly with the same cursor: the driver re-enters
// the page loop on retries and expects identical results for identical input.
type Lister interface {
	// ListPage fetches one page. An empty cursor requests the first page;
	// an empty Page.NextCursor signals exhaustion.
	ListPage(ctx context.Context, scope Scope, cursor string) (Page, error)
}

// ListerFunc adapts a function to the Lister interface.
type ListerFunc func(ctx context.Context, scope Scope, cursor string) (Page, error)

// ListPage implements Lister.
func (f ListerFunc) ListPage(ctx context.Context, scope Scope, cursor string) (Page, error) {
	return f(ctx, scope, cursor)
}
