// Package models holds the HTTP request and response shapes of the
// inventory feature.
package models

// ReconcileRequest is the body of POST /reconcile/{kind}.
type ReconcileRequest struct {
	// Action is the cycle action: START, REFRESH or STOP. Defaults to START.
	Action string `json:"action"`

	// Region is the provider region to enumerate.
	Region string `json:"region"`

	// EndpointLink references the owning account endpoint document.
	EndpointLink string `json:"endpointLink"`

	// Account is the provider account identifier.
	Account string `json:"account,omitempty"`

	// TenantLinks scope created records to tenants.
	TenantLinks []string `json:"tenantLinks,omitempty"`

	// ResourcePoolLink references the resource pool created records are
	// placed in.
	ResourcePoolLink string `json:"resourcePoolLink,omitempty"`

	// RemovalPolicy overrides the kind's default removal policy
	// (DELETE, RETIRE or UNLINK_ENDPOINT) when set.
	RemovalPolicy string `json:"removalPolicy,omitempty"`

	// SourceTaskLink overrides the pathway marker stamped on created records.
	SourceTaskLink string `json:"sourceTaskLink,omitempty"`

	// OwnerAuth is the owner-scoped provider credential, overriding the
	// configured key for this cycle.
	OwnerAuth string `json:"ownerAuth,omitempty"`

	// IsMockRequest short-circuits the cycle to success without touching the
	// provider or the store.
	IsMockRequest bool `json:"isMockRequest,omitempty"`
}

// KindsResponse lists the registered resource kinds.
type KindsResponse struct {
	Kinds []string `json:"kinds"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
