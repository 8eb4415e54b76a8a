package reconcile

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/store"
)

// Adapter supplies the kind-specific pieces of a reconciliation cycle: how a
// remote record maps onto a local one, which children are synthesized
// alongside it, and how missing records are removed by default. Everything
// else (pagination, diffing, batching, staleness reaping) is generic and
// lives in the driver.
type Adapter interface {
	// Kind returns the resource kind this adapter reconciles
	// (e.g., "instances", "disks", "buckets").
	Kind() string

	// Policy returns the default removal policy for this kind. A request
	// may override it per invocation.
	Policy() RemovalPolicy

	// MapRemote converts a remote record into a local one. Implementations
	// fill kind-specific fields only; the engine owns SelfLink, TagLinks,
	// scope stamping and timestamps.
	MapRemote(rec provider.Record, scope provider.Scope) store.Resource

	// Children synthesizes sub-records created alongside the parent (e.g.,
	// an instance's network interfaces). The parent already carries its
	// final self-link; implementations mint child self-links, set each
	// child's ParentLink, and wire the parent's reference lists so no
	// follow-up patch of the parent is needed. Return nil when the kind has
	// no substructure.
	Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource
}
