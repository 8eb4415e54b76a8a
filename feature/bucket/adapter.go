package bucket

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
)

// Kind is the resource kind this adapter reconciles.
const Kind = "buckets"

// Adapter maps object storage buckets onto local inventory records.
type Adapter struct{}

// NewAdapter creates the bucket adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Kind implements reconcile.Adapter.
func (a *Adapter) Kind() string {
	return Kind
}

// Policy implements reconcile.Adapter. Buckets are frequently shared across
// accounts, so only the owner link is detached on removal.
func (a *Adapter) Policy() reconcile.RemovalPolicy {
	return reconcile.PolicyUnlinkEndpoint
}

// MapRemote implements reconcile.Adapter.
func (a *Adapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	return store.Resource{
		Name:   rec.DisplayName(),
		Status: rec.State,
		Attrs:  store.StringMap(rec.Attrs),
	}
}

// Children implements reconcile.Adapter. Buckets have no substructure.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}
