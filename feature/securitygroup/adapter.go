package securitygroup

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
)

// Kind is the resource kind this adapter reconciles.
const Kind = "security-groups"

// Adapter maps provider security groups onto local inventory records.
type Adapter struct{}

// NewAdapter creates the security group adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Kind implements reconcile.Adapter.
func (a *Adapter) Kind() string {
	return Kind
}

// Policy implements reconcile.Adapter. Groups are referenced by instances in
// other accounts, so removal only detaches the current owner.
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

// Children implements reconcile.Adapter.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}
