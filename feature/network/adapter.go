package network

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
)

// Kinds reconciled by this package.
const (
	Kind       = "networks"
	SubnetKind = "subnets"
)

// Adapter maps provider networks onto local inventory records.
type Adapter struct{}

// NewAdapter creates the network adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Kind implements reconcile.Adapter.
func (a *Adapter) Kind() string {
	return Kind
}

// Policy implements reconcile.Adapter.
func (a *Adapter) Policy() reconcile.RemovalPolicy {
	return reconcile.PolicyDelete
}

// MapRemote implements reconcile.Adapter.
func (a *Adapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	return store.Resource{
		Name:   rec.DisplayName(),
		Status: rec.State,
		Attrs:  store.StringMap(rec.Attrs),
	}
}

// Children implements reconcile.Adapter. Subnets are enumerated as their own
// kind rather than synthesized here, so network records carry no children.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}

// SubnetAdapter maps provider subnets onto local inventory records.
type SubnetAdapter struct{}

// NewSubnetAdapter creates the subnet adapter.
func NewSubnetAdapter() *SubnetAdapter {
	return &SubnetAdapter{}
}

// Kind implements reconcile.Adapter.
func (a *SubnetAdapter) Kind() string {
	return SubnetKind
}

// Policy implements reconcile.Adapter.
func (a *SubnetAdapter) Policy() reconcile.RemovalPolicy {
	return reconcile.PolicyDelete
}

// MapRemote implements reconcile.Adapter. The parent network is referenced by
// remote id in the attrs; resolving it to a local self-link is left to read
// paths, since the network may be enumerated after the subnet.
func (a *SubnetAdapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	attrs := store.StringMap{}
	for k, v := range rec.Attrs {
		attrs[k] = v
	}
	if ids := rec.Links[Kind]; len(ids) > 0 {
		attrs["networkId"] = ids[0]
	}

	return store.Resource{
		Name:   rec.DisplayName(),
		Status: rec.State,
		Attrs:  attrs,
	}
}

// Children implements reconcile.Adapter.
func (a *SubnetAdapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}
