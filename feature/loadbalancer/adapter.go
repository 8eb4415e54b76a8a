package loadbalancer

import (
	"strings"

	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
)

// Kind is the resource kind this adapter reconciles.
const Kind = "load-balancers"

// Adapter maps provider load balancers onto local inventory records.
type Adapter struct{}

// NewAdapter creates the load balancer adapter.
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

// MapRemote implements reconcile.Adapter. Backend instance ids are carried
// in the attrs as a comma-joined list; they are remote ids, not self-links,
// and read paths resolve them when needed.
func (a *Adapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	attrs := store.StringMap{}
	for k, v := range rec.Attrs {
		attrs[k] = v
	}
	if backends := rec.Links["instances"]; len(backends) > 0 {
		attrs["backendIds"] = strings.Join(backends, ",")
	}

	return store.Resource{
		Name:   rec.DisplayName(),
		Status: rec.State,
		Attrs:  attrs,
	}
}

// Children implements reconcile.Adapter.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}
