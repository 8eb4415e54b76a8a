package image

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
	"inventory-manager/core/utils"
)

// Kind is the resource kind this adapter reconciles.
const Kind = "images"

// Adapter maps provider machine images onto local inventory records.
type Adapter struct{}

// NewAdapter creates the image adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Kind implements reconcile.Adapter.
func (a *Adapter) Kind() string {
	return Kind
}

// Policy implements reconcile.Adapter. Only images owned by the enumerated
// account are listed, so a gone image is deleted outright.
func (a *Adapter) Policy() reconcile.RemovalPolicy {
	return reconcile.PolicyDelete
}

// MapRemote implements reconcile.Adapter.
func (a *Adapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	capacity := rec.CapacityMB
	if capacity == 0 {
		if gb, ok := rec.Attrs["sizeGB"]; ok {
			capacity = utils.GBToMB(utils.ToInt64(gb))
		}
	}

	return store.Resource{
		Name:       rec.DisplayName(),
		Status:     rec.State,
		CapacityMB: capacity,
		Attrs:      store.StringMap(rec.Attrs),
	}
}

// Children implements reconcile.Adapter.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}
