package disk

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
	"inventory-manager/core/utils"
)

// Kind is the resource kind this adapter reconciles.
const Kind = "disks"

// Adapter maps provider volumes onto local inventory records.
type Adapter struct{}

// NewAdapter creates the disk adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Kind implements reconcile.Adapter.
func (a *Adapter) Kind() string {
	return Kind
}

// Policy implements reconcile.Adapter. A volume gone from this account may
// still be attached elsewhere; only the owner link is detached and a
// separate groomer purges fully orphaned records.
func (a *Adapter) Policy() reconcile.RemovalPolicy {
	return reconcile.PolicyUnlinkEndpoint
}

// MapRemote implements reconcile.Adapter.
func (a *Adapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	return store.Resource{
		Name:         rec.DisplayName(),
		Status:       rec.State,
		InstanceType: rec.Attrs["volumeType"],
		CapacityMB:   capacityMB(rec),
		Attrs:        store.StringMap(rec.Attrs),
	}
}

// Children implements reconcile.Adapter. Volumes have no substructure.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	return nil
}

// capacityMB prefers the explicit capacity field; older provider responses
// only carry a gigabyte attribute.
func capacityMB(rec provider.Record) int64 {
	if rec.CapacityMB > 0 {
		return rec.CapacityMB
	}
	if gb, ok := rec.Attrs["capacityGB"]; ok {
		return utils.GBToMB(utils.ToInt64(gb))
	}
	return 0
}
