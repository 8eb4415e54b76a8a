package compute

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
)

// Kind is the resource kind this adapter reconciles.
const Kind = "instances"

// ChildKind is the kind of the synthesized network-interface records.
const ChildKind = "network-interfaces"

// Adapter maps provider compute instances onto local inventory records.
type Adapter struct{}

// NewAdapter creates the compute adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Kind implements reconcile.Adapter.
func (a *Adapter) Kind() string {
	return Kind
}

// Policy implements reconcile.Adapter. Instances are exclusively owned by
// one account, so a gone instance is hard-deleted together with its
// interfaces.
func (a *Adapter) Policy() reconcile.RemovalPolicy {
	return reconcile.PolicyDelete
}

// MapRemote implements reconcile.Adapter.
func (a *Adapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	return store.Resource{
		Name:         rec.DisplayName(),
		Status:       rec.State,
		PowerState:   powerState(rec.State),
		InstanceType: rec.Attrs["instanceType"],
		Attrs:        store.StringMap(rec.Attrs),
	}
}

// Children implements reconcile.Adapter. One child record is synthesized per
// reported network interface; the parent's ChildLinks are wired here so it
// lands in the store with its references complete.
func (a *Adapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	nicIDs := rec.Links[ChildKind]
	if len(nicIDs) == 0 {
		return nil
	}

	children := make([]store.Resource, 0, len(nicIDs))
	for _, nicID := range nicIDs {
		child := store.Resource{
			SelfLink:   store.NewSelfLink(ChildKind),
			Kind:       ChildKind,
			RemoteID:   nicID,
			Name:       nicID,
			ParentLink: parent.SelfLink,
			Status:     rec.State,
		}
		parent.ChildLinks = append(parent.ChildLinks, child.SelfLink)
		children = append(children, child)
	}
	return children
}

func powerState(state string) string {
	if state == "running" {
		return store.PowerOn
	}
	return store.PowerOff
}
