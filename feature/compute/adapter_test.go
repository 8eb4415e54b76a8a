package compute

import (
	"testing"

	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_MapRemote(t *testing.T) {
	adapter := NewAdapter()

	res := adapter.MapRemote(provider.Record{
		ID:    "i-abc123",
		Name:  "web-1",
		State: "running",
		Attrs: map[string]string{"instanceType": "m5.large", "availabilityZone": "us-east-1a"},
	}, provider.Scope{})

	assert.Equal(t, "web-1", res.Name)
	assert.Equal(t, "running", res.Status)
	assert.Equal(t, store.PowerOn, res.PowerState)
	assert.Equal(t, "m5.large", res.InstanceType)
	assert.Equal(t, "us-east-1a", res.Attrs["availabilityZone"])
}

func TestAdapter_MapRemote_StoppedInstanceIsPoweredOff(t *testing.T) {
	res := NewAdapter().MapRemote(provider.Record{ID: "i-1", State: "stopped"}, provider.Scope{})
	assert.Equal(t, store.PowerOff, res.PowerState)
}

func TestAdapter_Children_WiresInterfacesToParent(t *testing.T) {
	adapter := NewAdapter()
	parent := store.Resource{SelfLink: store.NewSelfLink(Kind)}

	children := adapter.Children(provider.Record{
		ID:    "i-1",
		State: "running",
		Links: map[string][]string{ChildKind: {"eni-1", "eni-2"}},
	}, &parent, provider.Scope{})

	require.Len(t, children, 2)
	require.Len(t, parent.ChildLinks, 2)
	for i, child := range children {
		assert.Equal(t, ChildKind, child.Kind)
		assert.Equal(t, parent.SelfLink, child.ParentLink)
		assert.Equal(t, parent.ChildLinks[i], child.SelfLink)
	}
	assert.Equal(t, "eni-1", children[0].RemoteID)
	assert.Equal(t, "eni-2", children[1].RemoteID)
}

func TestAdapter_Children_NoInterfaces(t *testing.T) {
	parent := store.Resource{SelfLink: "/resources/instances/x"}
	children := NewAdapter().Children(provider.Record{ID: "i-1"}, &parent, provider.Scope{})

	assert.Nil(t, children)
	assert.Empty(t, parent.ChildLinks)
}

func TestAdapter_DefaultPolicy(t *testing.T) {
	assert.Equal(t, reconcile.PolicyDelete, NewAdapter().Policy())
	assert.Equal(t, "instances", NewAdapter().Kind())
}
