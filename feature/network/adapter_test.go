package network

import (
	"testing"

	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_MapRemote(t *testing.T) {
	res := NewAdapter().MapRemote(provider.Record{
		ID:    "vpc-1",
		Name:  "main",
		State: "available",
		Attrs: map[string]string{"cidr": "10.0.0.0/16"},
	}, provider.Scope{})

	assert.Equal(t, "main", res.Name)
	assert.Equal(t, "available", res.Status)
	assert.Equal(t, "10.0.0.0/16", res.Attrs["cidr"])
}

func TestSubnetAdapter_MapRemote_CarriesNetworkID(t *testing.T) {
	res := NewSubnetAdapter().MapRemote(provider.Record{
		ID:    "subnet-1",
		Name:  "private-a",
		State: "available",
		Links: map[string][]string{Kind: {"vpc-1"}},
		Attrs: map[string]string{"cidr": "10.0.1.0/24"},
	}, provider.Scope{})

	assert.Equal(t, "private-a", res.Name)
	assert.Equal(t, "vpc-1", res.Attrs["networkId"])
	assert.Equal(t, "10.0.1.0/24", res.Attrs["cidr"])
}

func TestSubnetAdapter_MapRemote_NoNetworkLink(t *testing.T) {
	res := NewSubnetAdapter().MapRemote(provider.Record{ID: "subnet-1"}, provider.Scope{})
	_, ok := res.Attrs["networkId"]
	assert.False(t, ok)
}

func TestDefaultPolicies(t *testing.T) {
	assert.Equal(t, reconcile.PolicyDelete, NewAdapter().Policy())
	assert.Equal(t, "networks", NewAdapter().Kind())
	assert.Equal(t, reconcile.PolicyDelete, NewSubnetAdapter().Policy())
	assert.Equal(t, "subnets", NewSubnetAdapter().Kind())
}
