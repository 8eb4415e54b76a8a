package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"inventory-manager/core/provider"
	"inventory-manager/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const volumesMarker = "/tasks/reconciliation/volumes"

// staleVolume seeds a record that predates any cycle this test will run.
func staleVolume(remoteID, selfLink string) store.Resource {
	return store.Resource{
		SelfLink:         selfLink,
		Kind:             "volumes",
		RemoteID:         remoteID,
		RegionID:         "us-east-1",
		EndpointLinks:    store.StringList{"/endpoints/e1"},
		SourceTaskLink:   volumesMarker,
		LifecycleState:   store.LifecycleReady,
		UpdateTimeMicros: 1,
	}
}

// TestReap_DeletesGoneRecords verifies a stale record absent from the whole
// listing is hard-deleted along with its children.
func TestReap_DeletesGoneRecords(t *testing.T) {
	st := newFakeStore()
	st.seed(staleVolume("v-gone", "/resources/volumes/gone"))
	st.seed(store.Resource{
		SelfLink:   "/resources/network-interfaces/nic0",
		Kind:       "network-interfaces",
		RemoteID:   "v-gone-nic0",
		ParentLink: "/resources/volumes/gone",
	})

	driver := testDriver(newFakeAdapter(), st, newFakeLister(provider.Page{}))

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Reaped)

	_, ok := st.get("/resources/volumes/gone")
	assert.False(t, ok)
	_, ok = st.get("/resources/network-interfaces/nic0")
	assert.False(t, ok, "tightly-owned children cascade with the parent")
}

// TestReap_TouchedOnLastPageSurvives verifies a record listed only on the
// final page is never reaped, however stale its timestamp was at cycle start.
func TestReap_TouchedOnLastPageSurvives(t *testing.T) {
	st := newFakeStore()
	st.seed(staleVolume("v-late", "/resources/volumes/late"))
	st.seed(staleVolume("v-gone", "/resources/volumes/gone"))

	lister := newFakeLister(
		provider.Page{Records: []provider.Record{{ID: "v-other"}}, NextCursor: "c1"},
		provider.Page{Records: []provider.Record{{ID: "v-late"}}},
	)
	driver := testDriver(newFakeAdapter(), st, lister)

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err)

	_, ok := st.get("/resources/volumes/late")
	assert.True(t, ok, "record seen on page 2 of 2 must survive")
	_, ok = st.get("/resources/volumes/gone")
	assert.False(t, ok)
	assert.Equal(t, 1, summary.Reaped)
}

// TestReap_RetirePolicy verifies retire-in-place flips lifecycle flags and
// keeps the record.
func TestReap_RetirePolicy(t *testing.T) {
	st := newFakeStore()
	st.seed(staleVolume("v-gone", "/resources/volumes/gone"))

	adapter := newFakeAdapter()
	adapter.policy = PolicyRetire
	driver := testDriver(adapter, st, newFakeLister(provider.Page{}))

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Reaped)

	rec, ok := st.get("/resources/volumes/gone")
	require.True(t, ok)
	assert.Equal(t, store.LifecycleRetired, rec.LifecycleState)
	assert.Equal(t, store.PowerOff, rec.PowerState)
}

// TestReap_UnlinkEndpointKeepsSharedRecord verifies the multi-owner
// non-destructive path: only the current owner's link is dropped.
func TestReap_UnlinkEndpointKeepsSharedRecord(t *testing.T) {
	st := newFakeStore()
	shared := staleVolume("v-shared", "/resources/volumes/shared")
	shared.EndpointLinks = store.StringList{"/endpoints/e1", "/endpoints/e2"}
	st.seed(shared)

	adapter := newFakeAdapter()
	adapter.policy = PolicyUnlinkEndpoint
	driver := testDriver(adapter, st, newFakeLister(provider.Page{}))

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(), // endpoint e1
		Action: ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Reaped)

	rec, ok := st.get("/resources/volumes/shared")
	require.True(t, ok, "record survives while another endpoint references it")
	assert.Equal(t, store.StringList{"/endpoints/e2"}, rec.EndpointLinks)
	assert.Equal(t, 0, st.calls["Delete"])
}

// TestReap_RequestPolicyOverridesAdapterDefault verifies the per-invocation
// policy override.
func TestReap_RequestPolicyOverridesAdapterDefault(t *testing.T) {
	st := newFakeStore()
	st.seed(staleVolume("v-gone", "/resources/volumes/gone"))

	driver := testDriver(newFakeAdapter(), st, newFakeLister(provider.Page{}))

	_, err := driver.Run(context.Background(), Request{
		Scope:         testScope(),
		Action:        ActionStart,
		RemovalPolicy: PolicyRetire,
	})
	require.NoError(t, err)

	rec, ok := st.get("/resources/volumes/gone")
	require.True(t, ok)
	assert.Equal(t, store.LifecycleRetired, rec.LifecycleState)
}

// TestReap_RemovalFailureContinues verifies one failed deletion does not
// halt the reap loop or fail the cycle.
func TestReap_RemovalFailureContinues(t *testing.T) {
	st := newFakeStore()
	st.seed(staleVolume("v-bad", "/resources/volumes/bad"))
	st.seed(staleVolume("v-gone", "/resources/volumes/gone"))
	st.deleteErr["/resources/volumes/bad"] = errors.New("conflict")

	driver := testDriver(newFakeAdapter(), st, newFakeLister(provider.Page{}))

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err, "per-item removal failures are absorbed")
	assert.Equal(t, 1, summary.Reaped)

	_, ok := st.get("/resources/volumes/bad")
	assert.True(t, ok)
	_, ok = st.get("/resources/volumes/gone")
	assert.False(t, ok)
}

// TestReap_MultiPageDeleteLeavesNoSurvivors verifies the reap loop drains
// every stale page even though the delete policy removes rows from the
// queried set between page fetches.
func TestReap_MultiPageDeleteLeavesNoSurvivors(t *testing.T) {
	st := newFakeStore()
	for i := 0; i < 5; i++ {
		st.seed(staleVolume(
			fmt.Sprintf("v-%d", i),
			fmt.Sprintf("/resources/volumes/%02d", i)))
	}

	driver := testDriver(newFakeAdapter(), st, newFakeLister(provider.Page{}))
	driver.reapPageSize = 2

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Reaped)
	assert.Equal(t, 0, st.countKind("volumes"))
	assert.Equal(t, 3, st.calls["QueryStale"])
}

// TestReap_MultiPageUnlinkVisitsEveryRecord verifies paging still reaches
// every stale record when unlinking drops each visited row out of the
// endpoint-scoped stale query.
func TestReap_MultiPageUnlinkVisitsEveryRecord(t *testing.T) {
	st := newFakeStore()
	links := []string{
		"/resources/volumes/00",
		"/resources/volumes/01",
		"/resources/volumes/02",
	}
	for i, link := range links {
		st.seed(staleVolume(fmt.Sprintf("v-%d", i), link))
	}

	adapter := newFakeAdapter()
	adapter.policy = PolicyUnlinkEndpoint
	driver := testDriver(adapter, st, newFakeLister(provider.Page{}))
	driver.reapPageSize = 1

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Reaped)

	for _, link := range links {
		rec, ok := st.get(link)
		require.True(t, ok, "unlinked records are kept")
		assert.Empty(t, rec.EndpointLinks)
	}
}

// TestReap_IgnoresForeignSourceRecords verifies manually created records
// (no matching pathway marker) are never reap candidates.
func TestReap_IgnoresForeignSourceRecords(t *testing.T) {
	st := newFakeStore()
	manual := staleVolume("v-manual", "/resources/volumes/manual")
	manual.SourceTaskLink = ""
	st.seed(manual)

	driver := testDriver(newFakeAdapter(), st, newFakeLister(provider.Page{}))

	summary, err := driver.Run(context.Background(), Request{
		Scope:  testScope(),
		Action: ActionStart,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Reaped)

	_, ok := st.get("/resources/volumes/manual")
	assert.True(t, ok)
}
