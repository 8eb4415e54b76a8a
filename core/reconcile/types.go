package reconcile

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/store"
)

// Action is the enumeration action carried by a cycle request.
type Action string

const (
	// ActionStart begins a fresh cycle, recording the staleness cutoff.
	ActionStart Action = "START"
	// ActionRefresh runs the page-processing loop.
	ActionRefresh Action = "REFRESH"
	// ActionStop cooperatively cancels: the request completes successfully
	// without further remote calls.
	ActionStop Action = "STOP"
)

// RemovalPolicy decides what happens to a local record that is provably gone
// remotely. The call site chooses the policy; the reaper only executes it.
type RemovalPolicy string

const (
	// PolicyDelete hard-deletes the record and its tightly-owned children.
	PolicyDelete RemovalPolicy = "DELETE"
	// PolicyRetire flips the record's lifecycle/power flags in place.
	PolicyRetire RemovalPolicy = "RETIRE"
	// PolicyUnlinkEndpoint detaches only the current owner's endpoint link,
	// leaving the record for the cross-owner groomer to purge once no
	// endpoints remain.
	PolicyUnlinkEndpoint RemovalPolicy = "UNLINK_ENDPOINT"
)

// Request describes one reconciliation cycle invocation.
type Request struct {
	// Scope is the owner account slice to enumerate.
	Scope provider.Scope

	// Action selects the enumeration action.
	Action Action

	// RemovalPolicy overrides the adapter's default policy when set.
	RemovalPolicy RemovalPolicy

	// SourceTaskLink marks records created by this pathway. Defaults to
	// "/tasks/reconciliation/<kind>" when empty.
	SourceTaskLink string

	// IsMock short-circuits the cycle to success without contacting the
	// provider or the store. Used for dry-run and wiring tests.
	IsMock bool
}

// Summary carries informational counters for one completed cycle.
type Summary struct {
	// Pages is the number of remote pages processed.
	Pages int `json:"pages"`
	// Created is the number of records inserted.
	Created int `json:"created"`
	// Updated is the number of records patched.
	Updated int `json:"updated"`
	// Reaped is the number of records removed, retired or unlinked.
	Reaped int `json:"reaped"`
}

// cycle is the mutable working state of one enumeration run. Only SeenIDs,
// the cursor and the counters persist across pages; everything page-scoped
// is cleared on page entry so memory stays bounded to one page.
type cycle struct {
	startTimeMicros int64
	cursor          string

	// seenIDs accumulates every remote id observed across all pages. The
	// reaper consults it so a record listed on an early page is never
	// mistaken for gone.
	seenIDs map[string]struct{}

	// page working set, rebuilt per page
	remote map[string]provider.Record
	local  map[string]store.Resource

	summary Summary
}

func newCycle(startTimeMicros int64) *cycle {
	return &cycle{
		startTimeMicros: startTimeMicros,
		seenIDs:         make(map[string]struct{}),
	}
}

// beginPage resets the page working set and folds the page's ids into the
// cumulative seen set.
func (c *cycle) beginPage(page provider.Page) {
	c.remote = make(map[string]provider.Record, len(page.Records))
	c.local = nil
	for _, rec := range page.Records {
		if rec.ID == "" {
			continue
		}
		c.remote[rec.ID] = rec
		c.seenIDs[rec.ID] = struct{}{}
	}
}

func (c *cycle) remoteIDs() []string {
	ids := make([]string, 0, len(c.remote))
	for id := range c.remote {
		ids = append(ids, id)
	}
	return ids
}
