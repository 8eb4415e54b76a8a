package reconcile

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/store"
)

// UpdatePair joins a remote record with the local record it refreshes.
type UpdatePair struct {
	Remote provider.Record
	Local  store.Resource
}

// DiffResult partitions one remote page against the local population.
type DiffResult struct {
	// Creates are remote records with no local counterpart.
	Creates []provider.Record

	// Updates are remote records paired with their existing local record.
	Updates []UpdatePair
}

// Diff partitions the remote page: ids present locally become updates, the
// rest become creates. Local records absent from the page are deliberately
// left alone: absence-driven removal is the reaper's job, because only the
// cumulative id set across all pages can prove a record is gone.
func Diff(remote map[string]provider.Record, local map[string]store.Resource) DiffResult {
	var result DiffResult

	for id, rec := range remote {
		if existing, ok := local[id]; ok {
			result.Updates = append(result.Updates, UpdatePair{Remote: rec, Local: existing})
		} else {
			result.Creates = append(result.Creates, rec)
		}
	}

	return result
}
