package reconcile

import (
	"context"

	"inventory-manager/core/store"

	"go.uber.org/zap"
)

// reap removes local records this cycle's remote scope should have listed
// but didn't: records carrying this pathway's source marker, untouched since
// the cycle started, and absent from the cumulative remote id set.
//
// Query errors are fatal to the cycle. Individual removal failures are
// logged and skipped, and the loop always proceeds to its next page.
func (d *Driver) reap(ctx context.Context, c *cycle, req Request) error {
	policy := req.RemovalPolicy
	if policy == "" {
		policy = d.adapter.Policy()
	}

	scope := d.reapScope(req)

	cursor := ""
	for {
		records, next, err := d.store.QueryStale(ctx, d.adapter.Kind(), scope, c.startTimeMicros, cursor, d.reapPageSize)
		if err != nil {
			return err
		}

		for _, rec := range records {
			// Touched on any page of this cycle means still alive, no
			// matter how stale the timestamp was when the cycle began.
			if _, seen := c.seenIDs[rec.RemoteID]; seen {
				continue
			}

			if err := d.remove(ctx, rec, policy, req); err != nil {
				d.log.Warn("removal failed, continuing reap",
					zap.String("selfLink", rec.SelfLink),
					zap.String("remoteId", rec.RemoteID),
					zap.String("policy", string(policy)),
					zap.Error(err))
				continue
			}
			c.summary.Reaped++
		}

		if next == "" {
			return nil
		}
		cursor = next
	}
}

// remove applies the chosen removal policy to one stale record.
func (d *Driver) remove(ctx context.Context, rec store.Resource, policy RemovalPolicy, req Request) error {
	switch policy {
	case PolicyRetire:
		return d.store.Retire(ctx, rec.SelfLink)

	case PolicyUnlinkEndpoint:
		// Multi-owner kinds only lose the current owner's link; the record
		// survives while any other endpoint still references it. Purging the
		// fully-unreferenced record is the groomer's job, not ours.
		return d.store.UnlinkEndpoint(ctx, rec.SelfLink, req.Scope.EndpointLink)

	case PolicyDelete:
		fallthrough
	default:
		if err := d.store.Delete(ctx, rec.SelfLink); err != nil {
			return err
		}
		// Cascade to tightly-owned children (e.g., network interfaces).
		return d.store.DeleteByParent(ctx, rec.SelfLink)
	}
}
