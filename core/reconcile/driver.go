package reconcile

import (
	"context"
	"fmt"
	"time"

	"inventory-manager/core/store"

	"go.uber.org/zap"
)

// stage identifies where in the cycle state machine a run is.
type stage string

const (
	stageClient    stage = "CLIENT"
	stageEnumerate stage = "ENUMERATE"
	stageError     stage = "ERROR"
)

// Driver runs reconciliation cycles for one resource kind. It is the
// top-level state machine: CLIENT (provider client checkout) → ENUMERATE
// (START → page-processing REFRESH loop → reap → STOP) → done, or ERROR on
// the first fatal failure.
//
// A Driver is safe for concurrent use; each Run owns its cycle state, and
// the client pool serializes cycles contending for the same scope.
type Driver struct {
	adapter Adapter
	store   store.Store
	pool    *ClientPool
	log     *zap.Logger

	// reapPageSize bounds the stale-query page size.
	reapPageSize int
}

// NewDriver creates a driver for the adapter's resource kind.
func NewDriver(adapter Adapter, st store.Store, pool *ClientPool, log *zap.Logger) *Driver {
	return &Driver{
		adapter:      adapter,
		store:        st,
		pool:         pool,
		log:          log.With(zap.String("kind", adapter.Kind())),
		reapPageSize: 100,
	}
}

// Run executes one reconciliation cycle and returns its summary. Mock
// requests short-circuit to success with zero provider or store calls.
// Any remote or query error fails the run with the original cause; no
// automatic retry happens at this layer.
func (d *Driver) Run(ctx context.Context, req Request) (Summary, error) {
	if req.IsMock {
		d.log.Info("mock request, short-circuiting to success")
		return Summary{}, nil
	}

	switch req.Action {
	case ActionStart, ActionRefresh:
		// START records the staleness cutoff and falls through to REFRESH.
		// A bare REFRESH request opens its own cycle, so it records one too.
	case ActionStop:
		// Cooperative cancellation: complete without further remote calls.
		d.log.Info("stop requested, completing cycle")
		return Summary{}, nil
	default:
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	// CLIENT stage: scoped checkout with guaranteed release on every exit
	// path, so provider-side rate limits see one cycle per scope at a time.
	lister, err := d.pool.Checkout(ctx, req.Scope, d.adapter.Kind())
	if err != nil {
		return Summary{}, d.fail(stageClient, err)
	}
	defer d.pool.Release(req.Scope, d.adapter.Kind())

	c := newCycle(time.Now().UnixMicro())
	d.log.Info("cycle started",
		zap.String("stage", string(stageEnumerate)),
		zap.String("region", req.Scope.Region),
		zap.String("endpoint", req.Scope.EndpointLink),
		zap.Int64("cycleStartTimeMicros", c.startTimeMicros))

	// REFRESH loop: one iteration per remote page. Working sets are cleared
	// at the top of each iteration; only the cursor and the cumulative seen
	// set survive a page boundary.
	for {
		if err := ctx.Err(); err != nil {
			return c.summary, d.fail(stageEnumerate, err)
		}

		page, err := lister.ListPage(ctx, req.Scope, c.cursor)
		if err != nil {
			return c.summary, d.fail(stageEnumerate, err)
		}
		c.beginPage(page)
		c.summary.Pages++

		local, err := d.store.QueryByRemoteIDs(ctx, d.adapter.Kind(), d.queryScope(req), c.remoteIDs())
		if err != nil {
			return c.summary, d.fail(stageEnumerate, err)
		}
		c.local = local

		diff := Diff(c.remote, c.local)
		if err := d.applyPage(ctx, c, diff, req); err != nil {
			return c.summary, d.fail(stageEnumerate, err)
		}

		if page.NextCursor == "" {
			break
		}
		c.cursor = page.NextCursor
	}

	// All pages drained; only now is absence across the whole listing
	// provable, so reaping starts here.
	if err := d.reap(ctx, c, req); err != nil {
		return c.summary, d.fail(stageEnumerate, err)
	}

	d.log.Info("cycle finished",
		zap.Int("pages", c.summary.Pages),
		zap.Int("created", c.summary.Created),
		zap.Int("updated", c.summary.Updated),
		zap.Int("reaped", c.summary.Reaped))

	return c.summary, nil
}

// fail routes a fatal error through the ERROR stage: logged once with its
// stage, then propagated to the caller with the original cause intact.
func (d *Driver) fail(at stage, err error) error {
	d.log.Error("cycle failed",
		zap.String("stage", string(stageError)),
		zap.String("failedAt", string(at)),
		zap.Error(err))
	return err
}

// queryScope narrows diff queries. Endpoint is deliberately not part of the
// filter: a shared resource already held by another owner must be found so
// this owner's sighting lands as an update, not a duplicate create.
func (d *Driver) queryScope(req Request) store.ScopeFilter {
	return store.ScopeFilter{
		RegionID: req.Scope.Region,
	}
}

// reapScope narrows staleness queries to records this pathway owns.
func (d *Driver) reapScope(req Request) store.ScopeFilter {
	return store.ScopeFilter{
		EndpointLink:   req.Scope.EndpointLink,
		RegionID:       req.Scope.Region,
		SourceTaskLink: sourceTaskLink(req, d.adapter.Kind()),
	}
}

// sourceTaskLink resolves the pathway marker stamped on created records and
// required of reap candidates.
func sourceTaskLink(req Request, kind string) string {
	if req.SourceTaskLink != "" {
		return req.SourceTaskLink
	}
	return "/tasks/reconciliation/" + kind
}
