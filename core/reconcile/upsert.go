package reconcile

import (
	"context"
	"sync"

	"inventory-manager/core/provider"
	"inventory-manager/core/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reservedNameTagKey is the provider's display-name tag. It is surfaced as
// the record's Name field and must never materialize as a tag record.
const reservedNameTagKey = "Name"

// batchConcurrency bounds the fan-out width of joined batches.
const batchConcurrency = 8

type tagPair struct {
	key   string
	value string
}

// applyPage turns a page diff into applied local state. Tag materialization
// and tag-link deltas are best-effort; record creates and patches form a
// joined critical batch whose first failure fails the cycle.
func (d *Driver) applyPage(ctx context.Context, c *cycle, diff DiffResult, req Request) error {
	// 1. Materialize the union of tags referenced by this page, so tag
	// records exist (or are at least submitted) before anything links them.
	created := d.materializeTags(ctx, diff)

	// 2. Synthesize create records, children included, with all links wired
	// up front.
	var creates []store.Resource
	for _, rec := range diff.Creates {
		res := d.adapter.MapRemote(rec, req.Scope)
		res.Kind = d.adapter.Kind()
		res.RemoteID = rec.ID
		res.SelfLink = store.NewSelfLink(res.Kind)
		d.stampScope(&res, req)

		// Only tags that were confirmed created are linked from a new
		// record; the rest are picked up by a later cycle's delta.
		for _, pair := range recordTags(rec) {
			if link, ok := created[pair]; ok {
				res.TagLinks = append(res.TagLinks, link)
			}
		}

		children := d.adapter.Children(rec, &res, req.Scope)
		for i := range children {
			d.stampScope(&children[i], req)
		}

		creates = append(creates, children...)
		creates = append(creates, res)
	}

	// 3. Joined critical batch: all creates and all patches fan out
	// concurrently; the batch succeeds only if every operation succeeds.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, res := range creates {
		res := res
		g.Go(func() error {
			return d.store.Create(gctx, res)
		})
	}

	for _, pair := range diff.Updates {
		pair := pair
		g.Go(func() error {
			return d.store.Patch(gctx, pair.Local.SelfLink, d.patchFields(pair, req))
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	c.summary.Created += len(diff.Creates)
	c.summary.Updated += len(diff.Updates)

	// 4. Tag-link delta for updates: append remote tags not yet reflected
	// locally. Collection-style add, and best-effort; a failure here is
	// reconciled by a future cycle.
	d.appendTagDeltas(ctx, diff)

	return nil
}

// materializeTags issues idempotent create-if-absent writes for every tag
// referenced by the page, excluding the reserved name tag. Failures are
// logged and swallowed; the returned map holds only confirmed links.
func (d *Driver) materializeTags(ctx context.Context, diff DiffResult) map[tagPair]string {
	union := make(map[tagPair]struct{})
	for _, rec := range diff.Creates {
		for _, pair := range recordTags(rec) {
			union[pair] = struct{}{}
		}
	}
	for _, up := range diff.Updates {
		for _, pair := range recordTags(up.Remote) {
			union[pair] = struct{}{}
		}
	}

	created := make(map[tagPair]string, len(union))
	if len(union) == 0 {
		return created
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for pair := range union {
		pair := pair
		g.Go(func() error {
			link, err := d.store.CreateTagIfAbsent(gctx, pair.key, pair.value)
			if err != nil {
				// Best-effort: the record is created without this tag and a
				// later cycle links it.
				d.log.Warn("tag creation failed",
					zap.String("key", pair.key),
					zap.String("value", pair.value),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			created[pair] = link
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return created
}

// appendTagDeltas computes, per updated record, the remote tags not yet in
// its local tag-link set and appends them. Links are derived rather than
// waited on, so tags still in flight from materialization are tolerated.
func (d *Driver) appendTagDeltas(ctx context.Context, diff DiffResult) {
	for _, up := range diff.Updates {
		var delta []string
		for _, pair := range recordTags(up.Remote) {
			link := store.TagSelfLink(pair.key, pair.value)
			if !up.Local.TagLinks.Contains(link) {
				delta = append(delta, link)
			}
		}
		if len(delta) == 0 {
			continue
		}
		if err := d.store.AppendTagLinks(ctx, up.Local.SelfLink, delta); err != nil {
			d.log.Warn("tag-link delta patch failed",
				zap.String("selfLink", up.Local.SelfLink),
				zap.Error(err))
		}
	}
}

// patchFields builds the field-level update for one refreshed record.
func (d *Driver) patchFields(pair UpdatePair, req Request) map[string]any {
	mapped := d.adapter.MapRemote(pair.Remote, req.Scope)

	fields := map[string]any{
		"name":   mapped.Name,
		"status": mapped.Status,
	}
	if mapped.InstanceType != "" {
		fields["instance_type"] = mapped.InstanceType
	}
	if mapped.CapacityMB != 0 {
		fields["capacity_mb"] = mapped.CapacityMB
	}
	if len(mapped.Attrs) > 0 {
		fields["attrs"] = mapped.Attrs
	}

	// A shared resource discovered by a new owner gains that owner's
	// endpoint link on update.
	if req.Scope.EndpointLink != "" && !pair.Local.EndpointLinks.Contains(req.Scope.EndpointLink) {
		fields["endpoint_links"] = append(pair.Local.EndpointLinks, req.Scope.EndpointLink)
	}

	return fields
}

// stampScope fills the owner-scope fields the engine is responsible for.
func (d *Driver) stampScope(res *store.Resource, req Request) {
	if res.RegionID == "" {
		res.RegionID = req.Scope.Region
	}
	if req.Scope.EndpointLink != "" && !res.EndpointLinks.Contains(req.Scope.EndpointLink) {
		res.EndpointLinks = append(res.EndpointLinks, req.Scope.EndpointLink)
	}
	if len(res.TenantLinks) == 0 {
		res.TenantLinks = req.Scope.TenantLinks
	}
	if res.ResourcePoolLink == "" {
		res.ResourcePoolLink = req.Scope.ResourcePoolLink
	}
	res.SourceTaskLink = sourceTaskLink(req, d.adapter.Kind())
}

// recordTags returns a record's tag pairs with the reserved name tag
// filtered out.
func recordTags(rec provider.Record) []tagPair {
	if len(rec.Tags) == 0 {
		return nil
	}
	pairs := make([]tagPair, 0, len(rec.Tags))
	for k, v := range rec.Tags {
		if k == reservedNameTagKey {
			continue
		}
		pairs = append(pairs, tagPair{key: k, value: v})
	}
	return pairs
}
