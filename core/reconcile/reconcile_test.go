package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"inventory-manager/core/provider"
	"inventory-manager/core/store"

	"go.uber.org/zap"
)

// fakeLister serves a fixed sequence of pages keyed by cursor.
type fakeLister struct {
	mu    sync.Mutex
	pages map[string]provider.Page
	err   error
	calls int
}

func newFakeLister(pages ...provider.Page) *fakeLister {
	byCursor := make(map[string]provider.Page, len(pages))
	cursor := ""
	for i, page := range pages {
		byCursor[cursor] = page
		cursor = page.NextCursor
		if cursor == "" && i < len(pages)-1 {
			panic("intermediate page must set NextCursor")
		}
	}
	return &fakeLister{pages: byCursor}
}

func (f *fakeLister) ListPage(ctx context.Context, scope provider.Scope, cursor string) (provider.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return provider.Page{}, f.err
	}
	page, ok := f.pages[cursor]
	if !ok {
		return provider.Page{}, fmt.Errorf("unexpected cursor %q", cursor)
	}
	return page, nil
}

// fakeStore is an in-memory store.Store with per-method call counters and
// injectable failures.
type fakeStore struct {
	mu        sync.Mutex
	resources map[string]store.Resource // by self link
	tags      map[string]store.Tag      // by self link
	calls     map[string]int

	tagCreateErr error
	deleteErr    map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		resources: make(map[string]store.Resource),
		tags:      make(map[string]store.Tag),
		calls:     make(map[string]int),
		deleteErr: make(map[string]error),
	}
}

func (f *fakeStore) count(method string) {
	f.calls[method]++
}

func (f *fakeStore) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// seed inserts a record directly, bypassing counters and timestamps.
func (f *fakeStore) seed(res store.Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resources[res.SelfLink] = res
}

func (f *fakeStore) get(selfLink string) (store.Resource, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.resources[selfLink]
	return res, ok
}

// byRemoteID returns the first record of the kind with the given remote id.
func (f *fakeStore) byRemoteID(kind, remoteID string) (store.Resource, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, res := range f.resources {
		if res.Kind == kind && res.RemoteID == remoteID {
			return res, true
		}
	}
	return store.Resource{}, false
}

func (f *fakeStore) countKind(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, res := range f.resources {
		if res.Kind == kind {
			n++
		}
	}
	return n
}

func matchesScope(res store.Resource, scope store.ScopeFilter) bool {
	if scope.RegionID != "" && res.RegionID != scope.RegionID {
		return false
	}
	if scope.EndpointLink != "" && !res.EndpointLinks.Contains(scope.EndpointLink) {
		return false
	}
	if scope.SourceTaskLink != "" && res.SourceTaskLink != scope.SourceTaskLink {
		return false
	}
	return true
}

func (f *fakeStore) QueryByRemoteIDs(ctx context.Context, kind string, scope store.ScopeFilter, ids []string) (map[string]store.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("QueryByRemoteIDs")

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make(map[string]store.Resource)
	for _, res := range f.resources {
		if res.Kind != kind || !matchesScope(res, scope) {
			continue
		}
		if _, ok := wanted[res.RemoteID]; ok {
			result[res.RemoteID] = res
		}
	}
	return result, nil
}

func (f *fakeStore) QueryStale(ctx context.Context, kind string, scope store.ScopeFilter, olderThanMicros int64, cursor string, limit int) ([]store.Resource, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("QueryStale")

	// Same keyset contract as the SQL store: pages ordered by self link, the
	// cursor is the last self link of the previous page.
	var stale []store.Resource
	for _, res := range f.resources {
		if res.Kind != kind || !matchesScope(res, scope) {
			continue
		}
		if res.UpdateTimeMicros >= olderThanMicros {
			continue
		}
		if cursor != "" && res.SelfLink <= cursor {
			continue
		}
		stale = append(stale, res)
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].SelfLink < stale[j].SelfLink })

	if limit <= 0 {
		limit = 100
	}
	next := ""
	if len(stale) > limit {
		stale = stale[:limit]
	}
	if len(stale) == limit {
		next = stale[len(stale)-1].SelfLink
	}
	return stale, next, nil
}

func (f *fakeStore) Create(ctx context.Context, res store.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("Create")

	res.UpdateTimeMicros = time.Now().UnixMicro()

	// Mirror the unique-index upsert: a colliding triple refreshes the
	// existing row and keeps its self link.
	for link, existing := range f.resources {
		if existing.Kind == res.Kind && existing.RemoteID == res.RemoteID && existing.RegionID == res.RegionID {
			res.SelfLink = link
			f.resources[link] = res
			return nil
		}
	}
	f.resources[res.SelfLink] = res
	return nil
}

func (f *fakeStore) Patch(ctx context.Context, selfLink string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("Patch")

	res, ok := f.resources[selfLink]
	if !ok {
		return fmt.Errorf("no record at %s", selfLink)
	}
	for key, value := range fields {
		switch key {
		case "name":
			res.Name = value.(string)
		case "status":
			res.Status = value.(string)
		case "instance_type":
			res.InstanceType = value.(string)
		case "capacity_mb":
			res.CapacityMB = value.(int64)
		case "attrs":
			res.Attrs = value.(store.StringMap)
		case "endpoint_links":
			res.EndpointLinks = value.(store.StringList)
		}
	}
	res.UpdateTimeMicros = time.Now().UnixMicro()
	f.resources[selfLink] = res
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, selfLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("Delete")

	if err, ok := f.deleteErr[selfLink]; ok {
		return err
	}
	delete(f.resources, selfLink)
	return nil
}

func (f *fakeStore) DeleteByParent(ctx context.Context, parentLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("DeleteByParent")

	for link, res := range f.resources {
		if res.ParentLink == parentLink {
			delete(f.resources, link)
		}
	}
	return nil
}

func (f *fakeStore) Retire(ctx context.Context, selfLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("Retire")

	res, ok := f.resources[selfLink]
	if !ok {
		return fmt.Errorf("no record at %s", selfLink)
	}
	res.LifecycleState = store.LifecycleRetired
	res.PowerState = store.PowerOff
	f.resources[selfLink] = res
	return nil
}

func (f *fakeStore) UnlinkEndpoint(ctx context.Context, selfLink, endpointLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("UnlinkEndpoint")

	res, ok := f.resources[selfLink]
	if !ok {
		return fmt.Errorf("no record at %s", selfLink)
	}
	res.EndpointLinks = res.EndpointLinks.Without(endpointLink)
	f.resources[selfLink] = res
	return nil
}

func (f *fakeStore) CreateTagIfAbsent(ctx context.Context, key, value string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("CreateTagIfAbsent")

	if f.tagCreateErr != nil {
		return "", f.tagCreateErr
	}
	link := store.TagSelfLink(key, value)
	if _, ok := f.tags[link]; !ok {
		f.tags[link] = store.Tag{SelfLink: link, Key: key, Value: value}
	}
	return link, nil
}

func (f *fakeStore) AppendTagLinks(ctx context.Context, selfLink string, tagLinks []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("AppendTagLinks")

	res, ok := f.resources[selfLink]
	if !ok {
		return fmt.Errorf("no record at %s", selfLink)
	}
	for _, link := range tagLinks {
		if !res.TagLinks.Contains(link) {
			res.TagLinks = append(res.TagLinks, link)
		}
	}
	f.resources[selfLink] = res
	return nil
}

// fakeAdapter is a minimal volume-flavored adapter.
type fakeAdapter struct {
	kind     string
	policy   RemovalPolicy
	children func(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{kind: "volumes", policy: PolicyDelete}
}

func (a *fakeAdapter) Kind() string {
	return a.kind
}

func (a *fakeAdapter) Policy() RemovalPolicy {
	return a.policy
}

func (a *fakeAdapter) MapRemote(rec provider.Record, scope provider.Scope) store.Resource {
	name := rec.Name
	if name == "" {
		name = rec.Tags["Name"]
	}
	return store.Resource{
		Name:       name,
		Status:     rec.State,
		CapacityMB: rec.CapacityMB,
	}
}

func (a *fakeAdapter) Children(rec provider.Record, parent *store.Resource, scope provider.Scope) []store.Resource {
	if a.children == nil {
		return nil
	}
	return a.children(rec, parent, scope)
}

// testDriver wires a driver around fakes with a pre-built pool entry.
func testDriver(adapter Adapter, st store.Store, lister provider.Lister) *Driver {
	pool := NewClientPool(func(scope provider.Scope, kind string) (provider.Lister, error) {
		return lister, nil
	})
	return NewDriver(adapter, st, pool, zap.NewNop())
}

func testScope() provider.Scope {
	return provider.Scope{
		EndpointLink:     "/endpoints/e1",
		Region:           "us-east-1",
		Account:          "123456789012",
		TenantLinks:      []string{"/tenants/t1"},
		ResourcePoolLink: "/pools/p1",
	}
}
