package reconcile

import (
	"context"
	"sync"

	"inventory-manager/core/provider"

	"golang.org/x/sync/singleflight"
)

// ListerFactory builds a provider lister for a scope and resource kind.
type ListerFactory func(scope provider.Scope, kind string) (provider.Lister, error)

// ClientPool hands out provider client handles scoped to (kind, endpoint,
// region). A handle is checked out for the duration of one cycle and must be
// released on every exit path; a second cycle for the same scope is refused
// rather than queued, respecting provider-side rate limits.
type ClientPool struct {
	mu      sync.Mutex
	sf      singleflight.Group
	entries map[string]*poolEntry
	factory ListerFactory
}

type poolEntry struct {
	lister provider.Lister
	inUse  bool
}

// NewClientPool creates a pool that builds listers through factory.
func NewClientPool(factory ListerFactory) *ClientPool {
	return &ClientPool{
		entries: make(map[string]*poolEntry),
		factory: factory,
	}
}

func poolKey(scope provider.Scope, kind string) string {
	return kind + "|" + scope.EndpointLink + "|" + scope.Region
}

// Checkout returns the scope's lister, constructing it on first use.
// Construction is deduplicated with singleflight so concurrent first
// checkouts for one scope build a single client.
func (p *ClientPool) Checkout(ctx context.Context, scope provider.Scope, kind string) (provider.Lister, error) {
	key := poolKey(scope, kind)

	_, err, _ := p.sf.Do(key, func() (any, error) {
		p.mu.Lock()
		_, exists := p.entries[key]
		p.mu.Unlock()
		if exists {
			return nil, nil
		}

		lister, err := p.factory(scope, kind)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.entries[key] = &poolEntry{lister: lister}
		p.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	entry := p.entries[key]
	if entry.inUse {
		return nil, ErrScopeBusy
	}
	entry.inUse = true
	return entry.lister, nil
}

// Release returns the scope's handle to the pool. Releasing a handle that
// was never checked out is a no-op.
func (p *ClientPool) Release(scope provider.Scope, kind string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.entries[poolKey(scope, kind)]; ok {
		entry.inUse = false
	}
}
