package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"

	"go.uber.org/zap"
)

// ErrUnknownKind is returned for requests addressing an unregistered kind.
var ErrUnknownKind = errors.New("unknown resource kind")

// Service routes reconciliation requests to the per-kind drivers.
type Service struct {
	drivers map[string]*reconcile.Driver
	logger  *zap.Logger
}

// NewService builds one driver per adapter on a shared store and client pool.
func NewService(adapters []reconcile.Adapter, st store.Store, pool *reconcile.ClientPool, logger *zap.Logger) *Service {
	drivers := make(map[string]*reconcile.Driver, len(adapters))
	for _, adapter := range adapters {
		drivers[adapter.Kind()] = reconcile.NewDriver(adapter, st, pool, logger)
	}
	return &Service{drivers: drivers, logger: logger}
}

// Kinds returns the registered resource kinds, sorted.
func (s *Service) Kinds() []string {
	kinds := make([]string, 0, len(s.drivers))
	for kind := range s.drivers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Run executes one reconciliation cycle for the given kind.
func (s *Service) Run(ctx context.Context, kind string, req reconcile.Request) (reconcile.Summary, error) {
	driver, ok := s.drivers[kind]
	if !ok {
		return reconcile.Summary{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return driver.Run(ctx, req)
}

// RunAll executes one cycle per registered kind in sorted order and returns
// the merged summary. The first failure stops the sweep.
func (s *Service) RunAll(ctx context.Context, req reconcile.Request) (reconcile.Summary, error) {
	var total reconcile.Summary
	for _, kind := range s.Kinds() {
		summary, err := s.Run(ctx, kind, req)
		if err != nil {
			return total, fmt.Errorf("reconciling %s: %w", kind, err)
		}
		total.Pages += summary.Pages
		total.Created += summary.Created
		total.Updated += summary.Updated
		total.Reaped += summary.Reaped
	}
	return total, nil
}
