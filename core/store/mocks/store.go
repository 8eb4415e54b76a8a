package mocks

import (
	"context"

	"inventory-manager/core/store"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) QueryByRemoteIDs(ctx context.Context, kind string, scope store.ScopeFilter, ids []string) (map[string]store.Resource, error) {
	args := m.Called(ctx, kind, scope, ids)
	if result, ok := args.Get(0).(map[string]store.Resource); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) QueryStale(ctx context.Context, kind string, scope store.ScopeFilter, olderThanMicros int64, cursor string, limit int) ([]store.Resource, string, error) {
	args := m.Called(ctx, kind, scope, olderThanMicros, cursor, limit)
	if records, ok := args.Get(0).([]store.Resource); ok {
		return records, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *Store) Create(ctx context.Context, res store.Resource) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *Store) Patch(ctx context.Context, selfLink string, fields map[string]any) error {
	args := m.Called(ctx, selfLink, fields)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, selfLink string) error {
	args := m.Called(ctx, selfLink)
	return args.Error(0)
}

func (m *Store) DeleteByParent(ctx context.Context, parentLink string) error {
	args := m.Called(ctx, parentLink)
	return args.Error(0)
}

func (m *Store) Retire(ctx context.Context, selfLink string) error {
	args := m.Called(ctx, selfLink)
	return args.Error(0)
}

func (m *Store) UnlinkEndpoint(ctx context.Context, selfLink, endpointLink string) error {
	args := m.Called(ctx, selfLink, endpointLink)
	return args.Error(0)
}

func (m *Store) CreateTagIfAbsent(ctx context.Context, key, value string) (string, error) {
	args := m.Called(ctx, key, value)
	return args.String(0), args.Error(1)
}

func (m *Store) AppendTagLinks(ctx context.Context, selfLink string, tagLinks []string) error {
	args := m.Called(ctx, selfLink, tagLinks)
	return args.Error(0)
}
