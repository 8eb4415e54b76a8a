package inventory_test

import (
	"context"
	"testing"

	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/store"
	storemocks "inventory-manager/core/store/mocks"
	"inventory-manager/feature/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func emptyListerFactory(t *testing.T) reconcile.ListerFactory {
	t.Helper()
	return func(scope provider.Scope, kind string) (provider.Lister, error) {
		return provider.ListerFunc(func(ctx context.Context, scope provider.Scope, cursor string) (provider.Page, error) {
			return provider.Page{}, nil
		}), nil
	}
}

func emptyStore() *storemocks.Store {
	st := new(storemocks.Store)
	st.On("QueryByRemoteIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]store.Resource{}, nil)
	st.On("QueryStale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]store.Resource{}, "", nil)
	return st
}

func TestService_Run_UnknownKind(t *testing.T) {
	svc := inventory.NewService(inventory.Adapters(), emptyStore(),
		reconcile.NewClientPool(emptyListerFactory(t)), zap.NewNop())

	_, err := svc.Run(context.Background(), "teapots", reconcile.Request{Action: reconcile.ActionStart})

	assert.ErrorIs(t, err, inventory.ErrUnknownKind)
}

func TestService_Kinds(t *testing.T) {
	svc := inventory.NewService(inventory.Adapters(), emptyStore(),
		reconcile.NewClientPool(emptyListerFactory(t)), zap.NewNop())

	kinds := svc.Kinds()

	assert.Equal(t, []string{
		"buckets", "disks", "images", "instances",
		"load-balancers", "networks", "security-groups", "subnets",
	}, kinds)
}

func TestService_RunAll_SweepsEveryKind(t *testing.T) {
	svc := inventory.NewService(inventory.Adapters(), emptyStore(),
		reconcile.NewClientPool(emptyListerFactory(t)), zap.NewNop())

	total, err := svc.RunAll(context.Background(), reconcile.Request{
		Action: reconcile.ActionStart,
		Scope:  provider.Scope{EndpointLink: "/endpoints/e1", Region: "us-east-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, len(svc.Kinds()), total.Pages)
	assert.Zero(t, total.Created)
}
