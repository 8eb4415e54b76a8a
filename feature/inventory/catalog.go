package inventory

import (
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/feature/bucket"
	"inventory-manager/feature/compute"
	"inventory-manager/feature/disk"
	"inventory-manager/feature/image"
	"inventory-manager/feature/loadbalancer"
	"inventory-manager/feature/network"
	"inventory-manager/feature/securitygroup"

	"go.uber.org/zap"
)

// Adapters returns every registered kind adapter.
func Adapters() []reconcile.Adapter {
	return []reconcile.Adapter{
		compute.NewAdapter(),
		disk.NewAdapter(),
		bucket.NewAdapter(),
		network.NewAdapter(),
		network.NewSubnetAdapter(),
		securitygroup.NewAdapter(),
		image.NewAdapter(),
		loadbalancer.NewAdapter(),
	}
}

// NewListerFactory builds the lister routing used by the client pool. Bucket
// enumeration goes through the object storage API; every other kind goes
// through the provider's paginated inventory endpoint.
func NewListerFactory(cfg provider.Config, objectStorage storage.Client, logger *zap.Logger) reconcile.ListerFactory {
	return func(scope provider.Scope, kind string) (provider.Lister, error) {
		if kind == bucket.Kind {
			return bucket.NewLister(objectStorage, logger), nil
		}
		return provider.NewClient(cfg, kind), nil
	}
}
