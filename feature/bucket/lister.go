package bucket

import (
	"context"
	"time"

	"inventory-manager/core/provider"
	"inventory-manager/core/storage"

	"go.uber.org/zap"
)

// Lister yields bucket records through the object storage client. Bucket
// listings are not paginated upstream, so everything lands on one page with
// an empty continuation cursor.
type Lister struct {
	client storage.Client
	logger *zap.Logger
}

// NewLister creates a bucket lister on top of an object storage client.
func NewLister(client storage.Client, logger *zap.Logger) *Lister {
	return &Lister{client: client, logger: logger}
}

// ListPage implements provider.Lister. Tag and location lookups are
// best-effort: a bucket whose metadata cannot be fetched is still listed,
// since dropping it here would make the reaper treat it as gone.
func (l *Lister) ListPage(ctx context.Context, scope provider.Scope, cursor string) (provider.Page, error) {
	if cursor != "" {
		return provider.Page{}, nil
	}

	buckets, err := l.client.ListBuckets(ctx)
	if err != nil {
		return provider.Page{}, err
	}

	records := make([]provider.Record, 0, len(buckets))
	for _, b := range buckets {
		rec := provider.Record{
			ID:    b.Name,
			Name:  b.Name,
			State: "available",
			Attrs: map[string]string{
				"creationDate": b.CreationDate.UTC().Format(time.RFC3339),
			},
		}

		if tagSet, err := l.client.GetBucketTagging(ctx, b.Name); err != nil {
			l.logger.Warn("failed to fetch bucket tags",
				zap.String("bucket", b.Name), zap.Error(err))
		} else if tagSet != nil {
			rec.Tags = tagSet.ToMap()
		}

		if location, err := l.client.GetBucketLocation(ctx, b.Name); err != nil {
			l.logger.Warn("failed to fetch bucket location",
				zap.String("bucket", b.Name), zap.Error(err))
		} else {
			rec.Attrs["location"] = location
			if scope.Region != "" && location != "" && location != scope.Region {
				continue
			}
		}

		records = append(records, rec)
	}

	return provider.Page{Records: records}, nil
}
