package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore is the GORM-backed Store implementation.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore wraps an established database connection.
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates or updates the inventory tables.
func (s *SQLStore) Migrate() error {
	return s.db.AutoMigrate(&Resource{}, &Tag{})
}

// scoped applies the scope filter to a resources query.
func scoped(tx *gorm.DB, scope ScopeFilter) *gorm.DB {
	if scope.RegionID != "" {
		tx = tx.Where("region_id = ?", scope.RegionID)
	}
	if scope.EndpointLink != "" {
		// endpoint_links is a JSON array of strings; membership is checked
		// against the quoted element.
		tx = tx.Where("endpoint_links LIKE ?", "%\""+scope.EndpointLink+"\"%")
	}
	if scope.SourceTaskLink != "" {
		tx = tx.Where("source_task_link = ?", scope.SourceTaskLink)
	}
	return tx
}

// QueryByRemoteIDs implements Store.
func (s *SQLStore) QueryByRemoteIDs(ctx context.Context, kind string, scope ScopeFilter, ids []string) (map[string]Resource, error) {
	result := make(map[string]Resource, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var records []Resource
	tx := scoped(s.db.WithContext(ctx).Where("kind = ?", kind), scope)
	if err := tx.Where("remote_id IN ?", ids).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s records: %w", kind, err)
	}

	for _, rec := range records {
		result[rec.RemoteID] = rec
	}
	return result, nil
}

// QueryStale implements Store. The cursor is the last self link of the
// previous page, not a row offset: callers remove rows from the filtered set
// while paging, and an offset over the shrinking set would skip survivors.
func (s *SQLStore) QueryStale(ctx context.Context, kind string, scope ScopeFilter, olderThanMicros int64, cursor string, limit int) ([]Resource, string, error) {
	if limit <= 0 {
		limit = 100
	}

	var records []Resource
	tx := scoped(s.db.WithContext(ctx).Where("kind = ?", kind), scope).
		Where("update_time_micros < ?", olderThanMicros)
	if cursor != "" {
		tx = tx.Where("self_link > ?", cursor)
	}
	tx = tx.Order("self_link").Limit(limit)
	if err := tx.Find(&records).Error; err != nil {
		return nil, "", fmt.Errorf("failed to query stale %s records: %w", kind, err)
	}

	next := ""
	if len(records) == limit {
		next = records[len(records)-1].SelfLink
	}
	return records, next, nil
}

// Create implements Store. A record colliding on (kind, remote_id, region_id)
// is refreshed in place, which makes repeated cycles safe.
func (s *SQLStore) Create(ctx context.Context, res Resource) error {
	if res.SelfLink == "" {
		res.SelfLink = NewSelfLink(res.Kind)
	}
	if res.LifecycleState == "" {
		res.LifecycleState = LifecycleReady
	}
	res.UpdateTimeMicros = time.Now().UnixMicro()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "remote_id"}, {Name: "region_id"}},
			UpdateAll: true,
		}).
		Create(&res).Error
	if err != nil {
		return fmt.Errorf("failed to create %s record %s: %w", res.Kind, res.RemoteID, err)
	}
	return nil
}

// Patch implements Store.
func (s *SQLStore) Patch(ctx context.Context, selfLink string, fields map[string]any) error {
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["update_time_micros"] = time.Now().UnixMicro()

	err := s.db.WithContext(ctx).
		Model(&Resource{}).
		Where("self_link = ?", selfLink).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to patch record %s: %w", selfLink, err)
	}
	return nil
}

// Delete implements Store.
func (s *SQLStore) Delete(ctx context.Context, selfLink string) error {
	err := s.db.WithContext(ctx).
		Where("self_link = ?", selfLink).
		Delete(&Resource{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", selfLink, err)
	}
	return nil
}

// DeleteByParent implements Store.
func (s *SQLStore) DeleteByParent(ctx context.Context, parentLink string) error {
	err := s.db.WithContext(ctx).
		Where("parent_link = ?", parentLink).
		Delete(&Resource{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete children of %s: %w", parentLink, err)
	}
	return nil
}

// Retire implements Store. The record is flipped in place; its timestamp is
// left alone so it still reads as untouched by the current cycle.
func (s *SQLStore) Retire(ctx context.Context, selfLink string) error {
	err := s.db.WithContext(ctx).
		Model(&Resource{}).
		Where("self_link = ?", selfLink).
		Updates(map[string]any{
			"lifecycle_state": LifecycleRetired,
			"power_state":     PowerOff,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to retire record %s: %w", selfLink, err)
	}
	return nil
}

// UnlinkEndpoint implements Store.
func (s *SQLStore) UnlinkEndpoint(ctx context.Context, selfLink, endpointLink string) error {
	var rec Resource
	if err := s.db.WithContext(ctx).Where("self_link = ?", selfLink).First(&rec).Error; err != nil {
		return fmt.Errorf("failed to load record %s: %w", selfLink, err)
	}

	if !rec.EndpointLinks.Contains(endpointLink) {
		return nil
	}

	err := s.db.WithContext(ctx).
		Model(&Resource{}).
		Where("self_link = ?", selfLink).
		Update("endpoint_links", rec.EndpointLinks.Without(endpointLink)).Error
	if err != nil {
		return fmt.Errorf("failed to unlink endpoint from %s: %w", selfLink, err)
	}
	return nil
}

// CreateTagIfAbsent implements Store. The self-link is derived from the pair,
// so concurrent callers converge on the same row.
func (s *SQLStore) CreateTagIfAbsent(ctx context.Context, key, value string) (string, error) {
	tag := Tag{
		SelfLink: TagSelfLink(key, value),
		Key:      key,
		Value:    value,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tag).Error
	if err != nil {
		return "", fmt.Errorf("failed to create tag %s=%s: %w", key, value, err)
	}
	return tag.SelfLink, nil
}

// AppendTagLinks implements Store. Links are merged rather than overwritten
// so tags added concurrently by other writers survive.
func (s *SQLStore) AppendTagLinks(ctx context.Context, selfLink string, tagLinks []string) error {
	if len(tagLinks) == 0 {
		return nil
	}

	var rec Resource
	if err := s.db.WithContext(ctx).Where("self_link = ?", selfLink).First(&rec).Error; err != nil {
		return fmt.Errorf("failed to load record %s: %w", selfLink, err)
	}

	merged := rec.TagLinks
	changed := false
	for _, link := range tagLinks {
		if !merged.Contains(link) {
			merged = append(merged, link)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	err := s.db.WithContext(ctx).
		Model(&Resource{}).
		Where("self_link = ?", selfLink).
		Update("tag_links", merged).Error
	if err != nil {
		return fmt.Errorf("failed to append tag links to %s: %w", selfLink, err)
	}
	return nil
}
