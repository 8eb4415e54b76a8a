package store

import (
	"crypto/sha256"
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Lifecycle states for local resource records.
const (
	LifecycleReady   = "READY"
	LifecycleRetired = "RETIRED"
)

// Power states for compute-like records.
const (
	PowerOn  = "ON"
	PowerOff = "OFF"
)

// StringList is a []string persisted as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Contains reports whether the list holds the given entry.
func (l StringList) Contains(entry string) bool {
	for _, e := range l {
		if e == entry {
			return true
		}
	}
	return false
}

// Without returns a copy of the list with the given entry removed.
func (l StringList) Without(entry string) StringList {
	out := make(StringList, 0, len(l))
	for _, e := range l {
		if e != entry {
			out = append(out, e)
		}
	}
	return out
}

// StringMap is a map[string]string persisted as a JSON column.
type StringMap map[string]string

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into StringMap", src)
	}
}

// Resource is the persisted representation of a cloud resource.
// Diffing is keyed on (Kind, RemoteID, RegionID); SelfLink is only the
// storage key and never participates in remote/local matching.
type Resource struct {
	// SelfLink is the local storage key (e.g., "/resources/instances/<uuid>").
	SelfLink string `gorm:"column:self_link;primaryKey;size:191" json:"selfLink"`

	// Kind is the resource kind (instances, disks, buckets, ...).
	Kind string `gorm:"column:kind;size:64;uniqueIndex:idx_kind_remote_region" json:"kind"`

	// RemoteID is the provider-assigned identifier used as the join key.
	RemoteID string `gorm:"column:remote_id;size:191;uniqueIndex:idx_kind_remote_region" json:"id"`

	// RegionID is the provider region the resource lives in.
	RegionID string `gorm:"column:region_id;size:64;uniqueIndex:idx_kind_remote_region" json:"regionId"`

	// Name is the display name.
	Name string `gorm:"column:name;size:255" json:"name"`

	// EndpointLinks are the owning account endpoints. Shared resources may
	// carry several owners; removal only detaches the current owner.
	EndpointLinks StringList `gorm:"column:endpoint_links;type:json" json:"endpointLinks"`

	// TenantLinks scope the record to tenants.
	TenantLinks StringList `gorm:"column:tenant_links;type:json" json:"tenantLinks"`

	// TagLinks reference Tag records by self-link.
	TagLinks StringList `gorm:"column:tag_links;type:json" json:"tagLinks"`

	// ResourcePoolLink references the resource pool the record is placed in.
	ResourcePoolLink string `gorm:"column:resource_pool_link;size:191" json:"resourcePoolLink,omitempty"`

	// ParentLink references the owning record for synthesized children
	// (e.g., a network interface's instance).
	ParentLink string `gorm:"column:parent_link;size:191;index" json:"parentLink,omitempty"`

	// NetworkLink and SubnetLink reference related local records by self-link.
	NetworkLink string `gorm:"column:network_link;size:191" json:"networkLink,omitempty"`
	SubnetLink  string `gorm:"column:subnet_link;size:191" json:"subnetLink,omitempty"`

	// GroupLinks reference security group records by self-link.
	GroupLinks StringList `gorm:"column:group_links;type:json" json:"groupLinks"`

	// ChildLinks reference synthesized sub-records (e.g., an instance's
	// network interfaces) by self-link. Wired before the parent is created
	// so no follow-up patch is needed.
	ChildLinks StringList `gorm:"column:child_links;type:json" json:"childLinks"`

	// InstanceType is the provider machine/volume type where applicable.
	InstanceType string `gorm:"column:instance_type;size:64" json:"instanceType,omitempty"`

	// Status is the provider-reported state at last sighting.
	Status string `gorm:"column:status;size:64" json:"status,omitempty"`

	// LifecycleState tracks retirement (READY, RETIRED).
	LifecycleState string `gorm:"column:lifecycle_state;size:32" json:"lifecycleState,omitempty"`

	// PowerState tracks power for compute-like kinds (ON, OFF).
	PowerState string `gorm:"column:power_state;size:32" json:"powerState,omitempty"`

	// CapacityMB is the capacity for sized resources.
	CapacityMB int64 `gorm:"column:capacity_mb" json:"capacityMB,omitempty"`

	// SourceTaskLink marks the reconciliation pathway that created the
	// record. The staleness reaper only considers records carrying the
	// marker of its own pathway.
	SourceTaskLink string `gorm:"column:source_task_link;size:191;index" json:"sourceTaskLink,omitempty"`

	// UpdateTimeMicros is the last-write timestamp used as the staleness
	// cutoff. It advances exactly when a create or patch is applied.
	UpdateTimeMicros int64 `gorm:"column:update_time_micros;index" json:"updateTimeMicros"`

	// Attrs carries kind-specific attributes that have no dedicated column.
	Attrs StringMap `gorm:"column:attrs;type:json" json:"attrs,omitempty"`
}

// TableName implements the gorm table naming convention.
func (Resource) TableName() string {
	return "resources"
}

// Tag is a key/value pair deduplicated globally by (key, value) and
// referenced from resources by self-link.
type Tag struct {
	// SelfLink is derived from the key/value pair, so create-if-absent is
	// naturally idempotent.
	SelfLink string `gorm:"column:self_link;primaryKey;size:191" json:"selfLink"`

	// Key is the tag key.
	Key string `gorm:"column:tag_key;size:191;uniqueIndex:idx_key_value" json:"key"`

	// Value is the tag value.
	Value string `gorm:"column:tag_value;size:191;uniqueIndex:idx_key_value" json:"value"`
}

// TableName implements the gorm table naming convention.
func (Tag) TableName() string {
	return "tags"
}

// NewSelfLink mints a storage key for a resource of the given kind.
func NewSelfLink(kind string) string {
	return fmt.Sprintf("/resources/%s/%s", kind, uuid.NewString())
}

// TagSelfLink derives the deterministic storage key for a tag pair.
func TagSelfLink(key, value string) string {
	sum := sha256.Sum256([]byte(key + "=" + value))
	return "/resources/tags/" + hex.EncodeToString(sum[:16])
}
