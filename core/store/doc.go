// Package store persists the local inventory of cloud resources.
//
// It defines the Resource and Tag models, the Store contract the
// reconciliation engine writes through, and a GORM/MySQL implementation.
//
// # Identity
//
// A resource is identified remotely by its provider-assigned id and locally
// by its self-link. The engine diffs on (kind, remote id, region); the
// self-link is purely a storage key. Tags are deduplicated globally by
// (key, value) with a self-link derived from the pair, so tag creation is
// naturally create-if-absent.
//
// # Idempotency
//
// Every write is safe to repeat with identical input: creates upsert on the
// (kind, remote_id, region_id) unique index, patches are field-level, and
// tag-link appends merge instead of overwriting. Cycles run with
// at-least-once semantics and rely on this.
package store
