// Package reconcile implements the enumeration reconciliation engine: the
// generic algorithm that keeps the local inventory tracking a remote cloud
// provider's live state, one resource kind at a time.
//
// # Cycle shape
//
// A cycle pages through the provider listing, diffs each page against the
// local records for the same scope, applies creates and field-level patches
// as one joined batch, then, once every page is drained, reaps records the
// listing should have mentioned but didn't. Every resource kind (instances,
// disks, buckets, networks, subnets, security groups, images, load
// balancers) instantiates this same driver shape through a thin Adapter.
//
// # Failure asymmetry
//
// Primary writes (record creates and patches) are critical: the first
// failure fails the cycle with its original cause, and no retry happens at
// this layer. Auxiliary bookkeeping (tag materialization, tag-link deltas,
// endpoint unlinks during reaping) is best-effort: failures are logged and
// the cycle continues, leaving the enrichment to a future cycle. All writes
// are idempotent, so re-running a failed cycle is always safe.
//
// # Memory
//
// Working state is bounded to one page: the per-page record maps and diff
// sets are cleared at each page boundary, and only the pagination cursor and
// the cumulative set of remote ids seen this cycle persist. That cumulative
// set is what lets the reaper distinguish "gone" from "listed on an earlier
// page".
package reconcile
