// Package inventory exposes the reconciliation engine over HTTP and wires
// the per-kind adapters to their provider listers. One driver exists per
// registered kind; requests address kinds by name.
package inventory
