// Package compute reconciles provider compute instances. Each instance may
// carry synthesized network-interface child records, wired to the parent
// before it is persisted.
package compute
