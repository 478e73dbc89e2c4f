// Package metrics estimates the memory footprint of a wave and its
// propagator support tensor from their dimensions, for observability only
// — nothing here participates in solving.
package metrics
