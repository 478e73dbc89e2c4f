// Package propagator implements the worklist-driven arc-consistency pass
// over a wave.Wave: on any pattern removal, it retracts every neighboring
// pattern that loses its last support, maintaining AC-3-style consistency
// across a toroidal or bounded grid.
package propagator
