// Package grid provides the dense 2D array primitives the solver is built
// on: row-major storage, modular-wraparound sub-array extraction, and the
// dihedral transforms (reflection, quarter-turn rotation) used to expand a
// single input window into its symmetry group.
//
// Grid[T] is deliberately minimal: it knows nothing about patterns, waves,
// or propagation. Every higher package in this module (pattern, compat,
// wave, propagator, solver) builds on top of it.
package grid
