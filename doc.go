// Package wfc is an overlapping-model Wave Function Collapse solver: it
// synthesizes a 2D output grid that is locally similar to a provided
// input exemplar, where "locally similar" means every N×N window of the
// output appears somewhere in the input (possibly rotated or reflected).
//
// 🧩 What is wfc?
//
//	A constraint-propagation engine built from three tightly coupled
//	subsystems:
//
//	  • Pattern extraction & adjacency compilation — the dictionary and
//	    the directional compatibility tensor derived from the input
//	  • The wave — a per-cell bitset with incrementally maintained
//	    Shannon-entropy for minimum-entropy cell selection
//	  • An arc-consistency propagator — a worklist algorithm that retracts
//	    unsupported patterns until the wave is consistent again
//
// ✨ Why this shape?
//
//   - Deterministic   — identical (input, options, seed) always synthesizes
//     the identical output
//   - No backtracking — a contradiction is reported as failure; retry with
//     a different seed
//   - Generic         — works over any comparable, hashable element type,
//     not just RGB pixels
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/        — row-major dense arrays with sub/reflect/rotate
//	pattern/     — window extraction, dihedral symmetry, weighted dictionary
//	compat/      — the directional compatibility tensor
//	wave/        — the per-cell bitset and its entropy index
//	propagator/  — the AC-3 style worklist propagator
//	solver/      — the observe/propagate driver and its deterministic RNG
//	logging/     — optional structured logging
//	wfcconfig/   — YAML configuration presets
//	metrics/     — allocation accounting for a wave/propagator pair
//
// Quick example:
//
//	model, err := wfc.New(input, wfc.Options{
//	    PatternSize: 3, PeriodicInput: true, PeriodicOutput: true,
//	    OutHeight: 32, OutWidth: 32, Symmetry: 8,
//	}, 42)
//	if err != nil {
//	    // handle configuration error
//	}
//	output, ok := model.Run()
//
//	go get github.com/katalvlaran/wfc
package wfc
