// Package pattern extracts the pattern dictionary from an input grid: every
// K×K window (optionally wrapping, optionally expanded under a dihedral
// symmetry group), deduplicated, with per-pattern occurrence weights.
//
// Extraction is deterministic: row-major window order and a fixed symmetry
// variant order (identity, reflect, rotate, reflect∘rotate, rotate², …)
// mean identical inputs always produce a bit-identical dictionary.
package pattern
