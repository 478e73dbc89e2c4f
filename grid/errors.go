// Package grid: sentinel error set.
// All algorithms in this package MUST return these sentinels and tests MUST
// check them via errors.Is. No exported function panics on a user-triggered
// error condition; out-of-range indices are reported, not panicked.
package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("grid: height and width must both be at least 1")

	// ErrNonRectangular indicates rows of differing lengths when building
	// a Grid from a [][]T literal.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates an index outside [0, height) x [0, width).
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrInvalidSubSize indicates a requested sub-array height or width of
	// zero, or exceeding the source grid's dimensions under non-wrapping
	// extraction.
	ErrInvalidSubSize = errors.New("grid: invalid sub-array size")
)
