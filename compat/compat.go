package compat

import "github.com/katalvlaran/wfc/grid"

// Table is the compatibility tensor C: Table[p][d] lists every
// pattern index q such that placing p at a cell and q at its neighbor in
// direction d is consistent (their overlap region agrees).
type Table [][NumDirections][]int

// Len returns the number of patterns the table was built over.
func (t Table) Len() int { return len(t) }

// Build computes the full compatibility tensor for patterns: for every
// ordered pair (p, q) and every of the 4 cardinal directions, whether p at
// the origin and q at the offset agree on their overlap.
//
// Complexity: O(n² * 4 * K²), acceptable since n (tens to low thousands
// for natural inputs) stays small.
func Build[T comparable](patterns []*grid.Grid[T]) Table {
	n := len(patterns)
	table := make(Table, n)

	for p1 := 0; p1 < n; p1++ {
		for d := Direction(0); d < NumDirections; d++ {
			offY, offX := d.Offset()
			for p2 := 0; p2 < n; p2++ {
				if agrees(patterns[p1], patterns[p2], offY, offX) {
					table[p1][d] = append(table[p1][d], p2)
				}
			}
		}
	}

	return table
}

// agrees reports whether pattern1, anchored at the origin, and pattern2,
// anchored at offset (dy,dx), have identical values across their shared
// footprint.
//
// The y-axis bound is computed from height and the x-axis bound from
// width, independently and without cross-substitution. This only matters
// for non-square patterns; since pattern.Extract only ever produces
// square K×K patterns, the distinction is inert today but load-bearing
// for any future non-square pattern source.
func agrees[T comparable](pattern1, pattern2 *grid.Grid[T], dy, dx int) bool {
	xMin, xMax := axisBounds(dx, pattern1.Width(), pattern2.Width())
	yMin, yMax := axisBounds(dy, pattern1.Height(), pattern2.Height())

	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			if pattern1.AtUnchecked(y, x) != pattern2.AtUnchecked(y-dy, x-dx) {
				return false
			}
		}
	}

	return true
}

// axisBounds computes the shared [min,max) range along one axis given the
// offset along that axis and the two patterns' extents on it.
func axisBounds(offset, extent1, extent2 int) (min, max int) {
	if offset < 0 {
		return 0, offset + extent2
	}

	return offset, extent1
}
