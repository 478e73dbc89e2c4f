package pattern

import "github.com/katalvlaran/wfc/grid"

// Extract enumerates every K×K window of input (wrapping if
// opts.PeriodicInput), expands each into its dihedral symmetry group, and
// returns the deduplicated, weighted Dictionary.
//
// Iteration is row-major over window origins, and the eight symmetry
// variants are always generated in the fixed order identity, reflect,
// rotate, reflect∘rotate, rotate², reflect∘rotate², rotate³,
// reflect∘rotate³ — only the first opts.Symmetry of which are inserted.
// Because that order never depends on map iteration, two calls on
// identical input and options produce bit-identical dictionaries.
//
// Complexity: O(maxI * maxJ * symmetry * K²).
func Extract[T comparable](input *grid.Grid[T], opts Options) (*Dictionary[T], error) {
	if err := opts.validate(input.Height(), input.Width()); err != nil {
		return nil, err
	}

	maxI, maxJ := input.Height(), input.Width()
	if !opts.PeriodicInput {
		maxI = input.Height() - opts.Size + 1
		maxJ = input.Width() - opts.Size + 1
	}

	dict := newDictionary[T]()
	for i := 0; i < maxI; i++ {
		for j := 0; j < maxJ; j++ {
			window, err := input.Sub(i, j, opts.Size, opts.Size, true)
			if err != nil {
				return nil, err
			}

			variants := dihedralVariants(window)
			for k := 0; k < opts.Symmetry; k++ {
				dict.insert(variants[k])
			}
		}
	}

	return dict, nil
}

// dihedralVariants returns the 8 dihedral transforms of a square pattern
// in the fixed order described in Extract's doc comment.
func dihedralVariants[T comparable](p *grid.Grid[T]) [8]*grid.Grid[T] {
	var v [8]*grid.Grid[T]
	v[0] = p
	v[1] = v[0].Reflect()
	v[2] = v[0].Rotate90CCW()
	v[3] = v[2].Reflect()
	v[4] = v[2].Rotate90CCW()
	v[5] = v[4].Reflect()
	v[6] = v[4].Rotate90CCW()
	v[7] = v[6].Reflect()

	return v
}

// ExtractWindow pulls a single K×K window at (y,x) out of input, with
// modular wrap on both axes — used by the solver's ground-seeding step to
// recover the bottom-middle window independent of full dictionary
// extraction.
func ExtractWindow[T comparable](input *grid.Grid[T], y, x, size int) (*grid.Grid[T], error) {
	return input.Sub(y, x, size, size, true)
}
