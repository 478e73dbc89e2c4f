package pattern

// Options configures pattern extraction from an input grid.
type Options struct {
	// Size is K, the edge length of extracted patterns. Must be >= 2.
	Size int
	// PeriodicInput wraps window enumeration around the input's edges when
	// true; when false, windows are only enumerated where they fit fully.
	PeriodicInput bool
	// Symmetry selects how many of the 8 dihedral variants of each window
	// are inserted into the dictionary. Must be in [1,8].
	Symmetry int
}

// DefaultOptions returns Options with Size=3, PeriodicInput=true,
// Symmetry=8 — the common case for photographic/texture exemplars.
func DefaultOptions() Options {
	return Options{Size: 3, PeriodicInput: true, Symmetry: 8}
}

func (o Options) validate(inputH, inputW int) error {
	if o.Size < 2 {
		return ErrInvalidPatternSize
	}
	if !o.PeriodicInput && (o.Size > inputH || o.Size > inputW) {
		return ErrInvalidPatternSize
	}
	if o.Symmetry < 1 || o.Symmetry > 8 {
		return ErrInvalidSymmetry
	}

	return nil
}
