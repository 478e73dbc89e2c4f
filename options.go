package wfc

// Options configures a Model: pattern extraction, output shape, and the
// ground seeding constraint. It is the recognized-options table of the
// external interface, unchanged in meaning from pattern.Options plus the
// output/ground knobs the solver itself needs. The RNG seed is not a field
// here; it is passed to New separately.
type Options struct {
	// PatternSize is K, the edge length of extracted patterns. Must be >= 2.
	PatternSize int
	// PeriodicInput wraps window enumeration around the input's edges.
	PeriodicInput bool
	// PeriodicOutput makes the wave topology a torus; when false, the wave
	// is bounded and shrinks by PatternSize-1 on each axis relative to
	// the requested output size.
	PeriodicOutput bool
	// OutHeight, OutWidth are the requested output dimensions.
	OutHeight, OutWidth int
	// Symmetry selects how many of the 8 dihedral variants of each
	// extracted window are inserted into the dictionary. Must be in [1,8].
	Symmetry int
	// Ground, when true, pins the output's bottom row to the pattern
	// taken from the input's bottom-middle K×K window.
	Ground bool
}

// DefaultOptions returns Options with PatternSize=3, PeriodicInput=true,
// PeriodicOutput=true, Symmetry=8, and a 32x32 output — the common case
// for photographic/texture exemplars.
func DefaultOptions() Options {
	return Options{
		PatternSize:    3,
		PeriodicInput:  true,
		PeriodicOutput: true,
		OutHeight:      32,
		OutWidth:       32,
		Symmetry:       8,
	}
}

func (o Options) validate() error {
	if o.OutHeight <= 0 || o.OutWidth <= 0 {
		return ErrZeroOutputDim
	}
	if !o.PeriodicOutput && (o.OutHeight < o.PatternSize || o.OutWidth < o.PatternSize) {
		return ErrOutputTooSmall
	}

	return nil
}

// waveDims returns the wave's height and width for a given output shape:
// identical to the output when periodic, shrunk by PatternSize-1 on each
// axis otherwise (the last K-1 rows/columns are filled by the renderer
// from the edge patterns' remaining cells).
func (o Options) waveDims() (h, w int) {
	if o.PeriodicOutput {
		return o.OutHeight, o.OutWidth
	}

	return o.OutHeight - o.PatternSize + 1, o.OutWidth - o.PatternSize + 1
}
