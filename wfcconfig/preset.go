package wfcconfig

// Preset mirrors the recognized configuration options of spec §6: pattern
// extraction (size, periodic input, symmetry), output shape (dimensions,
// periodic output), the ground seeding flag, and the RNG seed. Every
// field round-trips through YAML with snake_case keys, matching the
// option names of the external-interface table.
type Preset struct {
	PatternSize    int   `yaml:"pattern_size"`
	PeriodicInput  bool  `yaml:"periodic_input"`
	PeriodicOutput bool  `yaml:"periodic_output"`
	OutHeight      int   `yaml:"out_height"`
	OutWidth       int   `yaml:"out_width"`
	Symmetry       int   `yaml:"symmetry"`
	Ground         bool  `yaml:"ground"`
	Seed           int64 `yaml:"seed"`
}

// Validate reports whether p's fields are in range, independent of any
// input grid (a full validation additionally needs the input's
// dimensions, performed by the solver's own constructor).
func (p Preset) Validate() error {
	if p.PatternSize < 2 {
		return ErrInvalidPreset
	}
	if p.OutHeight <= 0 || p.OutWidth <= 0 {
		return ErrInvalidPreset
	}
	if p.Symmetry < 1 || p.Symmetry > 8 {
		return ErrInvalidPreset
	}

	return nil
}
