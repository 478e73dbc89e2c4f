package metrics

import "github.com/dustin/go-humanize"

const (
	bitsPerWord    = 64
	supportIntSize = 4 // S is stored as int32 per (cell,pattern,direction)
	numDirections  = 4
)

// AllocStats is a read-only snapshot of the dominant memory allocations a
// wave/propagator pair holds for a given shape: the wave's packed bitset
// W and the propagator's support-count tensor S. Both are sized eagerly
// at construction and never grow, so this snapshot is exact, not sampled.
type AllocStats struct {
	Cells        int
	Patterns     int
	WaveBytes    uint64
	SupportBytes uint64
}

// Compute derives AllocStats for a wave of the given shape. It mirrors
// the sizing W = cells*patterns bits, S = cells*patterns*4 int32s.
func Compute(height, width, patterns int) AllocStats {
	cells := uint64(height) * uint64(width)
	n := uint64(patterns)

	waveBits := cells * n
	waveWords := (waveBits + bitsPerWord - 1) / bitsPerWord
	waveBytes := waveWords * (bitsPerWord / 8)

	supportBytes := cells * n * numDirections * supportIntSize

	return AllocStats{
		Cells:        int(cells),
		Patterns:     patterns,
		WaveBytes:    waveBytes,
		SupportBytes: supportBytes,
	}
}

// Total returns the combined byte footprint of the wave and the support
// tensor.
func (a AllocStats) Total() uint64 { return a.WaveBytes + a.SupportBytes }

// String renders a human-readable summary, e.g. "65,536 cells x 200
// patterns: wave 1.6 MB, support 210 MB, total 211 MB".
func (a AllocStats) String() string {
	return humanize.Comma(int64(a.Cells)) + " cells x " +
		humanize.Comma(int64(a.Patterns)) + " patterns: wave " +
		humanize.Bytes(a.WaveBytes) + ", support " +
		humanize.Bytes(a.SupportBytes) + ", total " +
		humanize.Bytes(a.Total())
}
