package wave

import "math"

// RNG is the minimal randomness surface Wave needs: a uniform float64 draw
// in [0,1). *math/rand.Rand satisfies it, and so does the solver's custom
// LCG — Wave is deliberately decoupled from any concrete generator.
type RNG interface {
	Float64() float64
}

// Status is the result of ArgminEntropy.
type Status int

const (
	// StatusCell indicates a valid uncollapsed cell was chosen.
	StatusCell Status = iota
	// StatusDone indicates every cell has exactly one remaining pattern.
	StatusDone
	// StatusContradiction indicates some cell has zero remaining patterns.
	StatusContradiction
)

// Wave is the per-cell pattern bitset plus incrementally maintained
// entropy terms for every cell.
type Wave struct {
	height, width, nPatterns int

	weights []float64 // w[k], un-normalized occurrence weights
	plogp   []float64 // w[k] * log(w[k])

	minAbsHalfPlogp float64

	bits *bitset

	nRemaining []int
	pSum       []float64
	plogpSum   []float64
	sumLog     []float64
	entropy    []float64

	contradiction bool
}

// New allocates a Wave of height*width cells, each starting with every one
// of len(weights) patterns possible. weights must be positive.
func New(height, width int, weights []float64) *Wave {
	n := len(weights)
	cells := height * width

	plogp := make([]float64, n)
	minAbsHalf := math.Inf(1)
	var baseEntropy, baseSum float64
	for k, w := range weights {
		pl := w * math.Log(w)
		plogp[k] = pl
		baseEntropy += pl
		baseSum += w
		if h := math.Abs(pl / 2); h < minAbsHalf {
			minAbsHalf = h
		}
	}
	logBaseSum := math.Log(baseSum)
	baseEntropyTerm := logBaseSum - baseEntropy/baseSum

	w := &Wave{
		height: height, width: width, nPatterns: n,
		weights: weights, plogp: plogp, minAbsHalfPlogp: minAbsHalf,
		bits:       newBitset(cells, n),
		nRemaining: make([]int, cells),
		pSum:       make([]float64, cells),
		plogpSum:   make([]float64, cells),
		sumLog:     make([]float64, cells),
		entropy:    make([]float64, cells),
	}
	for c := 0; c < cells; c++ {
		w.nRemaining[c] = n
		w.pSum[c] = baseSum
		w.plogpSum[c] = baseEntropy
		w.sumLog[c] = logBaseSum
		w.entropy[c] = baseEntropyTerm
	}

	return w
}

// Height, Width, NumPatterns report the wave's dimensions.
func (w *Wave) Height() int      { return w.height }
func (w *Wave) Width() int       { return w.width }
func (w *Wave) NumPatterns() int { return w.nPatterns }

// CellIndex maps (i,j) to its row-major cell index.
func (w *Wave) CellIndex(i, j int) int { return i*w.width + j }

// Coordinate maps a cell index back to (i,j).
func (w *Wave) Coordinate(cell int) (i, j int) { return cell / w.width, cell % w.width }

// Get reports whether pattern k is still possible at cell.
func (w *Wave) Get(cell, k int) bool { return w.bits.get(cell, k) }

// NumRemaining returns the count of still-possible patterns at cell.
func (w *Wave) NumRemaining(cell int) int { return w.nRemaining[cell] }

// Entropy returns the memoized entropy of cell's remaining distribution.
func (w *Wave) Entropy(cell int) float64 { return w.entropy[cell] }

// Weight returns the un-normalized weight w[k].
func (w *Wave) Weight(k int) float64 { return w.weights[k] }

// Contradiction reports whether any cell has reached zero remaining
// patterns.
func (w *Wave) Contradiction() bool { return w.contradiction }

// Clear removes pattern k from cell. A no-op if k is already clear at
// cell. Re-setting a cleared bit is never permitted (the wave is
// monotone) — there is deliberately no "un-clear" operation.
func (w *Wave) Clear(cell, k int) {
	if !w.bits.get(cell, k) {
		return
	}
	w.bits.set(cell, k, false)

	w.plogpSum[cell] -= w.plogp[k]
	w.pSum[cell] -= w.weights[k]
	if w.pSum[cell] > 0 {
		w.sumLog[cell] = math.Log(w.pSum[cell])
		w.entropy[cell] = w.sumLog[cell] - w.plogpSum[cell]/w.pSum[cell]
	} else {
		// Cell is about to (or already does) have zero remaining patterns;
		// entropy is meaningless here and never read once contradiction is
		// observed by the caller.
		w.sumLog[cell] = math.Inf(-1)
		w.entropy[cell] = math.Inf(1)
	}
	w.nRemaining[cell]--
	if w.nRemaining[cell] == 0 {
		w.contradiction = true
	}
}

// ArgminEntropy scans all cells and returns the one with minimum
// entropy+noise, skipping cells already collapsed to exactly one pattern.
// noise is drawn per candidate uniformly in [0, minAbsHalfPlogp) as a
// continuous tie breaker, never truncated to an integer.
func (w *Wave) ArgminEntropy(rng RNG) (cell int, status Status) {
	if w.contradiction {
		return 0, StatusContradiction
	}

	entropyMin := math.Inf(1)
	argMin := -1
	cells := w.height * w.width
	for c := 0; c < cells; c++ {
		if w.nRemaining[c] == 1 {
			continue
		}
		e := w.entropy[c]
		if e <= entropyMin {
			noise := rng.Float64() * w.minAbsHalfPlogp
			if e+noise < entropyMin {
				entropyMin = e + noise
				argMin = c
			}
		}
	}
	if argMin == -1 {
		return 0, StatusDone
	}

	return argMin, StatusCell
}

// CollapsedPattern returns the single remaining pattern index at cell.
// Callers must only invoke this once the wave is fully collapsed (every
// cell has exactly one remaining pattern); behavior is otherwise undefined
// beyond returning the first set bit found.
func (w *Wave) CollapsedPattern(cell int) int {
	for k := 0; k < w.nPatterns; k++ {
		if w.bits.get(cell, k) {
			return k
		}
	}

	return -1
}
