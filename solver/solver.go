package solver

import (
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/wave"
)

// ObserveStatus is the three-way result of a single Observe call.
type ObserveStatus int

const (
	// Continue indicates a cell was collapsed and propagation is pending.
	Continue ObserveStatus = iota
	// Success indicates every cell now has exactly one remaining pattern.
	Success
	// Failure indicates some cell was reduced to zero remaining patterns.
	Failure
)

// Core is the observe/propagate driver: it owns a wave, a propagator over
// a shared compatibility table, and a deterministic RNG, and exposes the
// minimal surface a caller needs to force cells, seed a ground row, and
// run to completion. It holds no pattern pixel data; rendering the
// collapsed wave back into pixels is the caller's job.
type Core struct {
	wave    *wave.Wave
	prop    *propagator.Propagator
	rng     *lcg
	weights []float64 // normalized to sum 1, used only for weighted collapse
}

// New builds a Core over an Hw x Ww wave with nPatterns patterns described
// by table and weights. weights is normalized to sum to 1 for the
// purposes of weighted random collapse; the wave keeps the un-normalized
// weights for its own entropy bookkeeping, since entropy is shift
// invariant to global scaling.
func New(table compat.Table, weights []float64, hw, ww int, periodicOutput bool, seed int64) *Core {
	normalized := make([]float64, len(weights))
	var total float64
	for _, w := range weights {
		total += w
	}
	for k, w := range weights {
		normalized[k] = w / total
	}

	return &Core{
		wave:    wave.New(hw, ww, weights),
		prop:    propagator.New(table, hw, ww, periodicOutput),
		rng:     newLCG(seed),
		weights: normalized,
	}
}

// Wave exposes the underlying wave for rendering once Run succeeds.
func (c *Core) Wave() *wave.Wave { return c.wave }

// Force removes every pattern other than k from cell, enqueuing each
// removal. Propagation is deferred to the next Run/Propagate call.
func (c *Core) Force(cell, k int) {
	for j := 0; j < c.wave.NumPatterns(); j++ {
		if j == k {
			continue
		}
		if c.wave.Get(cell, j) {
			c.wave.Clear(cell, j)
			c.prop.Enqueue(cell, j)
		}
	}
}

// Remove clears pattern k from cell if still present, enqueuing the
// removal. A no-op if k is already absent.
func (c *Core) Remove(cell, k int) {
	if c.wave.Get(cell, k) {
		c.wave.Clear(cell, k)
		c.prop.Enqueue(cell, k)
	}
}

// ApplyGround seeds the ground constraint: every cell of the wave's bottom
// row is forced to groundPattern, groundPattern is removed from every
// other row, and the resulting removals are propagated once before the
// observe loop begins.
func (c *Core) ApplyGround(groundPattern int) {
	height, width := c.wave.Height(), c.wave.Width()
	bottom := height - 1
	for j := 0; j < width; j++ {
		c.Force(c.wave.CellIndex(bottom, j), groundPattern)
	}
	for i := 0; i < bottom; i++ {
		for j := 0; j < width; j++ {
			c.Remove(c.wave.CellIndex(i, j), groundPattern)
		}
	}
	c.prop.Propagate(c.wave)
}

// Observe selects the minimum-entropy cell and performs a weighted random
// collapse on it, or reports Success/Failure if the wave is already fully
// collapsed or contradicted.
func (c *Core) Observe() ObserveStatus {
	cell, status := c.wave.ArgminEntropy(c.rng)
	switch status {
	case wave.StatusContradiction:
		return Failure
	case wave.StatusDone:
		return Success
	}

	var s float64
	for k := 0; k < c.wave.NumPatterns(); k++ {
		if c.wave.Get(cell, k) {
			s += c.weights[k]
		}
	}

	r := c.rng.Float64() * s
	var prefix float64
	chosen := -1
	for k := 0; k < c.wave.NumPatterns(); k++ {
		if !c.wave.Get(cell, k) {
			continue
		}
		prefix += c.weights[k]
		if prefix >= r {
			chosen = k
			break
		}
	}
	if chosen == -1 {
		// Floating-point rounding may leave r fractionally past the final
		// prefix sum; fall back to the last remaining pattern scanned.
		for k := c.wave.NumPatterns() - 1; k >= 0; k-- {
			if c.wave.Get(cell, k) {
				chosen = k
				break
			}
		}
	}

	c.Force(cell, chosen)

	return Continue
}

// Run loops Observe/Propagate until the wave succeeds or fails, returning
// the final boolean. On success the caller reads Wave().CollapsedPattern
// for every cell to render the output.
func (c *Core) Run() bool {
	c.prop.Propagate(c.wave)
	for {
		switch c.Observe() {
		case Success:
			return true
		case Failure:
			return false
		default:
			c.prop.Propagate(c.wave)
		}
	}
}
