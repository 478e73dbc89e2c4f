package propagator

import (
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/wave"
)

type entry struct {
	cell, pattern int
}

// Propagator drives arc-consistency over a wave.Wave using a precomputed
// compat.Table and an int32 support-count tensor S: S[cell][k][d] counts
// how many patterns at the neighbor on the opposite side (the cell whose
// neighbor in direction d is cell) currently support k at cell, starting
// from len(table[k][d.Opposite()]). When a count reaches zero, k is
// retracted and the retraction is queued for its own propagation.
type Propagator struct {
	table          compat.Table
	height, width  int
	nPatterns      int
	periodicOutput bool

	support []int32 // flat (cell*nPatterns+k)*4 + d
	queue   []entry
}

// New builds a Propagator over a height*width wave with nPatterns patterns,
// initializing the support tensor from table. periodicOutput selects
// toroidal (wrap) vs. bounded (clipped) neighbor lookup during Propagate.
func New(table compat.Table, height, width int, periodicOutput bool) *Propagator {
	n := table.Len()
	cells := height * width
	support := make([]int32, cells*n*compat.NumDirections)

	for k := 0; k < n; k++ {
		counts := [compat.NumDirections]int32{}
		for d := compat.Direction(0); d < compat.NumDirections; d++ {
			counts[d] = int32(len(table[k][d.Opposite()]))
		}
		for c := 0; c < cells; c++ {
			base := (c*n + k) * compat.NumDirections
			copy(support[base:base+compat.NumDirections], counts[:])
		}
	}

	return &Propagator{
		table: table, height: height, width: width, nPatterns: n,
		periodicOutput: periodicOutput, support: support,
	}
}

func (p *Propagator) supportIndex(cell, k int, d compat.Direction) int {
	return (cell*p.nPatterns+k)*compat.NumDirections + int(d)
}

// Enqueue records that pattern k has just been removed at cell: it zeros
// out k's support counts at cell (so later decrements targeting an
// already-queued removal don't re-enqueue it) and pushes (cell,k) onto the
// worklist.
func (p *Propagator) Enqueue(cell, k int) {
	base := (cell*p.nPatterns + k) * compat.NumDirections
	for d := 0; d < compat.NumDirections; d++ {
		p.support[base+d] = 0
	}
	p.queue = append(p.queue, entry{cell: cell, pattern: k})
}

// Empty reports whether the worklist has drained.
func (p *Propagator) Empty() bool { return len(p.queue) == 0 }

// neighbor computes the neighbor cell index of (i,j) in direction d. ok is
// false when the neighbor falls outside a bounded (non-periodic) grid.
func (p *Propagator) neighbor(i, j int, d compat.Direction) (cell int, ok bool) {
	offY, offX := d.Offset()
	i2, j2 := i+offY, j+offX

	if p.periodicOutput {
		i2 = ((i2 % p.height) + p.height) % p.height
		j2 = ((j2 % p.width) + p.width) % p.width

		return i2*p.width + j2, true
	}

	if i2 < 0 || i2 >= p.height || j2 < 0 || j2 >= p.width {
		return 0, false
	}

	return i2*p.width + j2, true
}

// Propagate drains the worklist to quiescence, clearing every pattern that
// loses its last support and enqueuing each such removal in turn. On
// return, the wave is arc-consistent with respect to the compatibility
// table: no remaining pattern at any cell lacks support from some
// remaining pattern at each neighbor.
func (p *Propagator) Propagate(w *wave.Wave) {
	for len(p.queue) > 0 {
		last := len(p.queue) - 1
		e := p.queue[last]
		p.queue = p.queue[:last]

		i, j := e.cell/p.width, e.cell%p.width

		for d := compat.Direction(0); d < compat.NumDirections; d++ {
			neighborCell, ok := p.neighbor(i, j, d)
			if !ok {
				continue
			}

			for _, q := range p.table[e.pattern][d] {
				idx := p.supportIndex(neighborCell, q, d)
				if p.support[idx] == 0 {
					continue
				}
				p.support[idx]--
				if p.support[idx] == 0 {
					w.Clear(neighborCell, q)
					p.Enqueue(neighborCell, q)
				}
			}
		}
	}
}
