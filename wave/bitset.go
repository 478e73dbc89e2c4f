package wave

import "github.com/katalvlaran/wfc/grid"

// bitset wraps grid.BitSet with (cell, pattern) addressing, flattening the
// Hw*Ww*n three-dimensional bit space the same way grid.Grid flattens
// (y,x) into row-major storage.
type bitset struct {
	nPatterns int
	bits      *grid.BitSet
}

func newBitset(cells, nPatterns int) *bitset {
	return &bitset{nPatterns: nPatterns, bits: grid.NewBitSetAllSet(cells * nPatterns)}
}

func (b *bitset) index(cell, k int) int { return cell*b.nPatterns + k }

func (b *bitset) get(cell, k int) bool { return b.bits.Get(b.index(cell, k)) }

func (b *bitset) set(cell, k int, value bool) { b.bits.Set(b.index(cell, k), value) }
