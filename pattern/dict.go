package pattern

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/katalvlaran/wfc/grid"
)

// Key returns a stable, hashable projection of a pattern's contents,
// suitable as a Go map key regardless of the concrete element type T (a
// *grid.Grid[T] is not itself comparable, since it holds a slice). Two
// patterns with identical contents and shape always produce identical
// keys.
func Key[T comparable](p *grid.Grid[T]) string {
	return fmt.Sprintf("%d|%d|%v", p.Height(), p.Width(), p.Buffer())
}

// Dictionary holds the distinct patterns p0..pn-1 extracted from an input,
// together with a positive weight per pattern, accumulated under the
// chosen symmetry group. Patterns preserves insertion order (the order
// patterns were first seen during extraction), which keeps dictionary
// construction deterministic without relying on Go map iteration order.
type Dictionary[T comparable] struct {
	Patterns []*grid.Grid[T]
	Weights  []float64

	index *orderedmap.OrderedMap[string, int]
}

// newDictionary returns an empty Dictionary ready for insert calls.
func newDictionary[T comparable]() *Dictionary[T] {
	return &Dictionary[T]{index: orderedmap.NewOrderedMap[string, int]()}
}

// insert adds pattern if its key is new (weight 1), or increments the
// existing pattern's weight by one otherwise. Returns the pattern's index.
func (d *Dictionary[T]) insert(p *grid.Grid[T]) int {
	key := Key(p)
	if idx, ok := d.index.Get(key); ok {
		d.Weights[idx]++

		return idx
	}

	idx := len(d.Patterns)
	d.index.Set(key, idx)
	d.Patterns = append(d.Patterns, p)
	d.Weights = append(d.Weights, 1)

	return idx
}

// Len returns the number of distinct patterns n.
func (d *Dictionary[T]) Len() int { return len(d.Patterns) }

// IndexOf returns the index of a pattern with identical contents to block,
// and whether it was found. Used by the solver facade's SetPattern.
func (d *Dictionary[T]) IndexOf(block *grid.Grid[T]) (int, bool) {
	idx, ok := d.index.Get(Key(block))

	return idx, ok
}

// TotalWeight returns the sum of all pattern weights (Σw[k]).
func (d *Dictionary[T]) TotalWeight() float64 {
	var sum float64
	for _, w := range d.Weights {
		sum += w
	}

	return sum
}
