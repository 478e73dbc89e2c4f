package grid

import "fmt"

// Grid is a dense, row-major H×W array of T. T need only be comparable:
// the solver never needs more than value equality and (via Key, see
// pattern.Key) a stable hash of T.
//
// Grid is a plain value-ish type: NewGrid allocates its own backing buffer,
// and callers that need isolation should Clone before handing a Grid to
// code that mutates it.
type Grid[T comparable] struct {
	height, width int
	buf           []T
}

// NewGrid allocates a zero-valued height×width Grid.
// Returns ErrEmptyGrid if either dimension is less than 1.
// Complexity: O(height*width).
func NewGrid[T comparable](height, width int) (*Grid[T], error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{height: height, width: width, buf: make([]T, height*width)}, nil
}

// FromRows builds a Grid from a rectangular [][]T literal, copying values.
// Returns ErrEmptyGrid if rows is empty or its first row is empty, and
// ErrNonRectangular if any row length differs from the first.
func FromRows[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid[T]{height: h, width: w, buf: make([]T, h*w)}
	for y, row := range rows {
		copy(g.buf[y*w:(y+1)*w], row)
	}

	return g, nil
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Buffer exposes the flat row-major backing slice for hot-path direct
// access (pattern extraction, compat compilation). Callers that mutate the
// returned slice bypass no invariants here — Grid has none beyond shape —
// but MUST NOT resize it.
func (g *Grid[T]) Buffer() []T { return g.buf }

func (g *Grid[T]) idx(y, x int) int { return y*g.width + x }

// InBounds reports whether (y,x) lies within the grid.
func (g *Grid[T]) InBounds(y, x int) bool {
	return y >= 0 && y < g.height && x >= 0 && x < g.width
}

// At returns the element at (y,x), validated. Returns ErrOutOfRange if out
// of bounds.
func (g *Grid[T]) At(y, x int) (T, error) {
	var zero T
	if !g.InBounds(y, x) {
		return zero, fmt.Errorf("Grid.At(%d,%d): %w", y, x, ErrOutOfRange)
	}

	return g.buf[g.idx(y, x)], nil
}

// AtUnchecked returns the element at (y,x) without bounds validation. Used
// on the hot path (propagation, entropy scan) where the caller has already
// established (y,x) is in range.
func (g *Grid[T]) AtUnchecked(y, x int) T { return g.buf[g.idx(y, x)] }

// Set writes value at (y,x), validated. Returns ErrOutOfRange if out of
// bounds.
func (g *Grid[T]) Set(y, x int, value T) error {
	if !g.InBounds(y, x) {
		return fmt.Errorf("Grid.Set(%d,%d): %w", y, x, ErrOutOfRange)
	}
	g.buf[g.idx(y, x)] = value

	return nil
}

// SetUnchecked writes value at (y,x) without bounds validation.
func (g *Grid[T]) SetUnchecked(y, x int, value T) { g.buf[g.idx(y, x)] = value }

// Clone returns an independent deep copy.
func (g *Grid[T]) Clone() *Grid[T] {
	buf := make([]T, len(g.buf))
	copy(buf, g.buf)

	return &Grid[T]{height: g.height, width: g.width, buf: buf}
}

// Equal reports whether g and other have identical shape and contents.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, v := range g.buf {
		if other.buf[i] != v {
			return false
		}
	}

	return true
}

// Sub extracts the h×w sub-array whose origin is (y,x). When wrap is true,
// both axes wrap modulo the source dimensions (used for periodic_input
// window/pattern enumeration); when false, the caller must guarantee the
// requested block fits, and Sub returns ErrInvalidSubSize otherwise.
//
// Height and width are each carried on their own axis throughout; neither
// is ever substituted for the other, regardless of whether the source is
// square.
func (g *Grid[T]) Sub(y, x, h, w int, wrap bool) (*Grid[T], error) {
	if h <= 0 || w <= 0 {
		return nil, ErrInvalidSubSize
	}
	if !wrap && (y < 0 || x < 0 || y+h > g.height || x+w > g.width) {
		return nil, ErrInvalidSubSize
	}

	out, _ := NewGrid[T](h, w)
	for i := 0; i < h; i++ {
		sy := y + i
		if wrap {
			sy = mod(sy, g.height)
		}
		for j := 0; j < w; j++ {
			sx := x + j
			if wrap {
				sx = mod(sx, g.width)
			}
			out.SetUnchecked(i, j, g.AtUnchecked(sy, sx))
		}
	}

	return out, nil
}

// Reflect returns a copy mirrored about the vertical axis: column x of the
// result is column (width-1-x) of g. Dimensions are unchanged: height and
// width are never swapped.
func (g *Grid[T]) Reflect() *Grid[T] {
	out, _ := NewGrid[T](g.height, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out.SetUnchecked(y, x, g.AtUnchecked(y, g.width-1-x))
		}
	}

	return out
}

// Rotate90CCW returns a copy rotated a quarter turn counter-clockwise. The
// result has dimensions width×height (axes swap).
func (g *Grid[T]) Rotate90CCW() *Grid[T] {
	out, _ := NewGrid[T](g.width, g.height)
	for y := 0; y < g.width; y++ {
		for x := 0; x < g.height; x++ {
			out.SetUnchecked(y, x, g.AtUnchecked(x, g.width-1-y))
		}
	}

	return out
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
