package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/pattern"
)

func uniformGrid(t *testing.T, h, w, value int) *grid.Grid[int] {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = value
		}
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	return g
}

// S1: uniform input.
func TestExtract_UniformInput(t *testing.T) {
	g := uniformGrid(t, 4, 4, 7)
	dict, err := pattern.Extract(g, pattern.Options{Size: 3, PeriodicInput: true, Symmetry: 1})
	require.NoError(t, err)

	require.Equal(t, 1, dict.Len())
	assert.Equal(t, float64(16), dict.Weights[0])
	assert.Equal(t, float64(16), dict.TotalWeight())
}

// S2: checkerboard.
func TestExtract_Checkerboard(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)

	dict, err := pattern.Extract(g, pattern.Options{Size: 2, PeriodicInput: true, Symmetry: 1})
	require.NoError(t, err)

	require.Equal(t, 2, dict.Len())
	assert.Equal(t, float64(2), dict.Weights[0])
	assert.Equal(t, float64(2), dict.Weights[1])
}

func TestExtract_WeightConservation(t *testing.T) {
	g := uniformGrid(t, 5, 6, 1)
	for _, sym := range []int{1, 2, 4, 8} {
		dict, err := pattern.Extract(g, pattern.Options{Size: 2, PeriodicInput: true, Symmetry: sym})
		require.NoError(t, err)
		// total windows enumerated = H*W under periodic input.
		assert.Equal(t, float64(5*6*sym), dict.TotalWeight())
	}
}

func TestExtract_NonPeriodicInputBounds(t *testing.T) {
	g := uniformGrid(t, 4, 4, 1)
	dict, err := pattern.Extract(g, pattern.Options{Size: 3, PeriodicInput: false, Symmetry: 1})
	require.NoError(t, err)
	// maxI = maxJ = 4-3+1 = 2 -> 4 windows.
	assert.Equal(t, float64(4), dict.TotalWeight())
}

func TestExtract_Errors(t *testing.T) {
	g := uniformGrid(t, 4, 4, 1)

	_, err := pattern.Extract(g, pattern.Options{Size: 1, PeriodicInput: true, Symmetry: 1})
	assert.ErrorIs(t, err, pattern.ErrInvalidPatternSize)

	_, err = pattern.Extract(g, pattern.Options{Size: 3, PeriodicInput: true, Symmetry: 9})
	assert.ErrorIs(t, err, pattern.ErrInvalidSymmetry)

	_, err = pattern.Extract(g, pattern.Options{Size: 9, PeriodicInput: false, Symmetry: 1})
	assert.ErrorIs(t, err, pattern.ErrInvalidPatternSize)
}

func TestDictionary_IndexOf(t *testing.T) {
	g := uniformGrid(t, 4, 4, 1)
	dict, err := pattern.Extract(g, pattern.Options{Size: 3, PeriodicInput: true, Symmetry: 1})
	require.NoError(t, err)

	idx, ok := dict.IndexOf(dict.Patterns[0])
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	other := uniformGrid(t, 3, 3, 42)
	_, ok = dict.IndexOf(other)
	assert.False(t, ok)
}
