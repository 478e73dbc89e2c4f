package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/solver"
)

func checkerboardTable() compat.Table {
	return compat.Table{
		{{1}, {1}, {1}, {1}},
		{{0}, {0}, {0}, {0}},
	}
}

func permissiveTable(n int) compat.Table {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	table := make(compat.Table, n)
	for p := 0; p < n; p++ {
		for d := compat.Direction(0); d < compat.NumDirections; d++ {
			table[p][d] = append([]int(nil), all...)
		}
	}

	return table
}

// Property (S6): two Cores built with identical seed, table, weights and
// dimensions always collapse identically.
func TestCore_DeterministicGivenSameSeed(t *testing.T) {
	table := permissiveTable(3)
	weights := []float64{1, 2, 3}

	run := func() int {
		c := solver.New(table, weights, 1, 1, false, 42)
		ok := c.Run()
		require.True(t, ok)

		return c.Wave().CollapsedPattern(0)
	}

	first := run()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

// S2-style checkerboard: a solver driven entirely through Observe/Propagate
// (no manual forcing) must still land on an arc-consistent, alternating
// layout on an even-dimensioned periodic grid.
func TestCore_RunProducesArcConsistentCheckerboard(t *testing.T) {
	const h, w = 4, 4
	table := checkerboardTable()
	c := solver.New(table, []float64{1, 1}, h, w, true, 7)

	ok := c.Run()
	require.True(t, ok)
	require.False(t, c.Wave().Contradiction())

	at := func(i, j int) int {
		return c.Wave().CollapsedPattern(c.Wave().CellIndex((i%h+h)%h, (j%w+w)%w))
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			assert.NotEqual(t, at(i, j), at(i, j+1), "horizontal neighbors at (%d,%d)", i, j)
			assert.NotEqual(t, at(i, j), at(i+1, j), "vertical neighbors at (%d,%d)", i, j)
		}
	}
}

// S5: forcing two mutually incompatible patterns at adjacent cells before
// Run must surface as failure, not a silently wrong render.
func TestCore_RunFailsOnContradiction(t *testing.T) {
	table := checkerboardTable()
	c := solver.New(table, []float64{1, 1}, 1, 2, false, 3)

	c.Force(c.Wave().CellIndex(0, 0), 0)
	c.Force(c.Wave().CellIndex(0, 1), 0)

	ok := c.Run()
	assert.False(t, ok)
	assert.True(t, c.Wave().Contradiction())
}

// S4: ApplyGround pins the bottom row to the ground pattern and excludes
// it everywhere else, without touching any other pattern's availability.
func TestCore_ApplyGroundPinsBottomRow(t *testing.T) {
	table := permissiveTable(3)
	c := solver.New(table, []float64{1, 1, 1}, 3, 2, false, 1)

	c.ApplyGround(0)

	for j := 0; j < 2; j++ {
		cell := c.Wave().CellIndex(2, j)
		assert.Equal(t, 1, c.Wave().NumRemaining(cell))
		assert.True(t, c.Wave().Get(cell, 0))
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			cell := c.Wave().CellIndex(i, j)
			assert.False(t, c.Wave().Get(cell, 0))
			assert.Equal(t, 2, c.Wave().NumRemaining(cell))
		}
	}
}

func TestDeriveSeed_VariesWithStream(t *testing.T) {
	a := solver.DeriveSeed(42, 0)
	b := solver.DeriveSeed(42, 1)
	assert.NotEqual(t, a, b)
}
