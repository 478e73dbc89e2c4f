package wfc

import "github.com/katalvlaran/wfc/grid"

// render translates a fully collapsed wave back into an output grid. Each
// wave cell contributes the top-left pixel of its collapsed pattern. When
// the output is non-periodic, the last PatternSize-1 rows/columns are
// filled from the edge patterns' remaining cells: the right edge from the
// last column of patterns, the bottom edge from the last row, and the
// bottom-right corner from the single pattern anchoring both edges.
func (m *Model[T]) render() *grid.Grid[T] {
	patternAt := func(i, j int) *grid.Grid[T] {
		cell := m.core.Wave().CellIndex(i, j)

		return m.dict.Patterns[m.core.Wave().CollapsedPattern(cell)]
	}

	if m.opts.PeriodicOutput {
		out, _ := grid.NewGrid[T](m.waveH, m.waveW)
		for i := 0; i < m.waveH; i++ {
			for j := 0; j < m.waveW; j++ {
				out.SetUnchecked(i, j, patternAt(i, j).AtUnchecked(0, 0))
			}
		}

		return out
	}

	k := m.opts.PatternSize
	out, _ := grid.NewGrid[T](m.opts.OutHeight, m.opts.OutWidth)

	for i := 0; i < m.waveH; i++ {
		for j := 0; j < m.waveW; j++ {
			out.SetUnchecked(i, j, patternAt(i, j).AtUnchecked(0, 0))
		}
	}
	for i := 0; i < m.waveH; i++ {
		p := patternAt(i, m.waveW-1)
		for dx := 1; dx < k; dx++ {
			out.SetUnchecked(i, m.waveW-1+dx, p.AtUnchecked(0, dx))
		}
	}
	for j := 0; j < m.waveW; j++ {
		p := patternAt(m.waveH-1, j)
		for dy := 1; dy < k; dy++ {
			out.SetUnchecked(m.waveH-1+dy, j, p.AtUnchecked(dy, 0))
		}
	}
	corner := patternAt(m.waveH-1, m.waveW-1)
	for dy := 1; dy < k; dy++ {
		for dx := 1; dx < k; dx++ {
			out.SetUnchecked(m.waveH-1+dy, m.waveW-1+dx, corner.AtUnchecked(dy, dx))
		}
	}

	return out
}
