package compat_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/grid"
)

// ExampleBuild shows that a uniform pattern is compatible with itself in
// every direction — the trivial but load-bearing base case for S1.
func ExampleBuild() {
	p, err := grid.FromRows([][]int{{1, 1}, {1, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	table := compat.Build([]*grid.Grid[int]{p})
	fmt.Println(len(table[0][compat.Up]), len(table[0][compat.Down]))
	// Output:
	// 1 1
}
