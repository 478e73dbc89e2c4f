package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/pattern"
)

// ExampleExtract shows dictionary size and weight accounting on a tiny
// checkerboard input under no symmetry expansion.
func ExampleExtract() {
	g, err := grid.FromRows([][]int{
		{0, 1},
		{1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dict, err := pattern.Extract(g, pattern.Options{Size: 2, PeriodicInput: true, Symmetry: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(dict.Len(), dict.TotalWeight())
	// Output:
	// 2 4
}
