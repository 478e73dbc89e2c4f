package propagator_test

import (
	"testing"

	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/propagator"
	"github.com/katalvlaran/wfc/wave"
)

func BenchmarkPropagate(b *testing.B) {
	table := compat.Table{
		{{1}, {1}, {1}, {1}},
		{{0}, {0}, {0}, {0}},
	}

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		w := wave.New(16, 16, []float64{1, 1})
		p := propagator.New(table, 16, 16, true)
		w.Clear(0, 1)
		p.Enqueue(0, 1)
		b.StartTimer()

		p.Propagate(w)
	}
}
