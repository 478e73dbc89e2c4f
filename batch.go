package wfc

import (
	"github.com/petermattis/goid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wfc/grid"
)

// BatchSolve races independent Model attempts, one per seed, concurrently
// — each attempt owns its own Model, wave, propagator and RNG, so this
// does not violate the single run's no-parallelism contract; parallelism
// exists only *across* independent runs. It returns the grid and seed of
// the first successful attempt in seeds' order (not the first to finish,
// so the result stays deterministic regardless of goroutine scheduling),
// or (nil, 0, false) if every attempt contradicted.
func BatchSolve[T comparable](input *grid.Grid[T], opts Options, seeds []int64, modelOpts ...Option) (*grid.Grid[T], int64, bool) {
	results := make([]*grid.Grid[T], len(seeds))
	ok := make([]bool, len(seeds))

	var g errgroup.Group
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			logAttempt(modelOpts, i, seed)

			model, err := New(input, opts, seed, modelOpts...)
			if err != nil {
				return err
			}

			out, success := model.Run()
			results[i] = out
			ok[i] = success

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, false
	}

	for i, seed := range seeds {
		if ok[i] {
			return results[i], seed, true
		}
	}

	return nil, 0, false
}

// logAttempt emits a debug line tagged with the attempt's goroutine id
// (via petermattis/goid) so interleaved BatchSolve attempts can be told
// apart in log output.
func logAttempt(modelOpts []Option, attempt int, seed int64) {
	cfg := &modelConfig{}
	for _, o := range modelOpts {
		o(cfg)
	}
	cfg.logger.Debug("batch attempt starting", map[string]any{
		"attempt": attempt, "seed": seed, "goroutine": goid.Get(),
	})
}
