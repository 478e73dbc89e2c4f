package wfc

import (
	"github.com/katalvlaran/wfc/compat"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/logging"
	"github.com/katalvlaran/wfc/metrics"
	"github.com/katalvlaran/wfc/pattern"
	"github.com/katalvlaran/wfc/solver"
)

// Model is the public facade over pattern extraction, compatibility
// compilation, and the observe/propagate solver: construction does all
// the up-front work (patterns, compatibility, ground seeding), and Run
// performs the synchronous, single-threaded synthesis.
type Model[T comparable] struct {
	opts Options
	dict *pattern.Dictionary[T]
	core *solver.Core

	waveH, waveW int

	logger *logging.Logger
	runID  string
}

// New extracts patterns and compiles compatibility from input, builds the
// wave and propagator, applies ground seeding if requested, and returns a
// ready-to-run Model. Configuration errors (bad pattern size, symmetry
// out of [1,8], zero/undersized output dimensions) are returned
// synchronously; nothing about input is retained beyond this call.
func New[T comparable](input *grid.Grid[T], opts Options, seed int64, modelOpts ...Option) (*Model[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	dict, err := pattern.Extract(input, pattern.Options{
		Size:          opts.PatternSize,
		PeriodicInput: opts.PeriodicInput,
		Symmetry:      opts.Symmetry,
	})
	if err != nil {
		return nil, err
	}

	table := compat.Build(dict.Patterns)
	waveH, waveW := opts.waveDims()
	core := solver.New(table, dict.Weights, waveH, waveW, opts.PeriodicOutput, seed)

	cfg := &modelConfig{}
	for _, o := range modelOpts {
		o(cfg)
	}

	m := &Model[T]{opts: opts, dict: dict, core: core, waveH: waveH, waveW: waveW}
	m.logger, m.runID = cfg.logger.WithRun()
	m.logger.Info("model constructed", map[string]any{
		"patterns": dict.Len(), "wave_h": waveH, "wave_w": waveW, "seed": seed,
	})

	if opts.Ground {
		m.applyGround(input)
	}

	return m, nil
}

// applyGround extracts the bottom-middle K×K window of input and pins the
// wave's bottom row to it.
func (m *Model[T]) applyGround(input *grid.Grid[T]) {
	y := input.Height() - m.opts.PatternSize
	x := (input.Width() - m.opts.PatternSize) / 2

	window, err := pattern.ExtractWindow(input, y, x, m.opts.PatternSize)
	if err != nil {
		return
	}
	if idx, ok := m.dict.IndexOf(window); ok {
		m.core.ApplyGround(idx)
		m.logger.Debug("ground applied", map[string]any{"pattern": idx})
	}
}

// SetPattern forces cell (i,j) of the wave to the pattern matching block,
// removing every other pattern there. Propagation is deferred to the next
// Run call, matching set_pattern's "no immediate propagation" contract.
// Returns false, without mutating state, if block isn't in the dictionary
// or (i,j) is outside the wave.
func (m *Model[T]) SetPattern(block *grid.Grid[T], i, j int) bool {
	idx, ok := m.dict.IndexOf(block)
	if !ok {
		return false
	}
	if i < 0 || i >= m.waveH || j < 0 || j >= m.waveW {
		return false
	}

	m.core.Force(m.core.Wave().CellIndex(i, j), idx)

	return true
}

// Run executes the observe/propagate loop to completion and renders the
// result. Returns (nil, false) on contradiction, with no partial result.
func (m *Model[T]) Run() (*grid.Grid[T], bool) {
	ok := m.core.Run()
	m.logger.Info("run finished", map[string]any{"success": ok})
	if !ok {
		return nil, false
	}

	return m.render(), true
}

// Stats reports the current allocation footprint of the wave and its
// propagator support tensor.
func (m *Model[T]) Stats() metrics.AllocStats {
	return metrics.Compute(m.waveH, m.waveW, m.dict.Len())
}
