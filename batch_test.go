package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc"
)

func TestBatchSolve_ReturnsFirstSuccessfulSeedInOrder(t *testing.T) {
	input := checkerboardInput(t)
	opts := checkerboardOptions()

	out, seed, ok := wfc.BatchSolve(input, opts, []int64{11, 22, 33})
	require.True(t, ok)
	assert.Equal(t, int64(11), seed)
	assert.NotNil(t, out)
}

func TestBatchSolve_FailsWhenOutputTooSmallForEverySeed(t *testing.T) {
	input := checkerboardInput(t)
	opts := checkerboardOptions()
	opts.PeriodicOutput = false
	opts.OutHeight, opts.OutWidth = 1, 1

	out, seed, ok := wfc.BatchSolve(input, opts, []int64{1, 2})
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Equal(t, int64(0), seed)
}
