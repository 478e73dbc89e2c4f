package wfc

import "errors"

var (
	// ErrZeroOutputDim indicates OutHeight or OutWidth is non-positive.
	ErrZeroOutputDim = errors.New("wfc: output dimensions must be positive")

	// ErrOutputTooSmall indicates a non-periodic output smaller than one
	// pattern on some axis: there would be no room to anchor a single
	// K×K pattern, let alone tile the wave.
	ErrOutputTooSmall = errors.New("wfc: non-periodic output must be at least pattern_size on each axis")
)
