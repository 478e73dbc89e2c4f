// Package pattern: sentinel error set. See grid/errors.go for the same
// convention — callers check via errors.Is, no panics on user input.
package pattern

import "errors"

var (
	// ErrInvalidPatternSize indicates pattern_size < 2, or pattern_size
	// larger than the input grid on the axis it's being compared against
	// when the input is non-periodic.
	ErrInvalidPatternSize = errors.New("pattern: invalid pattern size")

	// ErrInvalidSymmetry indicates a symmetry value outside [1,8].
	ErrInvalidSymmetry = errors.New("pattern: symmetry must be in [1,8]")
)
