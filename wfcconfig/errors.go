package wfcconfig

import "errors"

// ErrInvalidPreset indicates a loaded preset fails basic sanity checks
// (pattern size below 2, non-positive output dimensions, symmetry outside
// [1,8]) before it is ever handed to the solver.
var ErrInvalidPreset = errors.New("wfcconfig: invalid preset")
