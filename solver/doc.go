// Package solver drives the observe/propagate loop that turns a wave into
// a fully collapsed one: minimum-entropy cell selection, weighted random
// collapse, worklist propagation, and termination on success or
// contradiction. It owns no pattern pixel data — callers render the
// collapsed wave back into an output grid themselves.
package solver
