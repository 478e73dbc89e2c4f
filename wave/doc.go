// Package wave implements the per-cell pattern bitset and its incrementally
// maintained Shannon-entropy index.
//
// Every Clear(cell, pattern) updates the cell's memoized p_sum,
// plogp_sum, sum_log and entropy in O(1) rather than rescanning the
// remaining patterns, so ArgminEntropy stays an O(cells) scan regardless of
// how many patterns have already been removed.
package wave
