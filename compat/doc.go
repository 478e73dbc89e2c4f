// Package compat compiles the directional compatibility tensor C[p][d]: for
// every ordered pair of patterns and every cardinal direction, whether the
// two patterns agree on their K-1-wide overlap when one is placed at the
// origin and the other at the offset.
package compat
