// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface consumed by every kernel.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "github.com/achitoo/CalculadoraLineal/rational"

// Matrix is a rectangular, read-only grid of exact rationals.
//
// Kernels only read their operands through this interface and always return a
// fresh *Dense, so inputs are never mutated. *Dense is the canonical
// implementation; kernels take a flat-slice fast path when they see one.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (may be 0).
	Rows() int

	// Cols returns the number of columns (may be 0).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (rational.Rat, error)
}
