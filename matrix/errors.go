// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// sentinels with the operation tag via matrixErrorf; callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> ragged rows -> shape rules -> singularity.

var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a Cramer
	// right-hand side whose length differs from the order of A.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRagged signals rows of different lengths at construction time.
	// It is a dimension error: errors.Is(ErrRagged, ErrDimensionMismatch) holds.
	ErrRagged = fmt.Errorf("%w: rows have different lengths", ErrDimensionMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It is a dimension error as well.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrSingular is returned when invertibility or a unique solve was required
	// but the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyOperands is returned by the n-ary forms (Sum, SubSeq, MulChain)
	// when called without operands.
	ErrEmptyOperands = errors.New("matrix: no operands")

	// ErrParse is returned by the companion text parsers when the input holds no
	// usable numbers or equations.
	ErrParse = errors.New("matrix: cannot parse text")
)
