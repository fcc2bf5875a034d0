// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only workingCopy allocates.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Every kernel validates all operands before any arithmetic.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or an interface holding a nil pointer
// (e.g. a (*Dense)(nil) passed as Matrix).
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m is nil or a typed nil pointer.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare (an ErrDimensionMismatch) otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMultipliable – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMultipliable(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMultipliable", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMultipliable", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMultipliable: %dx%d by %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateColumnVector ensures b is a non-nil n×1 matrix.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateColumnVector(b Matrix, n int) error {
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateColumnVector", err)
	}
	if b.Cols() != 1 || b.Rows() != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateColumnVector: got %dx%d, want %dx1", b.Rows(), b.Cols(), n),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// workingCopy validates m and returns a private *Dense copy that a kernel may
// mutate freely. Any At failure of a foreign implementation is surfaced as is.
//
// Complexity: O(r*c).
func workingCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone(), nil
	}
	r, c := m.Rows(), m.Cols()
	if r < 0 || c < 0 {
		return nil, validatorErrorf("workingCopy", ErrBadShape)
	}
	out := newDenseUnchecked(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, validatorErrorf("workingCopy", err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
