// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition and subtraction (pairwise and
// n-ary), matrix multiplication (pairwise and chained), scalar scaling and
// transpose over any Matrix implementation. All functions perform strict
// fail-fast validation of every operand before any arithmetic.
//
// Purpose:
//   - Define the operation tags and the shared error wrapper for all kernels.
//   - Implement the structural (non-elimination) kernels.
//
// Notes:
//   - Kernels never mutate their operands; each returns a freshly allocated *Dense.
//   - The n-ary forms fold left to right: SubSeq(A,B,C) = (A − B) − C.

package matrix

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/rational"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opSum         = "Sum"
	opSubSeq      = "SubSeq"
	opMul         = "Mul"
	opMulChain    = "MulChain"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opRREF        = "RREF"
	opREF         = "REF"
	opRank        = "Rank"
	opIndependent = "Independent"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opCramer      = "Cramer"
	opSolve       = "Solve"
	opInvertible  = "Invertibility"
	opParseText   = "ParseText"
	opParseSystem = "ParseLinearSystem"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Notes:
//   - Use only when err != nil; wrapping nil yields a non-nil error.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b (sub=false) or out = a − b (sub=true).
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: copy a, then fold b in with a single flat loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sub bool) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}
	out, err := workingCopy(a)
	if err != nil {
		return nil, err
	}
	rhs, err := workingCopy(b)
	if err != nil {
		return nil, err
	}
	for k := range out.data {
		if sub {
			out.data[k] = out.data[k].Sub(rhs.data[k])
		} else {
			out.data[k] = out.data[k].Add(rhs.data[k])
		}
	}

	return out, nil
}

// Add returns a + b (identical shapes required).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
func Add(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	out, err := addSub(a, b, false)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	o.log.Snapshot("A + B", out)

	return out, nil
}

// Sub returns a − b (identical shapes required).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	out, err := addSub(a, b, true)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	o.log.Snapshot("A - B", out)

	return out, nil
}

// validateSameShapeAll checks every operand against the first one before any work.
func validateSameShapeAll(ms []Matrix) error {
	if len(ms) == 0 {
		return ErrEmptyOperands
	}
	for i, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return fmt.Errorf("operand %d: %w", i+1, err)
		}
		if err := ValidateSameShape(ms[0], m); err != nil {
			return fmt.Errorf("operand %d: %w", i+1, err)
		}
	}

	return nil
}

// foldSameShape implements Sum/SubSeq: acc = ms[0] ⊕ ms[1] ⊕ ... left to right.
func foldSameShape(ms []Matrix, sub bool, o Options) (*Dense, error) {
	if err := validateSameShapeAll(ms); err != nil {
		return nil, err
	}
	acc, err := workingCopy(ms[0])
	if err != nil {
		return nil, err
	}
	sym := "+"
	if sub {
		sym = "-"
	}
	for i := 1; i < len(ms); i++ {
		if acc, err = addSub(acc, ms[i], sub); err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		o.log.Snapshot(fmt.Sprintf("partial result after M%d %s M%d", i, sym, i+1), acc)
	}

	return acc, nil
}

// Sum returns ms[0] + ms[1] + ... . A single operand is returned as a copy.
//
// Errors:
//   - ErrEmptyOperands, ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sum").
func Sum(ms []Matrix, opts ...Option) (*Dense, error) {
	out, err := foldSameShape(ms, false, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	return out, nil
}

// SubSeq returns ms[0] − ms[1] − ms[2] − ... evaluated left to right.
//
// Errors:
//   - ErrEmptyOperands, ErrNilMatrix, ErrDimensionMismatch (wrapped with "SubSeq").
func SubSeq(ms []Matrix, opts ...Option) (*Dense, error) {
	out, err := foldSameShape(ms, true, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSubSeq, err)
	}

	return out, nil
}

// mul computes a·b with the classic i-k-j loop on working copies.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMultipliable(a, b); err != nil {
		return nil, err
	}
	x, err := workingCopy(a)
	if err != nil {
		return nil, err
	}
	y, err := workingCopy(b)
	if err != nil {
		return nil, err
	}
	r, n, c := x.r, x.c, y.c
	out := newDenseUnchecked(r, c)
	var i, k, j int
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik := x.data[i*n+k]
			if aik.IsZero() {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] = out.data[i*c+j].Add(aik.Mul(y.data[k*c+j]))
			}
		}
	}

	return out, nil
}

// Mul returns the matrix product a·b; requires a.Cols() == b.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	out, err := mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o.log.Snapshot("A · B", out)

	return out, nil
}

// MulChain returns ms[0]·ms[1]·...·ms[n-1], multiplied left to right.
// All adjacent pairs are shape-checked before the first product.
//
// Errors:
//   - ErrEmptyOperands, ErrNilMatrix, ErrDimensionMismatch (wrapped with "MulChain").
func MulChain(ms []Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(ms) == 0 {
		return nil, matrixErrorf(opMulChain, ErrEmptyOperands)
	}
	for i := 0; i+1 < len(ms); i++ {
		if err := ValidateMultipliable(ms[i], ms[i+1]); err != nil {
			return nil, matrixErrorf(opMulChain, fmt.Errorf("operands %d and %d: %w", i+1, i+2, err))
		}
	}
	acc, err := workingCopy(ms[0])
	if err != nil {
		return nil, matrixErrorf(opMulChain, err)
	}
	for i := 1; i < len(ms); i++ {
		if acc, err = mul(acc, ms[i]); err != nil {
			return nil, matrixErrorf(opMulChain, err)
		}
		o.log.Snapshot(fmt.Sprintf("partial product M1..M%d", i+1), acc)
	}

	return acc, nil
}

// Multipliable reports whether a·b is defined and describes the shapes:
// "2x3 · 3x4 = 2x4" on success, or the mismatching inner dimensions otherwise.
func Multipliable(a, b Matrix) (bool, string) {
	if isNil(a) || isNil(b) {
		return false, "missing operand"
	}
	if a.Cols() != b.Rows() {
		return false, fmt.Sprintf("cols(A)=%d does not match rows(B)=%d", a.Cols(), b.Rows())
	}

	return true, fmt.Sprintf("%dx%d · %dx%d = %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols(), a.Rows(), b.Cols())
}

// Scale returns k·m (scalar broadcast).
//
// Errors:
//   - ErrNilMatrix (wrapped with "Scale").
func Scale(m Matrix, k rational.Rat) (*Dense, error) {
	out, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i := range out.data {
		out.data[i] = out.data[i].Mul(k)
	}

	return out, nil
}

// Transpose returns mᵀ with T[j][i] = M[i][j]; a 0×0 input gives 0×0.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Transpose").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	src, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDenseUnchecked(src.c, src.r)
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			out.data[j*src.r+i] = src.data[i*src.c+j]
		}
	}

	return out, nil
}
