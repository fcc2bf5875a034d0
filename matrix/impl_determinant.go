// SPDX-License-Identifier: MIT

// Package matrix - determinant strategies and Cramer's rule.
//
// Purpose:
//   - Offer two interchangeable determinant algorithms behind one Determinant call:
//     cofactor expansion along row 0 (teaching-sized inputs) and Gaussian elimination
//     with sign tracking (larger inputs). Both are exact and always agree.
//   - Solve square systems by Cramer's rule on top of Determinant.
//
// Notes:
//   - Cofactor expansion is O(n!); Auto switches to elimination above the cofactor limit.
//   - Zero entries of row 0 are skipped during expansion; their terms are exactly zero.
//   - det of the 0×0 matrix is 1.

package matrix

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/rational"
)

// Determinant returns det(m) using the configured strategy (Auto by default).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
//
// Complexity:
//   - Cofactor: O(n!); Elimination: O(n³).
func Determinant(m Matrix, opts ...Option) (rational.Rat, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return rational.Rat{}, matrixErrorf(opDeterminant, err)
	}
	w, err := workingCopy(m)
	if err != nil {
		return rational.Rat{}, matrixErrorf(opDeterminant, err)
	}

	var det rational.Rat
	switch o.strategyFor(w.r) {
	case Cofactor:
		o.log.Notef(labelStart, "cofactor expansion along row 1 (order %d)", w.r)
		det = detCofactor(w, o.log)
	default:
		o.log.Notef(labelStart, "Gaussian elimination with sign tracking (order %d)", w.r)
		det = detElimination(w, o.log)
	}
	o.log.Notef(labelResult, "det = %s", det)

	return det, nil
}

// detCofactor expands along row 0. Only the top level narrates, one line per term.
func detCofactor(w *Dense, log *Log) rational.Rat {
	n := w.r
	switch n {
	case 0:
		return rational.One()
	case 1:
		return w.data[0]
	case 2:
		// ad − bc
		return w.data[0].Mul(w.data[3]).Sub(w.data[1].Mul(w.data[2]))
	}

	rows := seq(1, n)
	cols := make([]int, 0, n-1)
	var sum rational.Rat
	for j := 0; j < n; j++ {
		a0j := w.data[j]
		if a0j.IsZero() {
			log.Notef(labelEliminate, "a(1,%d) = 0: term skipped", j+1)
			continue
		}
		cols = cols[:0]
		for k := 0; k < n; k++ {
			if k != j {
				cols = append(cols, k)
			}
		}
		minor, _ := w.Induced(rows, cols)
		md := detCofactor(minor, nil)
		term := a0j.Mul(md)
		if j%2 == 1 {
			term = term.Neg()
		}
		log.Notef(labelEliminate, "a(1,%d) = %s, minor M(1,%d) = %s, term = %s", j+1, a0j, j+1, md, term)
		sum = sum.Add(term)
	}

	return sum
}

// detElimination reduces w in place to upper-triangular form with the same
// pivoting rule as RREF; det = (−1)^swaps · Π pivots.
func detElimination(w *Dense, log *Log) rational.Rat {
	n := w.r
	det := rational.One()
	for col := 0; col < n; col++ {
		p := -1
		var best rational.Rat
		for i := col; i < n; i++ {
			v := w.at(i, col)
			if v.IsZero() {
				continue
			}
			if p < 0 || v.CmpAbs(best) > 0 {
				p, best = i, v
			}
		}
		if p < 0 {
			log.Notef(labelNoPivot, "column %d has no pivot: det = 0", col+1)
			return rational.Zero()
		}
		if p != col {
			w.swapRows(p, col)
			det = det.Neg()
			log.Notef(labelSwap, "swap R%d <-> R%d (sign changes)", col+1, p+1)
		}
		piv := w.at(col, col)
		det = det.Mul(piv)
		for i := col + 1; i < n; i++ {
			v := w.at(i, col)
			if v.IsZero() {
				continue
			}
			f, _ := v.Quo(piv)
			w.addRowMultiple(i, col, f)
			log.Notef(labelEliminate, "R%d := R%d - (%s) * R%d", i+1, i+1, f, col+1)
		}
		log.Snapshot(fmt.Sprintf("after column %d", col+1), w)
	}

	return det
}

// Cramer solves A·x = b by Cramer's rule: x_i = det(A_i) / det(A), where A_i is A
// with column i replaced by b. The result is an n×1 column vector.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (b is not n×1).
//   - ErrSingular when det(A) is exactly zero.
//
// Complexity:
//   - (n+1) determinants.
func Cramer(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	if err := ValidateColumnVector(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	wa, err := workingCopy(a)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	wb, err := workingCopy(b)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}

	// Inner determinants are not narrated; only their values are.
	detOpts := []Option{WithDeterminant(o.determinant), WithCofactorLimit(o.cofactorLimit)}
	d, err := Determinant(wa, detOpts...)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	o.log.Notef(labelPivot, "det(A) = %s", d)
	if d.IsZero() {
		return nil, matrixErrorf(opCramer, ErrSingular)
	}

	n := wa.r
	x := make([]rational.Rat, n)
	for i := 0; i < n; i++ {
		ai := wa.Clone()
		for r := 0; r < n; r++ {
			ai.data[r*n+i] = wb.data[r]
		}
		o.log.Snapshot(fmt.Sprintf("A%d", i+1), ai)
		di, err := Determinant(ai, detOpts...)
		if err != nil {
			return nil, matrixErrorf(opCramer, err)
		}
		x[i], _ = di.Quo(d)
		o.log.Notef(labelResult, "x%d = det(A%d) / det(A) = %s / %s = %s", i+1, i+1, di, d, x[i])
	}

	return ColumnVector(x), nil
}
