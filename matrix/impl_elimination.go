// SPDX-License-Identifier: MIT

// Package matrix - row reduction kernels: RREF (Gauss-Jordan), REF (Gauss),
// rank, row independence, inverse via [A | I] and the linear-system solver.
//
// Purpose:
//   - Hold the single canonical elimination routine; every kernel in this file
//     (and Elimination determinants, Invertibility) is built on it.
//
// Pivoting:
//   - Column by column, the pivot row is the row at or below the current pivot row
//     with the largest |value| in that column; the first row attaining the maximum wins.
//   - A column whose candidates are all exactly zero has no pivot (free column);
//     the pivot-row counter does not advance.
//   - Zero tests are exact comparisons; there is no tolerance anywhere on this path.
//
// AI-Hints:
//   - Pass WithLog(NewLog()) to capture row swaps, scalings, combinations and a
//     snapshot after every pivot column.

package matrix

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/rational"
)

// Step labels shared by the elimination kernels.
const (
	labelStart     = "start"
	labelSwap      = "swap"
	labelScale     = "scale"
	labelEliminate = "eliminate"
	labelNoPivot   = "no pivot"
	labelPivot     = "pivot"
	labelResult    = "result"
)

// eliminate row-reduces w in place, choosing pivots in columns [0, limit) and
// applying every row operation across the full row width.
// reduced=true clears each pivot column above and below (RREF); reduced=false
// clears below only (REF). Pivot rows are normalised to a leading 1 in both modes.
//
// Returns the pivot columns in order; len(result) is the rank of w[:, :limit].
//
// Complexity:
//   - Time O(r * limit * c), Space O(1) beyond w.
func eliminate(w *Dense, limit int, reduced bool, log *Log) []int {
	pivots := make([]int, 0, min(w.r, limit))
	row := 0
	for col := 0; col < limit && row < w.r; col++ {
		// Partial pivoting by exact magnitude; strict > keeps the first maximum.
		p := -1
		var best rational.Rat
		for i := row; i < w.r; i++ {
			v := w.at(i, col)
			if v.IsZero() {
				continue
			}
			if p < 0 || v.CmpAbs(best) > 0 {
				p, best = i, v
			}
		}
		if p < 0 {
			log.Notef(labelNoPivot, "column %d: no pivot, column is free", col+1)
			continue
		}
		if p != row {
			w.swapRows(p, row)
			log.Notef(labelSwap, "swap R%d <-> R%d", row+1, p+1)
		}
		piv := w.at(row, col)
		log.Notef(labelPivot, "pivot %s at (%d,%d)", piv, row+1, col+1)
		if !piv.IsOne() {
			w.scaleRow(row, piv)
			log.Notef(labelScale, "R%d := R%d / %s", row+1, row+1, piv)
		}
		start := row + 1
		if reduced {
			start = 0
		}
		for i := start; i < w.r; i++ {
			if i == row {
				continue
			}
			f := w.at(i, col)
			if f.IsZero() {
				continue
			}
			w.addRowMultiple(i, row, f)
			log.Notef(labelEliminate, "R%d := R%d - (%s) * R%d", i+1, i+1, f, row+1)
		}
		log.Snapshot(fmt.Sprintf("after column %d", col+1), w)
		pivots = append(pivots, col)
		row++
	}

	return pivots
}

// RREF returns the reduced row-echelon form of m and its pivot columns (0-indexed).
//
// Behavior highlights:
//   - m is not modified.
//   - RREF(RREF(m)) == RREF(m).
//   - len(pivots) is the rank.
//
// Errors:
//   - ErrNilMatrix (wrapped with "RREF").
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RREF(m Matrix, opts ...Option) (*Dense, []int, error) {
	o := gatherOptions(opts...)
	w, err := workingCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	o.log.Snapshot(labelStart, w)
	pivots := eliminate(w, w.c, true, o.log)

	return w, pivots, nil
}

// REF returns a row-echelon form of m (forward elimination only, pivot rows
// normalised to a leading 1) and its pivot columns.
//
// Errors:
//   - ErrNilMatrix (wrapped with "REF").
func REF(m Matrix, opts ...Option) (*Dense, []int, error) {
	o := gatherOptions(opts...)
	w, err := workingCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opREF, err)
	}
	o.log.Snapshot(labelStart, w)
	pivots := eliminate(w, w.c, false, o.log)

	return w, pivots, nil
}

// Rank returns rank(m) together with the RREF and pivot columns it was read from.
// rank(m) <= min(rows, cols) always holds.
func Rank(m Matrix, opts ...Option) (int, *Dense, []int, error) {
	r, pivots, err := RREF(m, opts...)
	if err != nil {
		return 0, nil, nil, matrixErrorf(opRank, err)
	}

	return len(pivots), r, pivots, nil
}

// Independent reports whether the rows of vectors are linearly independent,
// i.e. whether rank equals the number of rows. An empty set is independent.
func Independent(vectors Matrix, opts ...Option) (bool, error) {
	rank, _, _, err := Rank(vectors, opts...)
	if err != nil {
		return false, matrixErrorf(opIndependent, err)
	}

	return rank == vectors.Rows(), nil
}

// augment returns [a | b] for a and b with equal row counts.
func augment(a, b *Dense) *Dense {
	out := newDenseUnchecked(a.r, a.c+b.c)
	for i := 0; i < a.r; i++ {
		copy(out.data[i*out.c:i*out.c+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*out.c+a.c:(i+1)*out.c], b.data[i*b.c:(i+1)*b.c])
	}

	return out
}

// Inverse returns A⁻¹ by Gauss-Jordan elimination on [A | I].
//
// Implementation:
//   - Stage 1: ValidateSquare; build [A | I].
//   - Stage 2: eliminate with pivots chosen in the first n columns, row operations
//     applied across the full width.
//   - Stage 3: the left half must be exactly I, otherwise ErrSingular; the right half is A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "Inverse").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	a, err := workingCopy(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.r
	I, _ := Identity(n)
	w := augment(a, I)
	o.log.Snapshot("[A | I]", w)
	eliminate(w, n, true, o.log)

	one := rational.One()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := w.at(i, j)
			if (i == j && !v.Equal(one)) || (i != j && !v.IsZero()) {
				o.log.Notef(labelResult, "left half is not the identity: matrix is not invertible")
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
		}
	}
	inv, _ := w.Induced(seq(0, n), seq(n, 2*n))
	o.log.Snapshot("A^-1", inv)

	return inv, nil
}

// seq returns [from, from+1, ..., to-1].
func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}

// SolveMethod selects the elimination flavour used by Solve.
type SolveMethod int

const (
	// GaussJordan reduces [A | b] to RREF and reads the solution directly.
	GaussJordan SolveMethod = iota
	// Gauss reduces [A | b] to REF and back-substitutes.
	Gauss
)

// String returns "gauss-jordan" or "gauss".
func (s SolveMethod) String() string {
	switch s {
	case GaussJordan:
		return "gauss-jordan"
	case Gauss:
		return "gauss"
	default:
		return fmt.Sprintf("SolveMethod(%d)", int(s))
	}
}

// SolutionKind classifies a linear system.
type SolutionKind int

const (
	// Unique: every variable is a pivot variable.
	Unique SolutionKind = iota
	// Infinite: consistent with at least one free variable.
	Infinite
	// Inconsistent: some row reduces to 0 = c with c != 0.
	Inconsistent
)

// String returns the lower-case kind name.
func (k SolutionKind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("SolutionKind(%d)", int(k))
	}
}

// Solution is the outcome of Solve.
//   - X is the n×1 solution; for Infinite it is the particular solution with every
//     free variable set to 0; for Inconsistent it is nil.
//   - Pivots and Free are 0-indexed variable (column) indices.
//   - Reduced is the final augmented matrix [R | c].
type Solution struct {
	Kind    SolutionKind
	X       *Dense
	Pivots  []int
	Free    []int
	Reduced *Dense
}

// Solve solves A·x = b with the chosen elimination method.
//
// Implementation:
//   - Stage 1: validate A (non-nil) and b (rows(A)×1).
//   - Stage 2: eliminate [A | b] choosing pivots among the columns of A only.
//   - Stage 3: a row 0 = c (c != 0) means Inconsistent; otherwise read (GaussJordan)
//     or back-substitute (Gauss) the pivot variables, free variables set to 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Solve").
//
// Complexity:
//   - Time O(r*n*(n+1)), Space O(r*(n+1)).
func Solve(a, b Matrix, method SolveMethod, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(a); err != nil {
		return Solution{}, matrixErrorf(opSolve, err)
	}
	if err := ValidateColumnVector(b, a.Rows()); err != nil {
		return Solution{}, matrixErrorf(opSolve, err)
	}
	if method != GaussJordan && method != Gauss {
		return Solution{}, matrixErrorf(opSolve, fmt.Errorf("unknown method %d", int(method)))
	}
	wa, err := workingCopy(a)
	if err != nil {
		return Solution{}, matrixErrorf(opSolve, err)
	}
	wb, err := workingCopy(b)
	if err != nil {
		return Solution{}, matrixErrorf(opSolve, err)
	}
	n := wa.c
	w := augment(wa, wb)
	o.log.Snapshot("[A | b]", w)
	pivots := eliminate(w, n, method == GaussJordan, o.log)

	sol := Solution{Pivots: pivots, Reduced: w}
	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}
	for j := 0; j < n; j++ {
		if !isPivot[j] {
			sol.Free = append(sol.Free, j)
		}
	}
	// Rows below the last pivot row have zero coefficients; any non-zero rhs is 0 = c.
	for i := len(pivots); i < w.r; i++ {
		if c := w.at(i, n); !c.IsZero() {
			o.log.Notef(labelResult, "R%d reads 0 = %s: the system is inconsistent", i+1, c)
			sol.Kind = Inconsistent
			return sol, nil
		}
	}

	x := make([]rational.Rat, n)
	for k := len(pivots) - 1; k >= 0; k-- {
		pc := pivots[k]
		v := w.at(k, n)
		if method == Gauss {
			// Back substitution; the pivot entry is exactly 1.
			for j := pc + 1; j < n; j++ {
				if c := w.at(k, j); !c.IsZero() {
					v = v.Sub(c.Mul(x[j]))
				}
			}
			o.log.Notef(labelResult, "x%d = %s", pc+1, v)
		}
		x[pc] = v
	}
	sol.X = ColumnVector(x)
	if len(sol.Free) == 0 {
		sol.Kind = Unique
	} else {
		sol.Kind = Infinite
		o.log.Notef(labelResult, "%d free variable(s); particular solution with free variables = 0", len(sol.Free))
	}

	return sol, nil
}
