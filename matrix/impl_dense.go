// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact rationals with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) for minors and column swaps.
//
// AI-Hints:
//   - Kernels operate on the flat data slice of their private working copy directly.
//   - rational.Rat is immutable, so copying the data slice is a deep copy.
//   - 0×0, 0×n and n×0 shapes are legal (an empty matrix has 0 rows).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"

	"github.com/achitoo/CalculadoraLineal/rational"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxCol    = "Col"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of rationals.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int            // row and column counts
	data []rational.Rat // contiguous row-major storage (len == r*c); zero value is 0
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer (the zero Rat is 0).
//
// Errors:
//   - ErrBadShape (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]rational.Rat, rows*cols)}, nil
}

// newDenseUnchecked allocates without validation; callers guarantee rows, cols >= 0.
func newDenseUnchecked(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]rational.Rat, rows*cols)}
}

// NewFromRows builds a matrix from row slices, copying the values.
//
// Behavior highlights:
//   - An empty (or nil) slice yields the 0×0 matrix.
//   - Every row must have the length of the first one.
//
// Errors:
//   - ErrRagged when row lengths differ (matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]rational.Rat) (*Dense, error) {
	if len(rows) == 0 {
		return newDenseUnchecked(0, 0), nil
	}
	cols := len(rows[0])
	m := newDenseUnchecked(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrRagged)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromInts is NewFromRows for integer literals; handy in tests and examples.
func NewFromInts(rows [][]int64) (*Dense, error) {
	rs := make([][]rational.Rat, len(rows))
	for i, row := range rows {
		rs[i] = make([]rational.Rat, len(row))
		for j, v := range row {
			rs[i][j] = rational.FromInt(v)
		}
	}

	return NewFromRows(rs)
}

// NewFromStrings parses every cell with rational.Parse ("3", "-0.5", "2/3").
//
// Errors:
//   - ErrRagged when row lengths differ.
//   - rational.ErrSyntax / rational.ErrDivisionByZero wrapped with the cell position.
func NewFromStrings(rows [][]string) (*Dense, error) {
	rs := make([][]rational.Rat, len(rows))
	for i, row := range rows {
		rs[i] = make([]rational.Rat, len(row))
		for j, s := range row {
			v, err := rational.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("NewFromStrings: cell (%d,%d): %w", i, j, err)
			}
			rs[i][j] = v
		}
	}

	return NewFromRows(rs)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere). Identity(0) is 0×0.
//
// Errors:
//   - ErrBadShape for n < 0.
func Identity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := rational.One()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// ColumnVector returns the len(vals)×1 matrix holding vals.
func ColumnVector(vals []rational.Rat) *Dense {
	m := newDenseUnchecked(len(vals), 1)
	copy(m.data, vals)

	return m
}

// RowVector returns the 1×len(vals) matrix holding vals.
func RowVector(vals []rational.Rat) *Dense {
	m := newDenseUnchecked(1, len(vals))
	copy(m.data, vals)

	return m
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (rational.Rat, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return rational.Rat{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
//
// Notes:
//   - Set is for building matrices. Kernels never call Set on their operands;
//     they copy first and return a new *Dense.
func (m *Dense) Set(row, col int, v rational.Rat) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]rational.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rat, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]rational.Rat, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]rational.Rat, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]rational.Rat, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and exactly the same entries.
// A nil operand (untyped, typed-nil or a nil receiver) is never equal.
func (m *Dense) Equal(o Matrix) bool {
	if m == nil || isNil(o) || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := o.At(i, j)
			if err != nil || !v.Equal(m.data[i*m.c+j]) {
				return false
			}
		}
	}

	return true
}

// ToRows returns the entries as a fresh [][]rational.Rat.
func (m *Dense) ToRows() [][]rational.Rat {
	out := make([][]rational.Rat, m.r)
	for i := range out {
		out[i] = make([]rational.Rat, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Strings returns every entry formatted with rational.Rat.String ("n" or "n/d").
func (m *Dense) Strings() [][]string {
	out := make([][]string, m.r)
	for i := range out {
		out[i] = make([]string, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = m.data[i*m.c+j].String()
		}
	}

	return out
}

// String HUMAN-READABLE dump of rows, one "[a, b, c]" line per row.
// The 0×0 matrix renders as "[]\n".
//
// Determinism:
//   - Fixed traversal order.
func (m *Dense) String() string {
	var b strings.Builder
	if m.r == 0 {
		b.WriteString(_fmtRowOpen)
		b.WriteString(_fmtRowClose)
		return b.String()
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
//
// Behavior highlights:
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//   - Empty index sets give a legal zero-area matrix.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res := newDenseUnchecked(rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// it stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v rational.Rat) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// ---------- working-copy row operations (used by elimination kernels) ----------

// swapRows exchanges rows i and k in place.
func (m *Dense) swapRows(i, k int) {
	if i == k {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// scaleRow divides row i by d in place; d must be non-zero.
func (m *Dense) scaleRow(i int, d rational.Rat) {
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j], _ = row[j].Quo(d) // d != 0 guaranteed by the caller
	}
}

// addRowMultiple performs row_i := row_i - f*row_k in place.
func (m *Dense) addRowMultiple(i, k int, f rational.Rat) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		if rk[j].IsZero() {
			continue
		}
		ri[j] = ri[j].Sub(f.Mul(rk[j]))
	}
}

// at is the unchecked flat read for kernels.
func (m *Dense) at(i, j int) rational.Rat { return m.data[i*m.c+j] }
