// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the kernels.
//   • Offer a wrapper that hides *Dense so the generic At-based paths run too.

package matrix_test

import (
	"testing"

	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
//
// Behavior highlights:
//   - Prevents the "*Dense" fast path in workingCopy; kernels must read via At.
//
// AI-Hints:
//   - Wrap only the operand you want to de-opt; compare results with the *Dense run.
type hide struct{ matrix.Matrix }

// MustInts builds a *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustStrings builds a *Dense from rational literals ("1/2", "-3") or fails the test.
func MustStrings(t *testing.T, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromStrings(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.Identity(n)
	require.NoError(t, err)

	return I
}

// Col builds an n×1 column from rational literals.
func Col(vals ...string) *matrix.Dense {
	rs := make([]rational.Rat, len(vals))
	for i, v := range vals {
		rs[i] = rational.MustParse(v)
	}

	return matrix.ColumnVector(rs)
}

// requireEqualMatrix compares shape and every entry exactly.
func requireEqualMatrix(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.Truef(t, w.Equal(g), "(%d,%d): want %s, got %s", i, j, w, g)
		}
	}
}

// fixtures used across files.
var (
	// invertible 3×3 with fractional inverse
	fixA3 = [][]int64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}}
	// singular 3×3 (row 3 = row 1 + row 2)
	fixSingular3 = [][]int64{{1, 2, 3}, {4, 5, 6}, {5, 7, 9}}
	// rectangular 3×4
	fixRect34 = [][]int64{{1, 2, 0, 3}, {2, 4, 1, 7}, {-1, -2, 2, -1}}
)
