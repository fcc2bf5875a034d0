// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	t.Parallel()

	text := `
Row one:  1, 2.5 ; -3/4
	| 0   .5   7 |

not a number here
`
	m, err := matrix.ParseText(text)
	require.NoError(t, err)
	requireEqualMatrix(t, MustStrings(t, [][]string{{"1", "5/2", "-3/4"}, {"0", "1/2", "7"}}), m)
}

func TestParseText_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.ParseText("no numbers at all")
	require.ErrorIs(t, err, matrix.ErrParse)

	_, err = matrix.ParseText("1 2\n3")
	require.ErrorIs(t, err, matrix.ErrRagged)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ParseText("1/0 2")
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestParseLinearSystem_CanonicalOrder(t *testing.T) {
	t.Parallel()

	sys, err := matrix.ParseLinearSystem(`
		z + x - 2y = 1
		3x + y = 0.5
		-y + 2*z = -4
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, sys.Variables)
	requireEqualMatrix(t, MustInts(t, [][]int64{{1, -2, 1}, {3, 1, 0}, {0, -1, 2}}), sys.A)
	requireEqualMatrix(t, Col("1", "1/2", "-4"), sys.B)
}

func TestParseLinearSystem_Alphabetical(t *testing.T) {
	t.Parallel()

	sys, err := matrix.ParseLinearSystem("b + 2a = 3\na - b + a = 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, sys.Variables)
	// repeated variables on a line add up
	requireEqualMatrix(t, MustInts(t, [][]int64{{2, 1}, {2, -1}}), sys.A)

	// {x, z} is not a canonical set
	sys, err = matrix.ParseLinearSystem("z + x = 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "z"}, sys.Variables)

	sys, err = matrix.ParseLinearSystem("y + x = 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, sys.Variables)
}

func TestParseLinearSystem_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "x + y", "3 = 4", "x = y", "x = 1/0"} {
		_, err := matrix.ParseLinearSystem(in)
		assert.ErrorIsf(t, err, matrix.ErrParse, "input %q", in)
	}
}

func TestParseLinearSystem_SolvesEndToEnd(t *testing.T) {
	t.Parallel()

	sys, err := matrix.ParseLinearSystem("x + 3y = 7\n5x - y = 3")
	require.NoError(t, err)
	sol, err := matrix.Solve(sys.A, sys.B, matrix.GaussJordan)
	require.NoError(t, err)
	requireEqualMatrix(t, Col("1", "2"), sol.X)
}
