// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/achitoo/CalculadoraLineal/algebra"
	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MustDense builds a matrix from string rows or fails the test.
func MustDense(t *testing.T, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromStrings(rows)
	require.NoError(t, err)

	return m
}

func env(t *testing.T) map[string]*matrix.Dense {
	t.Helper()

	return map[string]*matrix.Dense{
		"A": MustDense(t, [][]string{{"1", "2"}, {"3", "4"}}),
		"B": MustDense(t, [][]string{{"0", "1"}, {"1", "0"}}),
		"C": MustDense(t, [][]string{{"1", "2", "3"}}),
		"S": MustDense(t, [][]string{{"1", "2"}, {"2", "4"}}),
	}
}

func TestEval_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want [][]string
	}{
		{"A", [][]string{{"1", "2"}, {"3", "4"}}},
		{"A+B", [][]string{{"1", "3"}, {"4", "4"}}},
		{"A - B", [][]string{{"1", "1"}, {"2", "4"}}},
		{"A*B", [][]string{{"2", "1"}, {"4", "3"}}},
		{"B*A", [][]string{{"3", "4"}, {"1", "2"}}},
		{"2*A", [][]string{{"2", "4"}, {"6", "8"}}},
		{"A*2", [][]string{{"2", "4"}, {"6", "8"}}},
		{"A/2", [][]string{{"1/2", "1"}, {"3/2", "2"}}},
		{"1/2*A", [][]string{{"1/2", "1"}, {"3/2", "2"}}},
		{"0.5 × A", [][]string{{"1/2", "1"}, {"3/2", "2"}}},
		{"A·B", [][]string{{"2", "1"}, {"4", "3"}}},
		{"-A", [][]string{{"-1", "-2"}, {"-3", "-4"}}},
		{"+A - -B", [][]string{{"1", "3"}, {"4", "4"}}},
		{"T(A)", [][]string{{"1", "3"}, {"2", "4"}}},
		{"T(C)", [][]string{{"1"}, {"2"}, {"3"}}},
		{"inv(A)", [][]string{{"-2", "1"}, {"3/2", "-1/2"}}},
		{"inv(A)*A", [][]string{{"1", "0"}, {"0", "1"}}},
		{"2*A - T(B)", [][]string{{"2", "3"}, {"5", "8"}}},
		{"(A+B)*(A-B)", [][]string{{"7", "13"}, {"12", "20"}}},
		{"inv(2)*A", [][]string{{"1/2", "1"}, {"3/2", "2"}}},
		{"[[1,2],[3,4]] - A", [][]string{{"0", "0"}, {"0", "0"}}},
		{"[1, 2, 3]", [][]string{{"1"}, {"2"}, {"3"}}},
		{"C*[1,1,1]", [][]string{{"6"}}},
		{"[[1/3, -1], [0.25, 2*3]]", [][]string{{"1/3", "-1"}, {"1/4", "6"}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got, err := algebra.Eval(tc.expr, env(t))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Strings())
		})
	}
}

func TestEval_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want error
	}{
		{"", algebra.ErrSyntax},
		{"A +", algebra.ErrSyntax},
		{"(A", algebra.ErrSyntax},
		{"A)", algebra.ErrSyntax},
		{"A $ B", algebra.ErrSyntax},
		{"[]", algebra.ErrSyntax},
		{"[[1], 2]", algebra.ErrSyntax},
		{"[[[1]]]", algebra.ErrSyntax},
		{"T(A, B)", algebra.ErrSyntax},
		{"X + A", algebra.ErrUnknownName},
		{"a", algebra.ErrUnknownName},
		{"A^2", algebra.ErrUnsupported},
		{"A**2", algebra.ErrUnsupported},
		{"det(A)", algebra.ErrUnsupported},
		{"A + 1", algebra.ErrUnsupported},
		{"2 / A", algebra.ErrUnsupported},
		{"2 + 3", algebra.ErrNotMatrix},
		{"[A]", algebra.ErrNotMatrix},
		{"A + C", matrix.ErrDimensionMismatch},
		{"A * C", matrix.ErrDimensionMismatch},
		{"inv(C)", matrix.ErrNonSquare},
		{"inv(S)", matrix.ErrSingular},
		{"[[1,2],[3]]", matrix.ErrRagged},
		{"A / 0", rational.ErrDivisionByZero},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			_, err := algebra.Eval(tc.expr, env(t))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "algebra: eval")
		})
	}
}

func TestEval_ExpressionFamily(t *testing.T) {
	t.Parallel()

	for _, e := range []string{"", "X", "A^2", "1"} {
		_, err := algebra.Eval(e, env(t))
		require.ErrorIs(t, err, algebra.ErrExpression, e)
	}
}

func TestEval_DoesNotAliasVariables(t *testing.T) {
	t.Parallel()

	vars := env(t)
	got, err := algebra.Eval("A", vars)
	require.NoError(t, err)
	require.NoError(t, got.Set(0, 0, rational.FromInt(99)))

	v, err := vars["A"].At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
}

func TestEval_NilVariable(t *testing.T) {
	t.Parallel()

	_, err := algebra.Eval("A", map[string]*matrix.Dense{"A": nil})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = algebra.Eval("[1,2]", nil)
	require.NoError(t, err)
}

func TestEval_FunctionNameAsVariable(t *testing.T) {
	t.Parallel()

	vars := env(t)
	vars["T"] = vars["B"]
	got, err := algebra.Eval("T(T) + T", vars)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "2"}, {"2", "0"}}, got.Strings())
}
