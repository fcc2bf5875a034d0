// SPDX-License-Identifier: MIT
package roots_test

import (
	"math"
	"testing"

	"github.com/achitoo/CalculadoraLineal/expr"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/achitoo/CalculadoraLineal/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// R parses a rational literal.
func R(s string) rational.Rat { return rational.MustParse(s) }

func TestBisection_LinearConvergence(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisection("x - 2", R("0"), R("5"), R("1e-6"), 100)
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.LessOrEqual(t, len(res.Iterations), 23)
	assert.Less(t, math.Abs(res.Root.Float64()-2), 1e-6)

	first := res.Iterations[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "5/2", first.C.String())
	assert.Equal(t, "5/2", first.Error.String())
	assert.Empty(t, res.Reason())
}

func TestBisection_BracketKeepsSignChange(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisection("x^3 - x - 1", R("1"), R("2"), R("1e-9"), 100)
	require.NoError(t, err)
	require.Equal(t, roots.Converged, res.Status)
	for _, it := range res.Iterations {
		assert.Negativef(t, it.FA.Sign()*it.FB.Sign(), "iteration %d", it.Index)
		assert.True(t, it.A.Cmp(it.C) < 0 && it.C.Cmp(it.B) < 0)
	}
	assert.InDelta(t, 1.324717957, res.Root.Float64(), 1e-8)
}

func TestBisection_ExactRoots(t *testing.T) {
	t.Parallel()

	// endpoint
	res, err := roots.Bisection("x - 2", R("2"), R("5"), R("1e-6"), 100)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	require.Len(t, res.Iterations, 1)
	assert.Equal(t, 0, res.Iterations[0].Index)
	assert.Equal(t, "2", res.Root.String())
	assert.Equal(t, "f(a) = 0", res.Reason())

	res, err = roots.Bisection("x - 5", R("2"), R("5"), R("1e-6"), 100)
	require.NoError(t, err)
	assert.Equal(t, "5", res.Root.String())
	assert.Equal(t, "f(b) = 0", res.Reason())

	// midpoint hits the root exactly
	res, err = roots.Bisection("2x - 5", R("0"), R("5"), R("1e-6"), 100)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	require.Len(t, res.Iterations, 1)
	assert.Equal(t, "5/2", res.Root.String())
	assert.Equal(t, "f(c) = 0", res.Reason())
}

func TestBisection_MaxIterations(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisection("x - 2", R("0"), R("5"), R("0"), 5)
	require.NoError(t, err)
	assert.Equal(t, roots.MaxIterations, res.Status)
	require.Len(t, res.Iterations, 5)
	assert.True(t, res.Root.Equal(res.Iterations[4].C))
}

func TestBracketing_Errors(t *testing.T) {
	t.Parallel()

	solvers := map[string]func(string, rational.Rat, rational.Rat, rational.Rat, int, ...roots.Option) (roots.Result[rational.Rat], error){
		"bisection":      roots.Bisection,
		"false position": roots.FalsePosition,
	}
	for name, solve := range solvers {
		solve := solve
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := solve("x^2 + 1", R("-1"), R("1"), R("1e-6"), 50)
			require.ErrorIs(t, err, roots.ErrNoSignChange)

			_, err = solve("x - 2", R("5"), R("0"), R("1e-6"), 50)
			require.ErrorIs(t, err, roots.ErrInvalidInterval)

			_, err = solve("x - 2", R("0"), R("5"), R("-1"), 50)
			require.ErrorIs(t, err, roots.ErrBadTolerance)

			_, err = solve("x - 2", R("0"), R("5"), R("1e-6"), 0)
			require.ErrorIs(t, err, roots.ErrBadIterations)

			_, err = solve("x - y", R("0"), R("5"), R("1e-6"), 50)
			require.ErrorIs(t, err, expr.ErrUnknownSymbol)
			require.ErrorIs(t, err, expr.ErrEvaluation)

			// the first midpoint / chord point is the pole
			_, err = solve("1/(x - 5/2)", R("0"), R("5"), R("1e-6"), 50, roots.WithoutDiscontinuityCheck())
			require.ErrorIs(t, err, expr.ErrDivisionByZero)
		})
	}
}

func TestFalsePosition(t *testing.T) {
	t.Parallel()

	res, err := roots.FalsePosition("x^2 - 2", R("1"), R("2"), R("1e-6"), 100)
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.InDelta(t, math.Sqrt2, res.Root.Float64(), 1e-5)

	first := res.Iterations[0]
	assert.Equal(t, "4/3", first.C.String())
	assert.Equal(t, "1", first.Error.String(), "first error is the bracket width")
	if len(res.Iterations) > 1 {
		second := res.Iterations[1]
		assert.True(t, second.Error.Equal(second.C.Sub(first.C).Abs()))
	}
}

// TestFalsePosition_CubicStaysBounded: chord points of a cubic are rounded, so
// denominators stop growing and long runs still finish.
func TestFalsePosition_CubicStaysBounded(t *testing.T) {
	t.Parallel()

	for _, iv := range [][2]string{{"1", "2"}, {"1", "3"}} {
		res, err := roots.FalsePosition("x^3 - x - 1", R(iv[0]), R(iv[1]), R("1e-6"), 100)
		require.NoError(t, err, iv)
		assert.Equal(t, roots.Converged, res.Status, iv)
		assert.InDelta(t, 1.324717957, res.Root.Float64(), 1e-4, iv)
		for _, it := range res.Iterations {
			assert.True(t, it.A.Cmp(it.C) < 0 && it.C.Cmp(it.B) < 0, "iteration %d", it.Index)
			assert.Negativef(t, it.FA.Sign()*it.FB.Sign(), "iteration %d", it.Index)
			assert.LessOrEqual(t, it.C.Denom().BitLen(), 256, "iteration %d", it.Index)
		}
	}

	// tolerance 0 never converges on an irrational root; the cap ends the run
	res, err := roots.FalsePosition("x^5 - 3x + 1", R("0"), R("1"), R("0"), 300)
	require.NoError(t, err)
	assert.Equal(t, roots.MaxIterations, res.Status)
	assert.Len(t, res.Iterations, 300)
	assert.InDelta(t, 0.3347341419, res.Root.Float64(), 1e-9)
	// midpoint fallbacks add at most one bit per step
	assert.LessOrEqual(t, res.Root.Denom().BitLen(), 128+len(res.Iterations))
}

func TestFalsePosition_ExactChordRoot(t *testing.T) {
	t.Parallel()

	res, err := roots.FalsePosition("x - 1/3", R("0"), R("1"), R("1e-6"), 10)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	assert.Equal(t, "1/3", res.Root.String())
	require.Len(t, res.Iterations, 1)
}

func TestFalsePosition_DegenerateDenominator(t *testing.T) {
	t.Parallel()

	_, err := roots.FalsePosition("x^2 - 1", R("-2"), R("2"), R("1e-6"), 10)
	require.ErrorIs(t, err, roots.ErrDegenerateDenominator)
	require.ErrorIs(t, err, roots.ErrNoSignChange)

	// bisection only sees the missing sign change
	_, err = roots.Bisection("x^2 - 1", R("-2"), R("2"), R("1e-6"), 10)
	require.ErrorIs(t, err, roots.ErrNoSignChange)
	require.NotErrorIs(t, err, roots.ErrDegenerateDenominator)
}

func TestFalsePosition_DiscontinuityCheck(t *testing.T) {
	t.Parallel()

	limits := roots.DefaultLimits()
	limits.DiscontinuityJump = 10
	_, err := roots.FalsePosition("1/(x - 1.5)", R("1"), R("2"), R("1e-6"), 50, roots.WithLimits(limits))
	require.ErrorIs(t, err, roots.ErrDiscontinuity)

	// a sample landing on the pole is non-finite
	limits = roots.DefaultLimits()
	limits.DiscontinuitySamples = 3
	_, err = roots.FalsePosition("1/x", R("-1"), R("1"), R("1e-6"), 50, roots.WithLimits(limits))
	require.ErrorIs(t, err, roots.ErrDiscontinuity)

	// with the default jump the pole slips through and the chord lands on it
	_, err = roots.FalsePosition("1/(x - 1.5)", R("1"), R("2"), R("1e-6"), 50)
	require.ErrorIs(t, err, expr.ErrDivisionByZero)
}
