// SPDX-License-Identifier: MIT
package roots_test

import (
	"math"
	"sync"
	"testing"

	"github.com/achitoo/CalculadoraLineal/expr"
	"github.com/achitoo/CalculadoraLineal/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewton_Converges(t *testing.T) {
	t.Parallel()

	res, err := roots.Newton("x^2 - 2", 1, 1e-10, 50)
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-9)

	first := res.Iterations[0]
	assert.Equal(t, 1.0, first.A)
	assert.Equal(t, -1.0, first.FA)
	assert.InDelta(t, 2.0, first.Slope, 1e-8)
	assert.InDelta(t, 1.5, first.C, 1e-8)
	assert.Empty(t, res.Reason())
}

func TestNewton_StationaryRootStopsImmediately(t *testing.T) {
	t.Parallel()

	res, err := roots.Newton("x^3", 0, 1e-8, 100)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	require.Len(t, res.Iterations, 1)
	assert.Equal(t, "derivative ≈ 0", res.Reason())
	assert.Equal(t, 0.0, res.Root)

	res, err = roots.Newton("x - 3", 3, 1e-8, 100)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	assert.Equal(t, "f(x) = 0", res.Reason())
}

func TestNewton_SoftStops(t *testing.T) {
	t.Parallel()

	// flat tangent away from any root
	res, err := roots.Newton("x^2 + 1", 0, 1e-8, 100)
	require.NoError(t, err)
	assert.Equal(t, roots.Stopped, res.Status)
	assert.Equal(t, "derivative ≈ 0", res.Reason())
	assert.Equal(t, 0.0, res.Root)

	// outside the domain
	res, err = roots.Newton("sqrt(x)", -1, 1e-8, 100)
	require.NoError(t, err)
	assert.Equal(t, roots.Stopped, res.Status)
	assert.Equal(t, "f(x) is not finite", res.Reason())

	// the two-cycle 0 -> 1 -> 0 of x^3 - 2x + 2
	res, err = roots.Newton("x^3 - 2x + 2", 0, 1e-6, 100)
	require.NoError(t, err)
	assert.Equal(t, roots.Stopped, res.Status)
	assert.Contains(t, res.Reason(), "oscillation")
	assert.Len(t, res.Iterations, roots.DefaultOscillationWindow)

	// atan overshoots from x0 = 2; a tight bound catches the divergence early
	limits := roots.DefaultLimits()
	limits.DivergenceBound = 100
	res, err = roots.Newton("atan(x)", 2, 1e-8, 100, roots.WithLimits(limits))
	require.NoError(t, err)
	assert.Equal(t, roots.Stopped, res.Status)
	assert.Contains(t, res.Reason(), "divergence")
	assert.LessOrEqual(t, math.Abs(res.Root), 100.0)
	last := res.Iterations[len(res.Iterations)-1]
	assert.Greater(t, math.Abs(last.C), 100.0)
}

func TestNewton_MaxIterations(t *testing.T) {
	t.Parallel()

	res, err := roots.Newton("x^2 - 2", 1, 1e-12, 2)
	require.NoError(t, err)
	assert.Equal(t, roots.MaxIterations, res.Status)
	require.Len(t, res.Iterations, 2)
	assert.Equal(t, res.Iterations[1].C, res.Root)
}

func TestOpenMethods_ArgumentErrors(t *testing.T) {
	t.Parallel()

	_, err := roots.Newton("x", 1, -1, 10)
	require.ErrorIs(t, err, roots.ErrBadTolerance)
	_, err = roots.Newton("x", 1, math.NaN(), 10)
	require.ErrorIs(t, err, roots.ErrBadTolerance)
	_, err = roots.Newton("x", 1, 1e-6, 0)
	require.ErrorIs(t, err, roots.ErrBadIterations)
	_, err = roots.Newton("import os", 1, 1e-6, 10)
	require.ErrorIs(t, err, expr.ErrDisallowed)

	_, err = roots.Secant("x", 0, 1, math.Inf(1), 10)
	require.ErrorIs(t, err, roots.ErrBadTolerance)
	_, err = roots.Secant("x", 0, 1, 1e-6, -3)
	require.ErrorIs(t, err, roots.ErrBadIterations)
	_, err = roots.Secant("foo(x)", 0, 1, 1e-6, 10)
	require.ErrorIs(t, err, expr.ErrEvaluation)
}

func TestSecant_SqrtTwo(t *testing.T) {
	t.Parallel()

	res, err := roots.Secant("x^2 - 2", 1, 2, 1e-9, 50)
	require.NoError(t, err)
	assert.Equal(t, roots.Converged, res.Status)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-9)

	require.Greater(t, len(res.Iterations), 2)
	assert.InDelta(t, 4.0/3, res.Iterations[0].C, 1e-15)
	for i := 1; i < len(res.Iterations); i++ {
		assert.Lessf(t, res.Iterations[i].Error, res.Iterations[i-1].Error, "iteration %d", i+1)
	}
}

func TestSecant_Stops(t *testing.T) {
	t.Parallel()

	// symmetric seeds on a parabola give a horizontal secant
	res, err := roots.Secant("x^2", -1, 1, 1e-9, 50)
	require.NoError(t, err)
	assert.Equal(t, roots.Stopped, res.Status)
	assert.Equal(t, "denominator ≈ 0", res.Reason())

	res, err = roots.Secant("x - 1", 0, 1, 1e-9, 50)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	assert.Equal(t, 1.0, res.Root)
	require.Len(t, res.Iterations, 1)

	// a line is solved by the first secant; the next step sees f = 0
	res, err = roots.Secant("2x - 1", 0, 1, 1e-9, 50)
	require.NoError(t, err)
	assert.Equal(t, roots.ExactRoot, res.Status)
	assert.Equal(t, 0.5, res.Root)
	require.Len(t, res.Iterations, 2)
}

func TestWithLimits_Panics(t *testing.T) {
	t.Parallel()

	l := roots.DefaultLimits()
	l.OscillationWindow = 2
	assert.PanicsWithValue(t, "roots: WithLimits requires OscillationWindow >= 3", func() { roots.WithLimits(l) })

	l = roots.DefaultLimits()
	l.Step = 0
	assert.Panics(t, func() { roots.WithLimits(l) })
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "converged", roots.Converged.String())
	assert.Equal(t, "exact root", roots.ExactRoot.String())
	assert.Equal(t, "max iterations", roots.MaxIterations.String())
	assert.Equal(t, "stopped", roots.Stopped.String())
}

func TestSolvers_Concurrent(t *testing.T) {
	t.Parallel()

	formulas := []string{"x^2 - 2", "x^3 - x - 1", "cos(x) - x", "exp(x) - 3"}
	var wg sync.WaitGroup
	for _, f := range formulas {
		wg.Add(2)
		go func(f string) {
			defer wg.Done()
			res, err := roots.Newton(f, 1, 1e-10, 100)
			assert.NoError(t, err)
			// cos(x) - x lands on an exact float zero
			assert.Contains(t, []roots.Status{roots.Converged, roots.ExactRoot}, res.Status, f)
		}(f)
		go func(f string) {
			defer wg.Done()
			res, err := roots.Bisection(f, R("0"), R("2"), R("1e-8"), 100)
			assert.NoError(t, err)
			assert.Contains(t, []roots.Status{roots.Converged, roots.ExactRoot}, res.Status, f)
		}(f)
	}
	wg.Wait()
}
