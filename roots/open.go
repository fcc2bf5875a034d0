// SPDX-License-Identifier: MIT
// Package roots: open methods over float64.
//
// Purpose:
//   - Newton-Raphson with a central-difference derivative (gonum diff/fd).
//   - Secant on the two most recent iterates.
//   - The shared soft-stop checks: non-finite values, divergence, oscillation
//     and stagnation.

package roots

import (
	"fmt"
	"math"

	"github.com/achitoo/CalculadoraLineal/expr"
	"gonum.org/v1/gonum/diff/fd"
)

// Terminal reasons of the open methods.
const (
	reasonExactRoot   = "f(x) = 0"
	reasonFlatRoot    = "derivative ≈ 0"
	reasonFlatSecant  = "denominator ≈ 0"
	reasonNaNSlope    = "derivative is not finite"
	reasonNaNValue    = "f(x) is not finite"
	reasonNaNIterate  = "next iterate is not finite"
	reasonNaNNext     = "f is not finite at the next iterate (discontinuity)"
	reasonStagnation  = "no progress: error is 0 but the tolerance is not met"
	reasonDivergence  = "divergence: |x| > %g"
	reasonOscillation = "oscillation between %g and %g"
)

// openFloat validates the shared float arguments and compiles formula.
func openFloat(tag, formula string, tol float64, maxIter int) (expr.FloatFunc, error) {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		return nil, rootsErrorf(tag, fmt.Errorf("%w: got %g", ErrBadTolerance, tol))
	}
	if maxIter < 1 {
		return nil, rootsErrorf(tag, fmt.Errorf("%w: got %d", ErrBadIterations, maxIter))
	}
	e, err := expr.Compile(formula)
	if err != nil {
		return nil, rootsErrorf(tag, err)
	}

	return e.Float(), nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Newton runs Newton-Raphson from x0: x ← x − f(x)/f'(x).
//
// Implementation:
//   - f'(x) is the central difference (f(x+h) − f(x−h)) / 2h with h = SolverLimits.Step,
//     computed by fd.Derivative with fd.Central.
//   - Success when |x_{i+1} − x_i| < tol (Status Converged, Root x_{i+1}).
//
// Behavior highlights:
//   - f(x) == 0 exactly: Status ExactRoot, Root x. The reason is "derivative ≈ 0"
//     when |f'(x)| <= FlatSlope (a stationary or multiple root, e.g. x^3 at 0),
//     else "f(x) = 0".
//   - Soft stops (Status Stopped, reason in the last record): |f'(x)| < DerivativeZero,
//     non-finite f'(x), non-finite f(x), non-finite x_{i+1} or f(x_{i+1}),
//     |x_{i+1}| > DivergenceBound, a two-value cycle over the last
//     OscillationWindow iterates, an error of exactly 0 that misses the tolerance.
//     Root is x_i for stops that reject x_{i+1}, x_{i+1} otherwise.
//
// Errors:
//   - ErrBadTolerance, ErrBadIterations, formula compile errors (expr.ErrEvaluation).
func Newton(formula string, x0, tol float64, maxIter int, opts ...Option) (Result[float64], error) {
	o := gatherOptions(opts...)
	f, err := openFloat(opNewton, formula, tol, maxIter)
	if err != nil {
		return Result[float64]{}, err
	}
	lim := o.limits
	settings := &fd.Settings{Formula: fd.Central, Step: lim.Step}
	osc := newCycleDetector(lim)

	res := Result[float64]{Root: x0, Status: MaxIterations}
	stop := func(rec Iteration[float64], root float64, status Status, reason string) (Result[float64], error) {
		rec.Reason = reason
		res.Iterations = append(res.Iterations, rec)
		res.Root, res.Status = root, status
		return res, nil
	}

	x := x0
	for i := 1; i <= maxIter; i++ {
		rec := Iteration[float64]{Index: i, A: x, C: x}
		fx := f(x)
		rec.FA = fx
		if !finite(fx) {
			return stop(rec, x, Stopped, reasonNaNValue)
		}
		d := fd.Derivative(f, x, settings)
		rec.Slope = d
		if fx == 0 {
			if math.Abs(d) <= lim.FlatSlope {
				return stop(rec, x, ExactRoot, reasonFlatRoot)
			}
			return stop(rec, x, ExactRoot, reasonExactRoot)
		}
		if !finite(d) {
			return stop(rec, x, Stopped, reasonNaNSlope)
		}
		if math.Abs(d) < lim.DerivativeZero {
			return stop(rec, x, Stopped, reasonFlatRoot)
		}

		next := x - fx/d
		rec.C = next
		if !finite(next) {
			return stop(rec, x, Stopped, reasonNaNIterate)
		}
		rec.FC = f(next)
		rec.Error = math.Abs(next - x)
		if !finite(rec.FC) {
			return stop(rec, x, Stopped, reasonNaNNext)
		}
		if math.Abs(next) > lim.DivergenceBound {
			return stop(rec, x, Stopped, fmt.Sprintf(reasonDivergence, lim.DivergenceBound))
		}
		if rec.Error < tol {
			res.Iterations = append(res.Iterations, rec)
			res.Root, res.Status = next, Converged
			return res, nil
		}
		if rec.Error == 0 {
			return stop(rec, next, Stopped, reasonStagnation)
		}
		if p, q, ok := osc.push(next, tol); ok {
			return stop(rec, next, Stopped, fmt.Sprintf(reasonOscillation, p, q))
		}

		res.Iterations = append(res.Iterations, rec)
		res.Root = next
		x = next
	}

	return res, nil
}

// Secant runs the secant method from the seeds x0, x1:
//
//	x_{i+1} = x_i − f(x_i)·(x_{i−1} − x_i) / (f(x_{i−1}) − f(x_i))
//
// Success when |x_{i+1} − x_i| < tol. Soft stops mirror Newton, with
// "denominator ≈ 0" when |f(x_{i−1}) − f(x_i)| < DerivativeZero.
// An exact zero of f at x_i ends the run with Status ExactRoot.
//
// Errors:
//   - ErrBadTolerance, ErrBadIterations, formula compile errors (expr.ErrEvaluation).
func Secant(formula string, x0, x1, tol float64, maxIter int, opts ...Option) (Result[float64], error) {
	o := gatherOptions(opts...)
	f, err := openFloat(opSecant, formula, tol, maxIter)
	if err != nil {
		return Result[float64]{}, err
	}
	lim := o.limits
	osc := newCycleDetector(lim)

	res := Result[float64]{Root: x1, Status: MaxIterations}
	stop := func(rec Iteration[float64], root float64, status Status, reason string) (Result[float64], error) {
		rec.Reason = reason
		res.Iterations = append(res.Iterations, rec)
		res.Root, res.Status = root, status
		return res, nil
	}

	prev, cur := x0, x1
	fPrev, fCur := f(prev), f(cur)
	for i := 1; i <= maxIter; i++ {
		rec := Iteration[float64]{Index: i, A: prev, FA: fPrev, B: cur, FB: fCur, C: cur}
		if !finite(fPrev) || !finite(fCur) {
			return stop(rec, cur, Stopped, reasonNaNValue)
		}
		if fCur == 0 {
			return stop(rec, cur, ExactRoot, reasonExactRoot)
		}
		den := fPrev - fCur
		if cur != prev {
			rec.Slope = (fCur - fPrev) / (cur - prev)
		}
		if math.Abs(den) < lim.DerivativeZero {
			return stop(rec, cur, Stopped, reasonFlatSecant)
		}

		next := cur - fCur*(prev-cur)/den
		rec.C = next
		if !finite(next) {
			return stop(rec, cur, Stopped, reasonNaNIterate)
		}
		fNext := f(next)
		rec.FC = fNext
		rec.Error = math.Abs(next - cur)
		if !finite(fNext) {
			return stop(rec, cur, Stopped, reasonNaNNext)
		}
		if math.Abs(next) > lim.DivergenceBound {
			return stop(rec, cur, Stopped, fmt.Sprintf(reasonDivergence, lim.DivergenceBound))
		}
		if rec.Error < tol {
			res.Iterations = append(res.Iterations, rec)
			res.Root, res.Status = next, Converged
			return res, nil
		}
		if rec.Error == 0 {
			return stop(rec, next, Stopped, reasonStagnation)
		}
		if p, q, ok := osc.push(next, tol); ok {
			return stop(rec, next, Stopped, fmt.Sprintf(reasonOscillation, p, q))
		}

		res.Iterations = append(res.Iterations, rec)
		res.Root = next
		prev, fPrev = cur, fCur
		cur, fCur = next, fNext
	}

	return res, nil
}

// cycleDetector keeps the trailing iterates of a run and reports a two-value cycle.
type cycleDetector struct {
	window   int
	rounding float64
	tail     []float64
}

func newCycleDetector(l SolverLimits) *cycleDetector {
	return &cycleDetector{window: l.OscillationWindow, rounding: l.Rounding}
}

// push records x and reports whether the last window iterates, snapped to the
// rounding grid, take exactly two values further apart than tol.
func (c *cycleDetector) push(x, tol float64) (p, q float64, ok bool) {
	c.tail = append(c.tail, math.Round(x/c.rounding)*c.rounding)
	if len(c.tail) > c.window {
		c.tail = c.tail[1:]
	}
	if len(c.tail) < c.window {
		return 0, 0, false
	}
	p = c.tail[0]
	seenQ := false
	for _, v := range c.tail[1:] {
		switch {
		case v == p:
		case !seenQ:
			q, seenQ = v, true
		case v != q:
			return 0, 0, false
		}
	}
	if !seenQ || math.Abs(p-q) <= tol {
		return 0, 0, false
	}

	return p, q, true
}
