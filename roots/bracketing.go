// SPDX-License-Identifier: MIT
// Package roots: bracketing methods over exact rationals.
//
// Purpose:
//   - Bisection and FalsePosition share argument validation, the endpoint
//     evaluation with its exact-zero shortcut, and the sign-based bracket update.
//
// Notes:
//   - All bracket arithmetic is exact. Only transcendental parts of the formula
//     cross into float64 (see expr.Expr.Rational).

package roots

import (
	"fmt"
	"math"

	"github.com/achitoo/CalculadoraLineal/expr"
	"github.com/achitoo/CalculadoraLineal/rational"
)

// bracket is the validated starting state of a bracketing run.
type bracket struct {
	f      expr.RationalFunc
	a, b   rational.Rat
	fa, fb rational.Rat
}

// openBracket validates arguments, compiles formula and evaluates both endpoints.
// When an endpoint is an exact root it returns the finished single-record Result
// and done == true. With chord set, equal endpoint values fail with an error
// matching both ErrNoSignChange and ErrDegenerateDenominator.
func openBracket(tag, formula string, a, b, tol rational.Rat, maxIter int, chord bool) (bracket, Result[rational.Rat], bool, error) {
	var none Result[rational.Rat]
	if tol.Sign() < 0 {
		return bracket{}, none, false, rootsErrorf(tag, fmt.Errorf("%w: got %s", ErrBadTolerance, tol))
	}
	if maxIter < 1 {
		return bracket{}, none, false, rootsErrorf(tag, fmt.Errorf("%w: got %d", ErrBadIterations, maxIter))
	}
	if a.Cmp(b) >= 0 {
		return bracket{}, none, false, rootsErrorf(tag, fmt.Errorf("%w: [%s, %s]", ErrInvalidInterval, a, b))
	}
	e, err := expr.Compile(formula)
	if err != nil {
		return bracket{}, none, false, rootsErrorf(tag, err)
	}
	f := e.Rational()
	fa, err := f(a)
	if err != nil {
		return bracket{}, none, false, rootsErrorf(tag, err)
	}
	fb, err := f(b)
	if err != nil {
		return bracket{}, none, false, rootsErrorf(tag, err)
	}

	endpoint := func(c, fc rational.Rat, reason string) Result[rational.Rat] {
		return Result[rational.Rat]{
			Root:   c,
			Status: ExactRoot,
			Iterations: []Iteration[rational.Rat]{{
				A: a, FA: fa, B: b, FB: fb, C: c, FC: fc, Reason: reason,
			}},
		}
	}
	switch {
	case fa.IsZero():
		return bracket{}, endpoint(a, fa, "f(a) = 0"), true, nil
	case fb.IsZero():
		return bracket{}, endpoint(b, fb, "f(b) = 0"), true, nil
	case chord && fa.Equal(fb):
		return bracket{}, none, false, rootsErrorf(tag,
			fmt.Errorf("%w: %w: f(%s) = f(%s) = %s", ErrNoSignChange, ErrDegenerateDenominator, a, b, fa))
	case fa.Sign() == fb.Sign():
		return bracket{}, none, false, rootsErrorf(tag,
			fmt.Errorf("%w: f(%s) = %s, f(%s) = %s", ErrNoSignChange, a, fa, b, fb))
	}

	return bracket{f: f, a: a, b: b, fa: fa, fb: fb}, none, false, nil
}

// narrow replaces the endpoint whose value shares the sign of fc.
func (br *bracket) narrow(c, fc rational.Rat) {
	if br.fa.Sign()*fc.Sign() < 0 {
		br.b, br.fb = c, fc
		return
	}
	br.a, br.fa = c, fc
}

// chordBits caps the denominator of a chord point at 2^chordBits. Exact chord
// points of polynomials of degree three or more roughly double their
// denominator size every step, so FalsePosition rounds them onto this grid.
const chordBits = 128

// bounded returns c when its denominator fits chordBits, otherwise the nearest
// multiple of 2^-chordBits. A rounded point that leaves the open bracket is
// replaced by the midpoint, so the bracket still shrinks.
func (br *bracket) bounded(c rational.Rat) rational.Rat {
	if c.Denom().BitLen() <= chordBits {
		return c
	}
	d := c.Dyadic(chordBits)
	if d.Cmp(br.a) <= 0 || d.Cmp(br.b) >= 0 {
		d, _ = br.a.Add(br.b).Quo(rational.FromInt(2))
	}

	return d
}

func (br *bracket) record(i int, c, fc, errEst rational.Rat) Iteration[rational.Rat] {
	return Iteration[rational.Rat]{
		Index: i,
		A:     br.a,
		FA:    br.fa,
		B:     br.b,
		FB:    br.fb,
		C:     c,
		FC:    fc,
		Error: errEst,
	}
}

// Bisection halves the bracket [a, b] until f(c) == 0 or |b-a|/2 < tol.
//
// Behavior highlights:
//   - An exact zero at an endpoint returns that endpoint with one record (Index 0).
//   - On reaching maxIter the last midpoint is returned with Status MaxIterations.
//   - opts keep the solver signatures uniform; no option changes Bisection today.
//
// Errors:
//   - ErrBadTolerance (tol < 0), ErrBadIterations (maxIter < 1),
//     ErrInvalidInterval (a >= b), ErrNoSignChange, and formula errors
//     matching expr.ErrEvaluation.
//
// Complexity:
//   - At most maxIter evaluations after the two endpoint ones; the bracket
//     width is exactly (b-a)/2^i, so dyadic rationals stay small.
func Bisection(formula string, a, b, tol rational.Rat, maxIter int, opts ...Option) (Result[rational.Rat], error) {
	br, done, finished, err := openBracket(opBisection, formula, a, b, tol, maxIter, false)
	if err != nil || finished {
		return done, err
	}

	two := rational.FromInt(2)
	res := Result[rational.Rat]{Status: MaxIterations}
	for i := 1; i <= maxIter; i++ {
		c, _ := br.a.Add(br.b).Quo(two)
		fc, err := br.f(c)
		if err != nil {
			return Result[rational.Rat]{}, rootsErrorf(opBisection, err)
		}
		errEst, _ := br.b.Sub(br.a).Abs().Quo(two)
		rec := br.record(i, c, fc, errEst)
		res.Root = c

		switch {
		case fc.IsZero():
			rec.Reason = "f(c) = 0"
			res.Status = ExactRoot
		case errEst.Cmp(tol) < 0:
			res.Status = Converged
		}
		res.Iterations = append(res.Iterations, rec)
		if res.Status != MaxIterations {
			return res, nil
		}
		br.narrow(c, fc)
	}

	return res, nil
}

// FalsePosition (regula falsi) replaces the midpoint of Bisection with the root
// of the chord through (a, f(a)) and (b, f(b)):
//
//	c = (a·f(b) − b·f(a)) / (f(b) − f(a))
//
// The error estimate is |c − c_prev|, and the initial bracket width on the first step.
// Chord points with a denominator above 2^128 are rounded to the nearest multiple
// of 2^-128 inside the bracket; f(c), the sign test and the zero test stay exact.
//
// Behavior highlights:
//   - Unless WithoutDiscontinuityCheck is given, the interval is first sampled
//     at SolverLimits.DiscontinuitySamples interior points in float64; a
//     non-finite sample or a jump between neighbours above DiscontinuityJump
//     fails with ErrDiscontinuity. It is a best-effort guard against brackets
//     around a pole, not a proof of continuity.
//
// Errors:
//   - Those of Bisection, plus ErrDegenerateDenominator (f(a) == f(b); the
//     error also matches ErrNoSignChange) and ErrDiscontinuity.
func FalsePosition(formula string, a, b, tol rational.Rat, maxIter int, opts ...Option) (Result[rational.Rat], error) {
	o := gatherOptions(opts...)
	br, done, finished, err := openBracket(opFalsePosition, formula, a, b, tol, maxIter, true)
	if err != nil || finished {
		return done, err
	}
	if o.discontinuity {
		if err := checkContinuity(formula, a.Float64(), b.Float64(), o.limits); err != nil {
			return Result[rational.Rat]{}, rootsErrorf(opFalsePosition, err)
		}
	}

	res := Result[rational.Rat]{Status: MaxIterations}
	width := b.Sub(a)
	var prev rational.Rat
	for i := 1; i <= maxIter; i++ {
		den := br.fb.Sub(br.fa)
		if den.IsZero() {
			return Result[rational.Rat]{}, rootsErrorf(opFalsePosition,
				fmt.Errorf("%w: f(%s) = f(%s) = %s", ErrDegenerateDenominator, br.a, br.b, br.fa))
		}
		c, _ := br.a.Mul(br.fb).Sub(br.b.Mul(br.fa)).Quo(den)
		c = br.bounded(c)
		fc, err := br.f(c)
		if err != nil {
			return Result[rational.Rat]{}, rootsErrorf(opFalsePosition, err)
		}
		errEst := width
		if i > 1 {
			errEst = c.Sub(prev).Abs()
		}
		rec := br.record(i, c, fc, errEst)
		res.Root = c

		switch {
		case fc.IsZero():
			rec.Reason = "f(c) = 0"
			res.Status = ExactRoot
		case errEst.Cmp(tol) < 0:
			res.Status = Converged
		}
		res.Iterations = append(res.Iterations, rec)
		if res.Status != MaxIterations {
			return res, nil
		}
		br.narrow(c, fc)
		prev = c
	}

	return res, nil
}

// checkContinuity samples n interior points of (a, b) with the float evaluator.
func checkContinuity(formula string, a, b float64, l SolverLimits) error {
	e, err := expr.Compile(formula)
	if err != nil {
		return err
	}
	f := e.Float()
	n := l.DiscontinuitySamples
	step := (b - a) / float64(n+1)
	prevX, prevY := 0.0, 0.0
	for k := 1; k <= n; k++ {
		x := a + step*float64(k)
		y := f(x)
		if math.IsNaN(y) {
			return fmt.Errorf("%w: f(%g) is not finite", ErrDiscontinuity, x)
		}
		if k > 1 && math.Abs(y-prevY) > l.DiscontinuityJump {
			return fmt.Errorf("%w: jump of %g between x = %g and x = %g", ErrDiscontinuity, math.Abs(y-prevY), prevX, x)
		}
		prevX, prevY = x, y
	}

	return nil
}
