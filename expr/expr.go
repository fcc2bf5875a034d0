// SPDX-License-Identifier: MIT
// Package expr: compiled expression handle and its evaluator adapters.

package expr

import (
	"fmt"
	"math"

	"github.com/achitoo/CalculadoraLineal/rational"
	"gonum.org/v1/gonum/floats"
)

// RationalFunc evaluates a formula exactly at x.
type RationalFunc func(x rational.Rat) (rational.Rat, error)

// FloatFunc evaluates a formula at x; a domain error yields NaN.
type FloatFunc func(x float64) float64

// VectorFunc evaluates a formula at every sample of xs; the result has len(xs).
type VectorFunc func(xs []float64) []float64

// Expr is a compiled formula. It is immutable and safe for concurrent use.
type Expr struct {
	source     string
	normalized string
	root       node
}

// Compile normalises formula (see Normalize) and parses it.
//
// Errors (all wrap ErrEvaluation):
//   - ErrSyntax for malformed or empty input.
//   - ErrUnknownSymbol for names outside x, pi, e and the function table.
//   - ErrDisallowed for assignment, subscripts, attribute access, separators, keywords.
//   - ErrArity for calls with other than one argument.
//
// Complexity:
//   - O(len(formula)).
func Compile(formula string) (*Expr, error) {
	toks, err := normalizeTokens(formula)
	if err != nil {
		return nil, compileErrorf(formula, err)
	}
	p := &parser{toks: toks}
	root, err := p.parse()
	if err != nil {
		return nil, compileErrorf(formula, err)
	}

	return &Expr{source: formula, normalized: joinTokens(toks), root: root}, nil
}

// MustCompile is Compile that panics on error. Intended for constants and tests.
func MustCompile(formula string) *Expr {
	e, err := Compile(formula)
	if err != nil {
		panic(err)
	}

	return e
}

// Source returns the formula as it was given to Compile.
func (e *Expr) Source() string { return e.source }

// String returns the normalised formula, e.g. "2*x^2+sin(x)".
func (e *Expr) String() string { return e.normalized }

// Rational returns the exact evaluator.
//
// Behavior highlights:
//   - + - * / and integer powers are exact while the result stays within
//     65536 bits; abs is exact.
//   - Other functions, non-integer powers and the constants pi and e pass
//     through float64 (rational.FromFloat on the way back).
//
// Errors:
//   - ErrDivisionByZero for x/0 and 0^-n.
//   - ErrDomain when a float step produces NaN or ±Inf.
//
// Each error names the formula and the value of x.
func (e *Expr) Rational() RationalFunc {
	return func(x rational.Rat) (rational.Rat, error) {
		v, err := e.root.rat(x)
		if err != nil {
			return rational.Rat{}, fmt.Errorf("expr: f(x) = %s at x = %s: %w", e.normalized, x, err)
		}

		return v, nil
	}
}

// Float returns the scalar float evaluator. Non-finite results are NaN.
func (e *Expr) Float() FloatFunc {
	return func(x float64) float64 {
		return finiteOrNaN(e.root.float(x))
	}
}

// Vector returns the array evaluator. Positions whose result is NaN or ±Inf
// (sqrt of a negative sample, a pole of the formula) are NaN.
func (e *Expr) Vector() VectorFunc {
	return func(xs []float64) []float64 {
		out := e.root.vec(xs)
		for i, v := range out {
			out[i] = finiteOrNaN(v)
		}

		return out
	}
}

func finiteOrNaN(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}

	return v
}

// Sample evaluates e on n evenly spaced points spanning [lo, hi], endpoints included.
// It is the grid a plot of the formula is drawn from.
//
// Errors:
//   - ErrSampleSize when n < 2 or lo >= hi.
func Sample(e *Expr, lo, hi float64, n int) (xs, ys []float64, err error) {
	if n < 2 || !(lo < hi) {
		return nil, nil, fmt.Errorf("%w: n=%d, [%g, %g]", ErrSampleSize, n, lo, hi)
	}
	xs = floats.Span(make([]float64, n), lo, hi)

	return xs, e.Vector()(xs), nil
}
