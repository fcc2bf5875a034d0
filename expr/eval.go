// SPDX-License-Identifier: MIT
// Package expr: expression tree and its three evaluators.
//
// Purpose:
//   - node is the immutable tree produced by the parser.
//   - rat evaluates exactly where the operation allows it and crosses into
//     float64 only for transcendental functions and non-integer powers.
//   - float and vec never fail; callers map non-finite results to NaN.
//
// Notes:
//   - vec always returns a fresh slice of len(x); constant subtrees are
//     broadcast, so a constant formula still yields a full array.

package expr

import (
	"fmt"
	"math"
	"math/big"

	"github.com/achitoo/CalculadoraLineal/rational"
	"gonum.org/v1/gonum/floats"
)

// maxExactBits bounds the estimated size of an exact integer power,
// |exp| * max(bitlen(num), bitlen(den)); larger powers go through math.Pow.
const maxExactBits = 1 << 16

type node interface {
	rat(x rational.Rat) (rational.Rat, error)
	float(x float64) float64
	vec(x []float64) []float64
}

type numNode struct {
	r rational.Rat
	f float64
}

func (n numNode) rat(rational.Rat) (rational.Rat, error) { return n.r, nil }
func (n numNode) float(float64) float64                  { return n.f }
func (n numNode) vec(x []float64) []float64 {
	out := make([]float64, len(x))
	floats.AddConst(n.f, out)

	return out
}

type varNode struct{}

func (varNode) rat(x rational.Rat) (rational.Rat, error) { return x, nil }
func (varNode) float(x float64) float64                  { return x }
func (varNode) vec(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}

type negNode struct{ x node }

func (n negNode) rat(x rational.Rat) (rational.Rat, error) {
	v, err := n.x.rat(x)
	if err != nil {
		return rational.Rat{}, err
	}

	return v.Neg(), nil
}
func (n negNode) float(x float64) float64 { return -n.x.float(x) }
func (n negNode) vec(x []float64) []float64 {
	v := n.x.vec(x)
	floats.Scale(-1, v)

	return v
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) rat(x rational.Rat) (rational.Rat, error) {
	l, err := n.left.rat(x)
	if err != nil {
		return rational.Rat{}, err
	}
	r, err := n.right.rat(x)
	if err != nil {
		return rational.Rat{}, err
	}
	switch n.op {
	case '+':
		return l.Add(r), nil
	case '-':
		return l.Sub(r), nil
	case '*':
		return l.Mul(r), nil
	case '/':
		if r.IsZero() {
			return rational.Rat{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, l)
		}
		return l.Quo(r)
	default:
		return ratPow(l, r)
	}
}

func (n binaryNode) float(x float64) float64 {
	l, r := n.left.float(x), n.right.float(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default:
		return math.Pow(l, r)
	}
}

func (n binaryNode) vec(x []float64) []float64 {
	l, r := n.left.vec(x), n.right.vec(x)
	switch n.op {
	case '+':
		floats.Add(l, r)
	case '-':
		floats.Sub(l, r)
	case '*':
		floats.Mul(l, r)
	case '/':
		floats.Div(l, r)
	default:
		for i := range l {
			l[i] = math.Pow(l[i], r[i])
		}
	}

	return l
}

// ratPow is exact for integer exponents whose result stays within maxExactBits.
// Nested powers are checked level by level against their own base.
func ratPow(base, exp rational.Rat) (rational.Rat, error) {
	if exp.IsInt() && exactPowFits(base, exp.Num()) {
		n := exp.Num().Int64()
		if base.IsZero() && n < 0 {
			return rational.Rat{}, fmt.Errorf("%w: 0 ^ %s", ErrDivisionByZero, exp)
		}
		return base.PowInt(n)
	}

	return fromFloat(math.Pow(base.Float64(), exp.Float64()), "%s ^ %s", base, exp)
}

// exactPowFits reports whether base^n is small enough for big arithmetic.
func exactPowFits(base rational.Rat, n *big.Int) bool {
	if !n.IsInt64() {
		return false
	}
	if k := n.Int64(); k >= -1 && k <= 1 {
		return true
	}
	size := max(base.Num().BitLen(), base.Denom().BitLen(), 1)
	bits := new(big.Int).Mul(new(big.Int).Abs(n), big.NewInt(int64(size)))

	return bits.Cmp(big.NewInt(maxExactBits)) <= 0
}

type callNode struct {
	name string
	fn   function
	arg  node
}

func (n callNode) rat(x rational.Rat) (rational.Rat, error) {
	v, err := n.arg.rat(x)
	if err != nil {
		return rational.Rat{}, err
	}
	if n.fn.exact != nil {
		return n.fn.exact(v), nil
	}

	return fromFloat(n.fn.float(v.Float64()), "%s(%s)", n.name, v)
}
func (n callNode) float(x float64) float64 { return n.fn.float(n.arg.float(x)) }
func (n callNode) vec(x []float64) []float64 {
	v := n.arg.vec(x)
	for i := range v {
		v[i] = n.fn.float(v[i])
	}

	return v
}

// fromFloat converts a float result back to a rational; NaN and ±Inf are domain errors.
func fromFloat(f float64, format string, args ...any) (rational.Rat, error) {
	r, err := rational.FromFloat(f)
	if err != nil {
		return rational.Rat{}, fmt.Errorf("%w: %s", ErrDomain, fmt.Sprintf(format, args...))
	}

	return r, nil
}

// function is one entry of the fixed function table.
type function struct {
	float func(float64) float64
	// exact is set for functions closed over the rationals.
	exact func(rational.Rat) rational.Rat
}

// functions is the whole set of callable names.
var functions = map[string]function{
	"sin":   {float: math.Sin},
	"cos":   {float: math.Cos},
	"tan":   {float: math.Tan},
	"sqrt":  {float: math.Sqrt},
	"exp":   {float: math.Exp},
	"log":   {float: math.Log},
	"log10": {float: math.Log10},
	"asin":  {float: math.Asin},
	"acos":  {float: math.Acos},
	"atan":  {float: math.Atan},
	"sinh":  {float: math.Sinh},
	"cosh":  {float: math.Cosh},
	"tanh":  {float: math.Tanh},
	"abs":   {float: math.Abs, exact: rational.Rat.Abs},
}
