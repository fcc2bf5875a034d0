// SPDX-License-Identifier: MIT

// Package rational - exact fractions for the matrix and bracketing cores.
//
// Purpose:
//   - Provide an immutable value type Rat over math/big.Rat so that pivoting,
//     back-substitution and sign tests are exact (no floating tolerance).
//   - Keep the single float<->rational boundary (FromFloat) explicit and documented.
//
// Behavior highlights:
//   - The zero value of Rat is a valid 0.
//   - Every operation allocates a fresh big.Rat; a Rat is never mutated after creation,
//     so values can be shared between goroutines and copied freely.
//   - big.Rat keeps fractions reduced with a positive denominator.
//
// AI-Hints:
//   - Compare with Equal/Cmp/Sign, never through Float64.
//   - Use Parse at user-input boundaries; use FromFloat only where a float result must
//     re-enter exact arithmetic (transcendental functions).
package rational

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Rat is an immutable exact fraction. The zero value is 0.
type Rat struct {
	v *big.Rat // nil means zero; never mutated once assigned
}

var bigZero = new(big.Rat)

// New returns num/den. It panics when den == 0, mirroring big.NewRat;
// use Parse or Quo for user-controlled denominators.
func New(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// FromInt returns n/1.
func FromInt(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// FromBig returns a Rat holding a copy of r (nil is treated as 0).
func FromBig(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}
	return Rat{v: new(big.Rat).Set(r)}
}

// Zero returns 0.
func Zero() Rat { return Rat{} }

// One returns 1.
func One() Rat { return FromInt(1) }

// Parse reads an integer ("-3"), decimal ("0.25", ".5"), fraction ("3/4", "-1/2")
// or exponent form ("1e-6", "2.5E3"). Surrounding spaces are ignored.
//
// Errors:
//   - ErrSyntax when s is not a number in one of the forms above.
//   - ErrDivisionByZero for "a/0".
func Parse(s string) (Rat, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Rat{}, parseErrorf(s, ErrSyntax)
	}
	if num, den, ok := strings.Cut(t, "/"); ok {
		if strings.Contains(den, "/") {
			return Rat{}, parseErrorf(s, ErrSyntax)
		}
		n, err := Parse(num)
		if err != nil {
			return Rat{}, parseErrorf(s, ErrSyntax)
		}
		d, err := Parse(den)
		if err != nil {
			return Rat{}, parseErrorf(s, ErrSyntax)
		}
		q, err := n.Quo(d)
		if err != nil {
			return Rat{}, parseErrorf(s, err)
		}
		return q, nil
	}
	// big.Rat also accepts base prefixes ("0x10"); only the decimal alphabet is allowed here.
	for i := 0; i < len(t); i++ {
		switch c := t[i]; {
		case c >= '0' && c <= '9', c == '.', c == '+', c == '-', c == 'e', c == 'E':
		default:
			return Rat{}, parseErrorf(s, ErrSyntax)
		}
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return Rat{}, parseErrorf(s, ErrSyntax)
	}
	return Rat{v: r}, nil
}

// MustParse is Parse that panics on error. Intended for constants and tests.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// FromFloat converts f to an exact rational through its shortest decimal
// representation, so FromFloat(0.1) == 1/10 rather than the binary expansion
// of the double nearest to 0.1.
//
// This is the only place where floating-point values re-enter exact arithmetic.
// The precision lost by the float computation that produced f is accepted.
func FromFloat(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, ErrNotFinite
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, parseErrorf(s, ErrSyntax)
	}
	return Rat{v: r}, nil
}

// val returns the backing value, substituting the shared zero for nil.
// The result must not be mutated.
func (r Rat) val() *big.Rat {
	if r.v == nil {
		return bigZero
	}
	return r.v
}

// Big returns a copy of the value as *big.Rat.
func (r Rat) Big() *big.Rat { return new(big.Rat).Set(r.val()) }

// Num returns a copy of the (reduced) numerator.
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.val().Num()) }

// Denom returns a copy of the (positive) denominator.
func (r Rat) Denom() *big.Int { return new(big.Int).Set(r.val().Denom()) }

// Add returns r + o.
func (r Rat) Add(o Rat) Rat { return Rat{v: new(big.Rat).Add(r.val(), o.val())} }

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat { return Rat{v: new(big.Rat).Sub(r.val(), o.val())} }

// Mul returns r * o.
func (r Rat) Mul(o Rat) Rat { return Rat{v: new(big.Rat).Mul(r.val(), o.val())} }

// Quo returns r / o, or ErrDivisionByZero when o is 0.
func (r Rat) Quo(o Rat) (Rat, error) {
	if o.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{v: new(big.Rat).Quo(r.val(), o.val())}, nil
}

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(r.val())} }

// Abs returns |r|.
func (r Rat) Abs() Rat { return Rat{v: new(big.Rat).Abs(r.val())} }

// Inv returns 1/r, or ErrDivisionByZero when r is 0.
func (r Rat) Inv() (Rat, error) {
	if r.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{v: new(big.Rat).Inv(r.val())}, nil
}

// PowInt returns r^n for any integer n (exact square-and-multiply).
// 0^0 is 1; 0^n with n < 0 is ErrDivisionByZero.
func (r Rat) PowInt(n int64) (Rat, error) {
	if n < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rat{}, err
		}
		return inv.PowInt(-n)
	}
	num := new(big.Int).Exp(r.val().Num(), big.NewInt(n), nil)
	den := new(big.Int).Exp(r.val().Denom(), big.NewInt(n), nil)
	return Rat{v: new(big.Rat).SetFrac(num, den)}, nil
}

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int { return r.val().Sign() }

// IsZero reports r == 0.
func (r Rat) IsZero() bool { return r.Sign() == 0 }

// IsOne reports r == 1.
func (r Rat) IsOne() bool {
	v := r.val()

	return v.IsInt() && v.Num().Cmp(big.NewInt(1)) == 0
}

// IsInt reports whether the denominator is 1.
func (r Rat) IsInt() bool { return r.val().IsInt() }

// Cmp compares r and o: -1 if r < o, 0 if equal, +1 if r > o.
func (r Rat) Cmp(o Rat) int { return r.val().Cmp(o.val()) }

// CmpAbs compares |r| and |o|.
func (r Rat) CmpAbs(o Rat) int { return r.Abs().Cmp(o.Abs()) }

// Equal reports exact equality.
func (r Rat) Equal(o Rat) bool { return r.Cmp(o) == 0 }

// Float64 returns the nearest float64 (may be ±Inf for huge values).
func (r Rat) Float64() float64 {
	f, _ := r.val().Float64()
	return f
}

// String returns "n" for integers and "n/d" otherwise.
func (r Rat) String() string { return r.val().RatString() }

// Decimal formats r rounded to maxDigits fractional digits (half away from zero)
// with trailing zeros trimmed, so 99999/100000 at 3 digits prints "1".
func (r Rat) Decimal(maxDigits int) string {
	if maxDigits < 0 {
		maxDigits = 0
	}
	if r.IsInt() {
		return r.val().Num().String()
	}
	s := r.val().FloatString(maxDigits)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}

	return s
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rat) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Rat) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Dyadic returns the multiple of 2^-k nearest to r, ties away from zero.
// Integers and values whose denominator already divides 2^k come back unchanged.
func (r Rat) Dyadic(k uint) Rat {
	v := r.val()
	if v.IsInt() {
		return r
	}
	scaled := new(big.Int).Lsh(v.Num(), k)
	q, rem := new(big.Int).QuoRem(scaled, v.Denom(), new(big.Int))
	if rem.Abs(rem).Lsh(rem, 1).Cmp(v.Denom()) >= 0 {
		q.Add(q, big.NewInt(int64(scaled.Sign())))
	}

	return Rat{v: new(big.Rat).SetFrac(q, new(big.Int).Lsh(big.NewInt(1), k))}
}

// Max returns the larger of a and b (a on ties).
func Max(a, b Rat) Rat {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}
