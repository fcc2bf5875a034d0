// SPDX-License-Identifier: MIT

// Package expr compiles a one-variable formula typed by a person ("2x^2 - 3",
// "sin x + e^x", "sqrt(x)/(x-1)") into an immutable expression tree that can be
// evaluated three ways:
//
//   - Rational: exact arithmetic over rational.Rat for + - * / and integer
//     powers; abs is exact; transcendental functions and non-integer powers
//     cross into float64 and back through rational.FromFloat.
//   - Float: scalar float64 evaluation; any domain error yields NaN.
//   - Vector: one pass over a whole []float64 grid using gonum/floats; samples
//     that hit a domain error are NaN at their position.
//
// Language:
//
//   - x is the only free variable; pi and e are constants.
//   - Operators + - * / and ^ (or **); ^ is right-associative and binds tighter
//     than unary minus, so -x^2 is -(x^2).
//   - Implicit multiplication: 2x, 2(x+1), (x+1)(x-1), (x)x, x(x+1), pi x.
//   - A bare function applied to a single atom becomes a call: sin x is sin(x).
//   - Functions: sin cos tan sqrt exp log log10 asin acos atan sinh cosh tanh abs.
//
// Security: the parser resolves names only against the fixed table above.
// Assignment, subscripts, attribute access, statement separators and keywords
// are rejected at compile time with ErrDisallowed; there is no generic
// interpreter behind the tree.
//
// A compiled *Expr is safe for concurrent use.
package expr
