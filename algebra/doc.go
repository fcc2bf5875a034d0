// SPDX-License-Identifier: MIT

// Package algebra evaluates matrix expressions such as "A+B", "2*A - T(B)",
// "inv(A)*B" or "[[1,2],[3,4]] * A" into an exact *matrix.Dense.
//
// Language:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | primary
//	primary = number | name | ("T" | "inv") "(" sum ")" | "(" sum ")" | list
//	list    = "[" item { "," item } "]"   // items are numbers or rows "[...]"
//
// Values are either scalars (exact rationals) or matrices:
//   - matrix ± matrix uses matrix.Add / matrix.Sub; a scalar cannot be added
//     to a matrix.
//   - scalar * matrix and matrix * scalar scale through matrix.Scale;
//     matrix * matrix is matrix.Mul. Division is accepted only by a scalar.
//   - T(·) transposes, inv(·) inverts; both also accept scalars.
//   - A flat list [1,2,3] is a column vector; a list of rows
//     [[1,2],[3,4]] is a matrix with one row per inner list.
//   - "×" and "·" are accepted as multiplication.
//
// The final value must be a matrix. Names are resolved only against the
// caller's variable map; nothing else is reachable from an expression.
//
// Errors:
//   - ErrExpression family (ErrSyntax, ErrUnknownName, ErrUnsupported,
//     ErrNotMatrix), plus the matrix sentinels (ErrDimensionMismatch,
//     ErrNonSquare, ErrSingular, ErrRagged) and rational.ErrDivisionByZero
//     raised while evaluating.
package algebra
