// SPDX-License-Identifier: MIT
// Package expr: sentinel errors.
// Every message is prefixed with "expr: ..."; every sentinel except
// ErrSampleSize wraps ErrEvaluation, so callers can test the whole family
// with a single errors.Is(err, ErrEvaluation).

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrEvaluation is the root of every compile-time and run-time formula error.
	ErrEvaluation = errors.New("expr: evaluation error")

	// ErrSyntax reports malformed formulas: unbalanced parentheses, dangling
	// operators, a function name without an argument, empty input.
	ErrSyntax = fmt.Errorf("%w: syntax error", ErrEvaluation)

	// ErrUnknownSymbol reports a name outside the fixed symbol table.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrEvaluation)

	// ErrDisallowed reports constructs outside the formula language: assignment,
	// subscripts, attribute access, statement separators and keywords.
	ErrDisallowed = fmt.Errorf("%w: construct not allowed", ErrEvaluation)

	// ErrArity reports a function called with other than one argument.
	ErrArity = fmt.Errorf("%w: wrong number of arguments", ErrEvaluation)

	// ErrDomain reports a non-finite intermediate or final value (sqrt(-1), log(0), 0^-0.5).
	ErrDomain = fmt.Errorf("%w: math domain error", ErrEvaluation)

	// ErrDivisionByZero reports an exact division by zero in rational evaluation.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrEvaluation)

	// ErrSampleSize is returned by Sample for fewer than two points or a reversed range.
	ErrSampleSize = errors.New("expr: sample needs n >= 2 and lo < hi")
)

// compileErrorf attaches the offending formula to a compile error.
func compileErrorf(formula string, err error) error {
	return fmt.Errorf("expr: compile %q: %w", formula, err)
}
