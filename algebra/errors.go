// SPDX-License-Identifier: MIT
// Package algebra: sentinel errors.
// Every message is prefixed with "algebra: ..."; every sentinel wraps
// ErrExpression. Errors raised by the matrix kernels (shape, singularity)
// are propagated unchanged inside the wrapper and still match the matrix
// sentinels with errors.Is.

package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrExpression is the root of every error produced by this package.
	ErrExpression = errors.New("algebra: invalid matrix expression")

	// ErrSyntax reports malformed input: unbalanced brackets, dangling
	// operators, unexpected characters, empty input.
	ErrSyntax = fmt.Errorf("%w: syntax error", ErrExpression)

	// ErrUnknownName reports a name that is neither a bound matrix nor a function.
	ErrUnknownName = fmt.Errorf("%w: unknown name", ErrExpression)

	// ErrUnsupported reports operators, functions and operand combinations
	// outside the language (A^2, det(A), A + 2, 2 / A).
	ErrUnsupported = fmt.Errorf("%w: unsupported operation", ErrExpression)

	// ErrNotMatrix reports an expression whose value is a scalar, or a literal
	// list holding a matrix where a number is expected.
	ErrNotMatrix = fmt.Errorf("%w: value is not a matrix", ErrExpression)
)

// evalErrorf attaches the offending expression to err.
func evalErrorf(expression string, err error) error {
	return fmt.Errorf("algebra: eval %q: %w", expression, err)
}
