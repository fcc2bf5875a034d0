// SPDX-License-Identifier: MIT
// Package rational: sentinel errors.
// Every message is prefixed with "rational: ..." so it is easy to grep.
// Callers match with errors.Is; Parse wraps the sentinel with the offending text.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned by Parse when the text is not a number.
	ErrSyntax = errors.New("rational: invalid number syntax")

	// ErrDivisionByZero is returned by Quo, Inv, negative PowInt of 0 and "a/0" literals.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNotFinite is returned by FromFloat for NaN and ±Inf.
	ErrNotFinite = errors.New("rational: value is not finite")
)

// parseErrorf attaches the rejected input to a sentinel.
func parseErrorf(input string, err error) error {
	return fmt.Errorf("rational: parse %q: %w", input, err)
}
