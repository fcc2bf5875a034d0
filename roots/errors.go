// SPDX-License-Identifier: MIT
// Package roots: sentinel errors.
// Every message is prefixed with "roots: ..."; solvers wrap them with the
// solver name via rootsErrorf. Formula errors keep matching expr.ErrEvaluation.

package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSignChange is returned by the bracketing methods when f(a) and f(b)
	// have the same sign and neither is exactly zero.
	ErrNoSignChange = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrDegenerateDenominator is returned by FalsePosition when f(a) == f(b).
	ErrDegenerateDenominator = errors.New("roots: f(a) == f(b), false position denominator is zero")

	// ErrInvalidInterval is returned when a bracket does not satisfy a < b.
	ErrInvalidInterval = errors.New("roots: interval requires a < b")

	// ErrBadTolerance is returned for a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("roots: tolerance must be finite and >= 0")

	// ErrBadIterations is returned when the iteration cap is below 1.
	ErrBadIterations = errors.New("roots: max iterations must be >= 1")

	// ErrDiscontinuity is returned by the FalsePosition pre-check when sampling
	// the interval finds a non-finite value or a jump above SolverLimits.DiscontinuityJump.
	ErrDiscontinuity = errors.New("roots: function looks discontinuous on the interval")
)

// Solver names used as error tags.
const (
	opBisection     = "Bisection"
	opFalsePosition = "FalsePosition"
	opNewton        = "Newton"
	opSecant        = "Secant"
)

// rootsErrorf wraps err with the solver name, preserving it for errors.Is.
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
