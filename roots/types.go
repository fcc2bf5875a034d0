// SPDX-License-Identifier: MIT
// Package roots: iteration records and results.

package roots

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/rational"
)

// Scalar is the number type a solver works in: exact rationals for the
// bracketing methods, float64 for the open methods.
type Scalar interface {
	rational.Rat | float64
}

// Iteration is one row of a solver's table.
//
// Field use per method:
//   - Bisection, FalsePosition: [A, B] is the bracket at the start of the
//     step, C the candidate, Error the step's error estimate.
//   - Newton: A is x_i, FA is f(x_i), Slope is f'(x_i), C is x_{i+1}.
//   - Secant: A is x_{i-1}, B is x_i, Slope the secant slope, C is x_{i+1}.
//
// Reason is set only on the last record, when the run ended on an exact root
// or a soft stop.
type Iteration[T Scalar] struct {
	Index  int
	A, FA  T
	B, FB  T
	C, FC  T
	Slope  T
	Error  T
	Reason string
}

// Status tells how a run ended.
type Status int

const (
	// Converged: the error estimate dropped below the tolerance.
	Converged Status = iota
	// ExactRoot: f evaluated to exactly zero at the returned root.
	ExactRoot
	// MaxIterations: the cap was reached; Root is the last candidate.
	MaxIterations
	// Stopped: an open method hit a soft failure; see Result.Reason.
	Stopped
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case ExactRoot:
		return "exact root"
	case MaxIterations:
		return "max iterations"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is a root estimate together with the iterations that produced it.
type Result[T Scalar] struct {
	Root       T
	Iterations []Iteration[T]
	Status     Status
}

// Reason returns the terminal reason of the run, or "" when there is none.
func (r Result[T]) Reason() string {
	if len(r.Iterations) == 0 {
		return ""
	}

	return r.Iterations[len(r.Iterations)-1].Reason
}
