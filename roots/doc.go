// SPDX-License-Identifier: MIT

// Package roots implements four classical root finders for a formula in x:
//
//   - Bisection and FalsePosition: bracketing methods over exact rationals.
//     Exact arithmetic makes the stopping test f(c) == 0 meaningful.
//   - Newton and Secant: open methods over float64.
//
// Every solver returns a Result holding the root estimate, the ordered
// iteration records ("show your work" table) and a Status.
//
// Hard errors vs soft stops:
//   - Invalid arguments, formula errors, a missing sign change and a degenerate
//     false-position denominator are errors (see errors.go).
//   - When Newton or Secant run into a stationary point, a non-finite value,
//     divergence, oscillation or stagnation, the loop ends with Status Stopped,
//     the reason in the last record and the best iterate as Root. No error is
//     returned: the table of iterations is the explanation.
//   - Exhausting the iteration cap is Status MaxIterations, also without error.
//
// The numeric thresholds of the open methods live in SolverLimits and are
// tuned with WithLimits.
//
// All solvers are pure functions of their arguments and safe for concurrent use.
package roots
