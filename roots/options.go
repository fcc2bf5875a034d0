// SPDX-License-Identifier: MIT
// Package roots: solver limits and functional options.
//
// Purpose:
//   - Gather the heuristic thresholds of the open methods in one value object.
//   - Offer functional options in the same shape as the matrix package.
//
// Notes:
//   - Options panic on nonsensical values with stable messages; they are
//     programmer errors, not input errors.

package roots

// Default heuristic thresholds.
const (
	DefaultDerivativeZero       = 1e-15
	DefaultFlatSlope            = 1e-8
	DefaultDivergenceBound      = 1e10
	DefaultOscillationWindow    = 6
	DefaultRounding             = 1e-9
	DefaultStep                 = 1e-5
	DefaultDiscontinuitySamples = 10
	DefaultDiscontinuityJump    = 1e6
)

// Panic messages.
const (
	panicLimitsWindow  = "roots: WithLimits requires OscillationWindow >= 3"
	panicLimitsStep    = "roots: WithLimits requires Step > 0 and Rounding > 0"
	panicLimitsSamples = "roots: WithLimits requires DiscontinuitySamples >= 2"
)

// SolverLimits holds the thresholds the solvers compare against.
type SolverLimits struct {
	// DerivativeZero: |f'(x)| (Newton) or |f(x_{i-1}) - f(x_i)| (Secant) below
	// this is a stationary point.
	DerivativeZero float64
	// FlatSlope: an exact Newton root whose |f'(x)| is at most this is reported
	// as "derivative ≈ 0" (multiple or stationary root).
	FlatSlope float64
	// DivergenceBound: |x_{i+1}| above this stops the run.
	DivergenceBound float64
	// OscillationWindow: number of trailing iterates checked for a two-value cycle.
	OscillationWindow int
	// Rounding: iterates are compared on this grid when looking for a cycle.
	Rounding float64
	// Step: central-difference step h for Newton's derivative.
	Step float64
	// DiscontinuitySamples: interior points sampled by the FalsePosition pre-check.
	DiscontinuitySamples int
	// DiscontinuityJump: a jump between consecutive samples above this fails the pre-check.
	DiscontinuityJump float64
}

// DefaultLimits returns the thresholds used when no WithLimits option is given.
func DefaultLimits() SolverLimits {
	return SolverLimits{
		DerivativeZero:       DefaultDerivativeZero,
		FlatSlope:            DefaultFlatSlope,
		DivergenceBound:      DefaultDivergenceBound,
		OscillationWindow:    DefaultOscillationWindow,
		Rounding:             DefaultRounding,
		Step:                 DefaultStep,
		DiscontinuitySamples: DefaultDiscontinuitySamples,
		DiscontinuityJump:    DefaultDiscontinuityJump,
	}
}

// Option configures a solver call.
type Option func(*Options)

// Options is the resolved configuration of one solver call.
type Options struct {
	limits        SolverLimits
	discontinuity bool
}

// WithLimits replaces the solver thresholds.
//
// Panics:
//   - OscillationWindow < 3, Step <= 0, Rounding <= 0 or DiscontinuitySamples < 2.
func WithLimits(l SolverLimits) Option {
	switch {
	case l.OscillationWindow < 3:
		panic(panicLimitsWindow)
	case !(l.Step > 0) || !(l.Rounding > 0):
		panic(panicLimitsStep)
	case l.DiscontinuitySamples < 2:
		panic(panicLimitsSamples)
	}

	return func(o *Options) { o.limits = l }
}

// WithoutDiscontinuityCheck skips the FalsePosition sampling pre-check.
func WithoutDiscontinuityCheck() Option {
	return func(o *Options) { o.discontinuity = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{limits: DefaultLimits(), discontinuity: true}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
