// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The step log is the only per-call output channel; it is attached with WithLog.
//   - Determinant strategy selection lives here so that callers can pin a strategy
//     for teaching (Cofactor) or for larger inputs (Elimination).
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCofactorLimit is the largest order for which Auto uses cofactor expansion.
	// Cofactor expansion is O(n!); above this order Auto switches to elimination.
	DefaultCofactorLimit = 8

	// DefaultDeterminant is the strategy used when no WithDeterminant option is given.
	DefaultDeterminant = Auto
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCofactorLimitInvalid = "matrix: WithCofactorLimit: limit must be >= 1"
	panicStrategyInvalid      = "matrix: WithDeterminant: unknown strategy"
)

// DeterminantStrategy selects the determinant algorithm.
type DeterminantStrategy int

const (
	// Auto uses Cofactor up to the cofactor limit and Elimination above it.
	Auto DeterminantStrategy = iota
	// Cofactor is recursive expansion along row 0 (zero entries skipped).
	Cofactor
	// Elimination is Gaussian elimination with sign tracking on row swaps.
	Elimination
)

// String returns the lower-case strategy name.
func (s DeterminantStrategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Cofactor:
		return "cofactor"
	case Elimination:
		return "elimination"
	default:
		return fmt.Sprintf("DeterminantStrategy(%d)", int(s))
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	log           *Log                // nil ⇒ no logging
	determinant   DeterminantStrategy // DefaultDeterminant
	cofactorLimit int                 // DefaultCofactorLimit
}

// WithLog attaches a step log. A nil log disables logging.
//
// Notes:
//   - The log is observational; results are identical with and without it.
func WithLog(l *Log) Option {
	return func(o *Options) { o.log = l }
}

// WithDeterminant pins the determinant strategy.
//
// Errors:
//   - Panics with a stable message for values outside Auto/Cofactor/Elimination.
func WithDeterminant(s DeterminantStrategy) Option {
	if s < Auto || s > Elimination {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.determinant = s }
}

// WithCofactorLimit sets the largest order for which Auto picks cofactor expansion.
//
// Errors:
//   - Panics with a stable message when limit < 1.
//
// AI-Hints:
//   - Orders above ~10 make cofactor expansion noticeably slow; keep the limit small.
func WithCofactorLimit(limit int) Option {
	if limit < 1 {
		panic(panicCofactorLimitInvalid)
	}

	return func(o *Options) { o.cofactorLimit = limit }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		determinant:   DefaultDeterminant,
		cofactorLimit: DefaultCofactorLimit,
	}
}

// gatherOptions applies user setters in order on top of the defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// strategyFor resolves Auto against the order n.
func (o Options) strategyFor(n int) DeterminantStrategy {
	if o.determinant != Auto {
		return o.determinant
	}
	if n <= o.cofactorLimit {
		return Cofactor
	}

	return Elimination
}
