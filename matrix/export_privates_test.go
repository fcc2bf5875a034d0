// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the internal Options and the Auto strategy
//     resolution to matrix_test ONLY (the file is compiled for tests only).
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// OptionsSnapshot is a stable, read-only view of Options for tests.
type OptionsSnapshot struct {
	HasLog        bool
	Determinant   DeterminantStrategy
	CofactorLimit int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		HasLog:        o.log != nil,
		Determinant:   o.determinant,
		CofactorLimit: o.cofactorLimit,
	}
}

// GatherOptionsSnapshot_TestOnly applies opts on top of the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// StrategyFor_TestOnly resolves the determinant strategy for order n.
func StrategyFor_TestOnly(n int, opts ...Option) DeterminantStrategy {
	return gatherOptions(opts...).strategyFor(n)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCofactorLimitInvalid_TestOnly = panicCofactorLimitInvalid
	PanicStrategyInvalid_TestOnly      = panicStrategyInvalid
)
