// Package matrix is an exact-arithmetic matrix engine for small, pedagogical inputs.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of rational.Rat values (0×0 is legal), and the
//     read-only Matrix interface every kernel accepts.
//   - Structural kernels: Add, Sub, Sum, SubSeq, Mul, MulChain, Scale, Transpose.
//   - Elimination kernels built on one canonical partial-pivoting routine: RREF,
//     REF, Rank, Independent, Inverse and Solve (Gauss or Gauss-Jordan).
//   - Determinant with two interchangeable strategies (cofactor expansion and
//     elimination), Cramer's rule and the invertible matrix theorem (Invertibility).
//   - Companion text parsers: ParseText and ParseLinearSystem.
//
// Every kernel validates all operands before doing arithmetic, never mutates its
// inputs and returns a fresh *Dense. Pivot tests are exact; there are no tolerances.
// Shape violations match ErrDimensionMismatch through errors.Is.
//
// Any kernel accepts WithLog(NewLog()) to record a "show your work" trail of row
// operations and matrix snapshots. The log never influences the result.
package matrix
