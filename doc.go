// Package calculadoralineal is an exact linear-algebra workbench: matrices of
// rationals, step-by-step elimination, matrix expressions and numeric root
// finders behind a single worksheet-driven CLI.
//
// What is inside?
//
//	Everything below the root is an independent package:
//		• rational/ – exact arbitrary-precision fractions (parse, format, arithmetic)
//		• matrix/   – Dense rational matrices, RREF/REF, rank, inverse, solve,
//		              determinants, Cramer, the invertible matrix theorem and
//		              a recorded step log of every row operation
//		• expr/     – single-variable formula language (implicit products, ^, sin, ln…)
//		• roots/    – bisection and false position (exact), Newton and secant (float64)
//		• algebra/  – matrix expressions such as "inv(A)*B - T(A)/2"
//
//	Supporting code lives in internal/ (configuration, YAML worksheets with a
//	bounded worker pool) and cmd/calclineal (the CLI).
//
// Why exact?
//
//   - No rounding drift: 1/3 stays 1/3 through every pivot
//   - Singularity is decided by a true zero, not by a tolerance
//   - Steps print as the fractions a student writes on paper
//
// Quick example:
//
//	a, _ := matrix.NewFromInts([][]int64{{2, 1}, {1, 3}})
//	inv, _ := matrix.Inverse(a)
//	fmt.Println(inv.Strings()) // [[3/5 -1/5] [-1/5 2/5]]
//
// Run a worksheet:
//
//	go run ./cmd/calclineal -steps worksheet.yaml
package calculadoralineal
