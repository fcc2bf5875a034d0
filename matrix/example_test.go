// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/matrix"
)

// ExampleSolve solves a 2×2 system exactly and prints the solution column.
func ExampleSolve() {
	sys, err := matrix.ParseLinearSystem("2x + y = 3\nx + 3y = 5")
	if err != nil {
		fmt.Println(err)
		return
	}
	sol, err := matrix.Solve(sys.A, sys.B, matrix.GaussJordan)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Kind, sys.Variables)
	fmt.Print(sol.X)
	// Output:
	// unique [x y]
	// [4/5]
	// [7/5]
}

// ExampleDeterminant compares the two exact strategies.
func ExampleDeterminant() {
	a, _ := matrix.NewFromStrings([][]string{{"1/2", "1/3"}, {"1/4", "1/5"}})
	byCofactor, _ := matrix.Determinant(a, matrix.WithDeterminant(matrix.Cofactor))
	byElimination, _ := matrix.Determinant(a, matrix.WithDeterminant(matrix.Elimination))
	fmt.Println(byCofactor, byElimination)
	// Output:
	// 1/60 1/60
}

// ExampleRREF shows the reduced form and pivot columns of a rank-deficient matrix.
func ExampleRREF() {
	m, _ := matrix.NewFromInts([][]int64{{1, 2, 1, 4}, {2, 4, 0, 6}, {3, 6, 1, 10}})
	r, pivots, _ := matrix.RREF(m)
	fmt.Print(r)
	fmt.Println("pivots:", pivots)
	// Output:
	// [1, 2, 0, 3]
	// [0, 0, 1, 1]
	// [0, 0, 0, 0]
	// pivots: [0 2]
}

// ExampleInvertibility lists the equivalent statements for a singular matrix.
func ExampleInvertibility() {
	m, _ := matrix.NewFromInts([][]int64{{1, 2}, {2, 4}})
	c, _ := matrix.Invertibility(m)
	fmt.Println("rank", c.Rank, "invertible", c.Invertible())
	// Output:
	// rank 1 invertible false
}
