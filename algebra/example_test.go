// SPDX-License-Identifier: MIT
package algebra_test

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/algebra"
	"github.com/achitoo/CalculadoraLineal/matrix"
)

func ExampleEval() {
	a, _ := matrix.NewFromInts([][]int64{{2, 1}, {1, 1}})
	b, _ := matrix.NewFromInts([][]int64{{1, 0}, {0, 3}})

	c, err := algebra.Eval("inv(A)*B - T(A)/2", map[string]*matrix.Dense{"A": a, "B": b})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Strings())
	// Output: [[0 -7/2] [-3/2 11/2]]
}
