// SPDX-License-Identifier: MIT
package expr_test

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/expr"
	"github.com/achitoo/CalculadoraLineal/rational"
)

// ExampleCompile evaluates the same formula exactly and in float64.
func ExampleCompile() {
	e, err := expr.Compile("x^2 - 2x + 1/3")
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := e.Rational()(rational.New(1, 2))
	fmt.Println(e)
	fmt.Println(v)
	fmt.Printf("%.4f\n", e.Float()(0.5))
	// Output:
	// x^2-2*x+1/3
	// -5/12
	// -0.4167
}

// ExampleSample builds a plotting grid; invalid samples come back as NaN.
func ExampleSample() {
	xs, ys, _ := expr.Sample(expr.MustCompile("sqrt x"), -1, 1, 3)
	fmt.Println(xs, ys)
	// Output:
	// [-1 0 1] [NaN 0 1]
}
