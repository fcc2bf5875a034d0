// SPDX-License-Identifier: MIT

// Package matrix - companion text parsers.
//
// Purpose:
//   - ParseText turns loosely formatted pasted text into a matrix: each non-empty
//     line is a row, every integer, decimal or a/b fraction token on it is a cell.
//   - ParseLinearSystem turns "x + 3y = 7" style lines into (A, b, variables).
//
// Notes:
//   - Variable order is x,y,z (or x,y) when the detected set is exactly that,
//     alphabetical otherwise.
//   - Both parsers return exact rationals; nothing goes through float64.

package matrix

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/achitoo/CalculadoraLineal/rational"
)

var (
	// numberToken matches 3, -2.5, .5, +7, 3/4, -1/2 (fraction parts may be decimal).
	numberToken = regexp.MustCompile(`[+-]?(?:\d+\.?\d*|\.\d+)(?:/(?:\d+\.?\d*|\.\d+))?`)

	// termToken is one "<coefficient><variable>" term of a linear equation.
	termToken = regexp.MustCompile(`([+-]?\d*\.?\d*)([a-zA-Z]+)`)
)

// ParseText extracts numeric tokens line by line. Lines without numbers are ignored.
//
// Errors:
//   - ErrParse when no line holds a number.
//   - ErrRagged when rows have different lengths.
//   - rational.ErrDivisionByZero for tokens like "3/0".
func ParseText(s string) (*Dense, error) {
	var rows [][]rational.Rat
	for _, line := range strings.Split(s, "\n") {
		toks := numberToken.FindAllString(line, -1)
		if len(toks) == 0 {
			continue
		}
		row := make([]rational.Rat, 0, len(toks))
		for _, tok := range toks {
			v, err := rational.Parse(tok)
			if err != nil {
				return nil, matrixErrorf(opParseText, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, matrixErrorf(opParseText, ErrParse)
	}
	m, err := NewFromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opParseText, err)
	}

	return m, nil
}

// LinearSystem is the parsed form of a system of linear equations.
type LinearSystem struct {
	A         *Dense   // m×n coefficients
	B         *Dense   // m×1 right-hand side
	Variables []string // column order of A
}

// canonicalOrders are used when the detected variable set matches exactly.
var canonicalOrders = [][]string{{"x", "y", "z"}, {"x", "y"}}

// orderVariables returns the column order for the detected variable set.
func orderVariables(set map[string]bool) []string {
	for _, order := range canonicalOrders {
		if len(order) != len(set) {
			continue
		}
		match := true
		for _, v := range order {
			if !set[v] {
				match = false
				break
			}
		}
		if match {
			return append([]string(nil), order...)
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// ParseLinearSystem parses one equation per non-empty line, e.g.
//
//	x + 3y = 7
//	5x - y = 3
//
// Coefficients may be integers, decimals, empty (1) or a bare sign (±1); a "*"
// between coefficient and variable is accepted. Repeated variables on one line add up.
//
// Errors:
//   - ErrParse for empty input, a line without "=", a line without variables,
//     or a right-hand side that is not a number.
func ParseLinearSystem(s string) (LinearSystem, error) {
	type equation struct {
		lhs string
		rhs rational.Rat
	}
	var eqs []equation
	set := make(map[string]bool)
	for n, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		left, right, ok := strings.Cut(line, "=")
		if !ok {
			return LinearSystem{}, matrixErrorf(opParseSystem, fmt.Errorf("line %d: missing '=': %w", n+1, ErrParse))
		}
		lhs := strings.NewReplacer(" ", "", "\t", "", "*", "").Replace(left)
		rhs, err := rational.Parse(right)
		if err != nil {
			return LinearSystem{}, matrixErrorf(opParseSystem, fmt.Errorf("line %d: right-hand side: %w: %w", n+1, ErrParse, err))
		}
		terms := termToken.FindAllStringSubmatch(lhs, -1)
		if len(terms) == 0 {
			return LinearSystem{}, matrixErrorf(opParseSystem, fmt.Errorf("line %d: no variables: %w", n+1, ErrParse))
		}
		for _, t := range terms {
			set[t[2]] = true
		}
		eqs = append(eqs, equation{lhs: lhs, rhs: rhs})
	}
	if len(eqs) == 0 {
		return LinearSystem{}, matrixErrorf(opParseSystem, ErrParse)
	}

	vars := orderVariables(set)
	col := make(map[string]int, len(vars))
	for j, v := range vars {
		col[v] = j
	}
	a := newDenseUnchecked(len(eqs), len(vars))
	b := newDenseUnchecked(len(eqs), 1)
	for i, eq := range eqs {
		for _, t := range termToken.FindAllStringSubmatch(eq.lhs, -1) {
			raw := t[1]
			switch raw {
			case "", "+":
				raw = "1"
			case "-":
				raw = "-1"
			}
			c, err := rational.Parse(raw)
			if err != nil {
				return LinearSystem{}, matrixErrorf(opParseSystem, fmt.Errorf("equation %d: coefficient %q: %w", i+1, t[1], ErrParse))
			}
			k := i*a.c + col[t[2]]
			a.data[k] = a.data[k].Add(c)
		}
		b.data[i] = eq.rhs
	}

	return LinearSystem{A: a, B: b, Variables: vars}, nil
}
