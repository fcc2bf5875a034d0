// SPDX-License-Identifier: MIT
// Package algebra: evaluating recursive-descent parser.
//
// Implementation:
//   - The parser evaluates while it descends; there is no intermediate tree
//     because an expression is evaluated exactly once.
//   - Every matrix operation goes through the matrix package kernels, so shape
//     checks and their sentinels are the same as for direct calls.
//
// Complexity:
//   - O(tokens) parsing plus the cost of the matrix kernels invoked.

package algebra

import (
	"fmt"

	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
)

// value is a scalar when m is nil, a matrix otherwise.
type value struct {
	s rational.Rat
	m *matrix.Dense
}

func scalar(r rational.Rat) value       { return value{s: r} }
func matrixValue(m *matrix.Dense) value { return value{m: m} }
func (v value) isMatrix() bool          { return v.m != nil }

// Eval evaluates expression against the named matrices in vars and returns
// the resulting matrix.
//
// Behavior highlights:
//   - vars is only read; the returned matrix never aliases an entry of vars,
//     even for an expression that is a bare name.
//   - Names are case-sensitive. "T" and "inv" are functions only when
//     followed by "(", so a matrix may still be bound to the name T.
//
// Errors:
//   - ErrSyntax, ErrUnknownName, ErrUnsupported, ErrNotMatrix (all wrap ErrExpression).
//   - matrix.ErrDimensionMismatch, matrix.ErrNonSquare, matrix.ErrSingular,
//     matrix.ErrRagged, matrix.ErrNilMatrix, rational.ErrDivisionByZero from evaluation.
//
// Example:
//
//	c, err := algebra.Eval("2*A - T(B)", map[string]*matrix.Dense{"A": a, "B": b})
func Eval(expression string, vars map[string]*matrix.Dense) (*matrix.Dense, error) {
	toks, err := tokenize(expression)
	if err != nil {
		return nil, evalErrorf(expression, err)
	}
	p := &parser{toks: toks, vars: vars}
	v, err := p.parse()
	if err != nil {
		return nil, evalErrorf(expression, err)
	}
	if !v.isMatrix() {
		return nil, evalErrorf(expression, fmt.Errorf("%w: result is the scalar %s", ErrNotMatrix, v.s))
	}

	return v.m, nil
}

type parser struct {
	toks []token
	i    int
	vars map[string]*matrix.Dense
}

func (p *parser) cur() token { return p.toks[p.i] }
func (p *parser) next()      { p.i++ }

func (p *parser) expect(kind tokenKind, what string) error {
	if t := p.cur(); t.kind != kind {
		return fmt.Errorf("%w: expected %s at offset %d", ErrSyntax, what, t.pos)
	}
	p.next()

	return nil
}

func (p *parser) parse() (value, error) {
	if p.cur().kind == tokEOF {
		return value{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	v, err := p.parseSum()
	if err != nil {
		return value{}, err
	}
	if t := p.cur(); t.kind != tokEOF {
		return value{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, t.text, t.pos)
	}

	return v, nil
}

func (p *parser) parseSum() (value, error) {
	left, err := p.parseProduct()
	if err != nil {
		return value{}, err
	}
	for p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		sub := p.cur().kind == tokMinus
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return value{}, err
		}
		if left, err = addValues(left, right, sub); err != nil {
			return value{}, err
		}
	}

	return left, nil
}

func (p *parser) parseProduct() (value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return value{}, err
	}
	for p.cur().kind == tokStar || p.cur().kind == tokSlash {
		div := p.cur().kind == tokSlash
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return value{}, err
		}
		if div {
			left, err = divValues(left, right)
		} else {
			left, err = mulValues(left, right)
		}
		if err != nil {
			return value{}, err
		}
	}

	return left, nil
}

func (p *parser) parseUnary() (value, error) {
	switch p.cur().kind {
	case tokPlus:
		p.next()
		return p.parseUnary()
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return value{}, err
		}
		return mulValues(scalar(rational.FromInt(-1)), v)
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (value, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber:
		p.next()
		r, err := rational.Parse(t.text)
		if err != nil {
			return value{}, fmt.Errorf("%w: bad number %q at offset %d", ErrSyntax, t.text, t.pos)
		}
		return scalar(r), nil
	case tokName:
		p.next()
		if p.cur().kind == tokLParen {
			return p.parseCall(t)
		}
		m, ok := p.vars[t.text]
		if !ok {
			return value{}, fmt.Errorf("%w: %q at offset %d", ErrUnknownName, t.text, t.pos)
		}
		if m == nil {
			return value{}, fmt.Errorf("%q: %w", t.text, matrix.ErrNilMatrix)
		}
		return matrixValue(m.Clone()), nil
	case tokLParen:
		p.next()
		v, err := p.parseSum()
		if err != nil {
			return value{}, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return value{}, err
		}
		return v, nil
	case tokLBracket:
		return p.parseList()
	case tokEOF:
		return value{}, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}

	return value{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, t.text, t.pos)
}

// parseCall evaluates T(x) or inv(x); the name token is already consumed.
func (p *parser) parseCall(name token) (value, error) {
	fn, ok := functions[name.text]
	if !ok {
		return value{}, fmt.Errorf("%w: function %q at offset %d", ErrUnsupported, name.text, name.pos)
	}
	p.next() // '('
	arg, err := p.parseSum()
	if err != nil {
		return value{}, err
	}
	if p.cur().kind == tokComma {
		return value{}, fmt.Errorf("%w: %s() takes one argument", ErrSyntax, name.text)
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return value{}, err
	}

	return fn(arg)
}

// parseList evaluates a literal list: [1,2,3] is a column vector,
// [[1,2],[3,4]] a matrix with one row per inner list.
func (p *parser) parseList() (value, error) {
	open := p.cur()
	p.next() // '['
	if p.cur().kind == tokRBracket {
		return value{}, fmt.Errorf("%w: empty list at offset %d", ErrSyntax, open.pos)
	}
	var rows [][]rational.Rat
	nested := p.cur().kind == tokLBracket
	for {
		if (p.cur().kind == tokLBracket) != nested {
			return value{}, fmt.Errorf("%w: list at offset %d mixes rows and numbers", ErrSyntax, open.pos)
		}
		if nested {
			row, err := p.parseRow()
			if err != nil {
				return value{}, err
			}
			rows = append(rows, row)
		} else {
			r, err := p.parseNumber()
			if err != nil {
				return value{}, err
			}
			rows = append(rows, []rational.Rat{r})
		}
		if p.cur().kind != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return value{}, err
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return value{}, err
	}

	return matrixValue(m), nil
}

// parseRow reads one inner list of numbers.
func (p *parser) parseRow() ([]rational.Rat, error) {
	open := p.cur()
	p.next() // '['
	if p.cur().kind == tokRBracket {
		return nil, fmt.Errorf("%w: empty row at offset %d", ErrSyntax, open.pos)
	}
	var row []rational.Rat
	for {
		if p.cur().kind == tokLBracket {
			return nil, fmt.Errorf("%w: lists nest at most two levels (offset %d)", ErrSyntax, p.cur().pos)
		}
		r, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		row = append(row, r)
		if p.cur().kind != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}

	return row, nil
}

// parseNumber evaluates a list entry, which may be any scalar expression ("1/3", "-2").
func (p *parser) parseNumber() (rational.Rat, error) {
	pos := p.cur().pos
	v, err := p.parseSum()
	if err != nil {
		return rational.Rat{}, err
	}
	if v.isMatrix() {
		return rational.Rat{}, fmt.Errorf("%w: list entry at offset %d is a matrix", ErrNotMatrix, pos)
	}

	return v.s, nil
}

// ---------- operations ----------

var functions = map[string]func(value) (value, error){
	"T":   transposeValue,
	"inv": inverseValue,
}

func addValues(a, b value, sub bool) (value, error) {
	switch {
	case !a.isMatrix() && !b.isMatrix():
		if sub {
			return scalar(a.s.Sub(b.s)), nil
		}
		return scalar(a.s.Add(b.s)), nil
	case a.isMatrix() && b.isMatrix():
		var m *matrix.Dense
		var err error
		if sub {
			m, err = matrix.Sub(a.m, b.m)
		} else {
			m, err = matrix.Add(a.m, b.m)
		}
		if err != nil {
			return value{}, err
		}
		return matrixValue(m), nil
	}

	return value{}, fmt.Errorf("%w: cannot add or subtract a scalar and a matrix", ErrUnsupported)
}

func mulValues(a, b value) (value, error) {
	var m *matrix.Dense
	var err error
	switch {
	case !a.isMatrix() && !b.isMatrix():
		return scalar(a.s.Mul(b.s)), nil
	case !a.isMatrix():
		m, err = matrix.Scale(b.m, a.s)
	case !b.isMatrix():
		m, err = matrix.Scale(a.m, b.s)
	default:
		m, err = matrix.Mul(a.m, b.m)
	}
	if err != nil {
		return value{}, err
	}

	return matrixValue(m), nil
}

func divValues(a, b value) (value, error) {
	if b.isMatrix() {
		return value{}, fmt.Errorf("%w: division by a matrix (use inv())", ErrUnsupported)
	}
	k, err := b.s.Inv()
	if err != nil {
		return value{}, err
	}

	return mulValues(a, scalar(k))
}

func transposeValue(v value) (value, error) {
	if !v.isMatrix() {
		return v, nil
	}
	m, err := matrix.Transpose(v.m)
	if err != nil {
		return value{}, err
	}

	return matrixValue(m), nil
}

func inverseValue(v value) (value, error) {
	if !v.isMatrix() {
		k, err := v.s.Inv()
		if err != nil {
			return value{}, err
		}
		return scalar(k), nil
	}
	m, err := matrix.Inverse(v.m)
	if err != nil {
		return value{}, err
	}

	return matrixValue(m), nil
}
