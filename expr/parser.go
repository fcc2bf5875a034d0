// SPDX-License-Identifier: MIT
// Package expr: recursive-descent parser over normalised tokens.
//
// Grammar (one precedence level per function):
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("*" | "/") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]        // right-associative
//	primary = number | name | name "(" sum ")" | "(" sum ")"

package expr

import (
	"fmt"
	"math"

	"github.com/achitoo/CalculadoraLineal/rational"
)

type parser struct {
	toks []token
	i    int
	// depth counts open calls; a comma is legal only inside one.
	depth int
}

func (p *parser) cur() token { return p.toks[p.i] }
func (p *parser) next()      { p.i++ }

// parse consumes the whole token stream and returns the tree.
func (p *parser) parse() (node, error) {
	if p.cur().kind == tokEOF {
		return nil, fmt.Errorf("%w: empty formula", ErrSyntax)
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	switch t := p.cur(); t.kind {
	case tokEOF:
		return n, nil
	case tokComma:
		return nil, fmt.Errorf("%w: ',' outside a function call at offset %d", ErrDisallowed, t.pos)
	case tokRParen:
		return nil, fmt.Errorf("%w: unbalanced ')' at offset %d", ErrSyntax, t.pos)
	default:
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, t.text, t.pos)
	}
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		op := p.cur().text[0]
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().kind == tokStar || p.cur().kind == tokSlash {
		op := p.cur().text[0]
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}

	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur().kind == tokPlus || p.cur().kind == tokMinus {
		op := p.cur().text[0]
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			return x, nil
		}
		return negNode{x: x}, nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binaryNode{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber:
		p.next()
		v, err := rational.Parse(t.text)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrSyntax, t.text)
		}
		return numNode{r: v, f: v.Float64()}, nil

	case tokIdent:
		p.next()
		if fn, ok := functions[t.text]; ok {
			return p.parseCall(t, fn)
		}
		if t.text == variable {
			return varNode{}, nil
		}
		if c, ok := constants[t.text]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, t.text)

	case tokLParen:
		p.next()
		n, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur().kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' at offset %d", ErrSyntax, p.cur().pos)
		}
		p.next()
		return n, nil

	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of formula", ErrSyntax)

	case tokComma:
		if p.depth == 0 {
			return nil, fmt.Errorf("%w: ',' outside a function call at offset %d", ErrDisallowed, t.pos)
		}
	}

	return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, t.text, t.pos)
}

// parseCall parses "(" args ")" after a function name; every function is unary.
func (p *parser) parseCall(name token, fn function) (node, error) {
	if p.cur().kind != tokLParen {
		return nil, fmt.Errorf("%w: function %s needs an argument", ErrSyntax, name.text)
	}
	p.next()
	p.depth++
	defer func() { p.depth-- }()

	var args []node
	if p.cur().kind != tokRParen {
		for {
			a, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.cur().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if p.cur().kind != tokRParen {
		return nil, fmt.Errorf("%w: expected ')' after arguments of %s at offset %d", ErrSyntax, name.text, p.cur().pos)
	}
	p.next()
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrArity, name.text, len(args))
	}

	return callNode{name: name.text, fn: fn, arg: args[0]}, nil
}

// variable is the only free variable of a formula.
const variable = "x"

// constants are the named values a formula may reference.
var constants = map[string]numNode{
	"pi": mustConst(math.Pi),
	"e":  mustConst(math.E),
}

func mustConst(f float64) numNode {
	r, err := rational.FromFloat(f)
	if err != nil {
		panic(err)
	}

	return numNode{r: r, f: f}
}
