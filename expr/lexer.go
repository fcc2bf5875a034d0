// SPDX-License-Identifier: MIT
// Package expr: tokenizer and the canonical rewrite (Normalize).
//
// Purpose:
//   - Split a formula into tokens, rejecting non-formula syntax as early as possible.
//   - Rewrite the token stream into the canonical form the parser expects:
//     "**" becomes "^", omitted "*" are inserted, "sin x" becomes "sin(x)".

package expr

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// punctuation maps single-byte operators to their token kinds.
var punctuation = map[byte]tokenKind{
	'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash, '^': tokCaret,
	'(': tokLParen, ')': tokRParen, ',': tokComma,
}

// keywords are identifiers that only make sense in a general-purpose language.
var keywords = map[string]bool{
	"and": true, "or": true, "not": true, "if": true, "else": true, "for": true,
	"in": true, "while": true, "lambda": true, "import": true, "def": true,
	"class": true, "return": true, "is": true, "with": true, "from": true,
}

// tokenize scans s into tokens terminated by a tokEOF.
//
// Errors:
//   - ErrDisallowed for '=', '[', ']', '{', '}', ';', ':', quotes, a '.' that
//     does not start a number, and keywords.
//   - ErrSyntax for any other character outside the formula alphabet.
func tokenize(s string) ([]token, error) {
	var out []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
			continue
		case c == '*' && i+1 < len(s) && s[i+1] == '*':
			out = append(out, token{kind: tokCaret, text: "^", pos: i})
			i += 2
			continue
		}

		if kind, ok := punctuation[c]; ok {
			out = append(out, token{kind: kind, text: string(c), pos: i})
			i++
			continue
		}
		switch c {
		case '=':
			return nil, fmt.Errorf("%w: assignment at offset %d", ErrDisallowed, i)
		case '[', ']':
			return nil, fmt.Errorf("%w: subscript at offset %d", ErrDisallowed, i)
		case '{', '}', ';', ':', '"', '\'', '`':
			return nil, fmt.Errorf("%w: %q at offset %d", ErrDisallowed, c, i)
		}

		switch {
		case isIdentStart(rune(c)):
			start := i
			for i < len(s) && isIdentContinue(rune(s[i])) {
				i++
			}
			name := s[start:i]
			if keywords[name] {
				return nil, fmt.Errorf("%w: keyword %q", ErrDisallowed, name)
			}
			out = append(out, token{kind: tokIdent, text: name, pos: start})
		case c == '.' || (c >= '0' && c <= '9'):
			if c == '.' && (i+1 >= len(s) || s[i+1] < '0' || s[i+1] > '9') {
				return nil, fmt.Errorf("%w: attribute access at offset %d", ErrDisallowed, i)
			}
			end := scanNumber(s, i)
			out = append(out, token{kind: tokNumber, text: s[i:end], pos: i})
			i = end
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, c, i)
		}
	}
	out = append(out, token{kind: tokEOF, pos: len(s)})

	return out, nil
}

// scanNumber returns the end offset of the decimal literal starting at i:
// digits, an optional fraction and an exponent only when digits follow it,
// so "2e" stays the number 2 followed by the constant e.
func scanNumber(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

func isIdentStart(r rune) bool    { return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r)) }
func isIdentContinue(r rune) bool { return isIdentStart(r) || (r >= '0' && r <= '9') }

// Normalize returns the canonical text of formula, the form Compile parses.
//
// Rewrites:
//   - "**" becomes "^"; whitespace is dropped.
//   - "*" is inserted between a number, the variable, a constant or ")" on the
//     left and a name or "(" on the right, and between ")" and a number.
//   - A function name followed by a single atom (number, variable, constant)
//     becomes a call on that atom: "sin x" is "sin(x)".
//
// Errors:
//   - ErrDisallowed / ErrSyntax from the tokenizer (see tokenize).
func Normalize(formula string) (string, error) {
	toks, err := normalizeTokens(formula)
	if err != nil {
		return "", compileErrorf(formula, err)
	}
	return joinTokens(toks), nil
}

func joinTokens(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.text)
	}

	return b.String()
}

// normalizeTokens is Normalize on the token level; the result keeps its tokEOF.
func normalizeTokens(formula string) ([]token, error) {
	raw, err := tokenize(formula)
	if err != nil {
		return nil, err
	}

	out := make([]token, 0, len(raw)+4)
	for i := 0; i < len(raw); i++ {
		t := raw[i]
		if len(out) > 0 && impliesProduct(out[len(out)-1], t) {
			out = append(out, token{kind: tokStar, text: "*", pos: t.pos})
		}
		out = append(out, t)

		if isFunctionName(t) && i+1 < len(raw) && isAtom(raw[i+1]) {
			atom := raw[i+1]
			out = append(out,
				token{kind: tokLParen, text: "(", pos: atom.pos},
				atom,
				token{kind: tokRParen, text: ")", pos: atom.pos},
			)
			i++
		}
	}

	return out, nil
}

// impliesProduct reports whether an omitted "*" sits between left and right.
func impliesProduct(left, right token) bool {
	leftValue := left.kind == tokNumber || left.kind == tokRParen ||
		(left.kind == tokIdent && !isFunctionName(left))
	if !leftValue {
		return false
	}
	switch right.kind {
	case tokIdent, tokLParen:
		return true
	case tokNumber:
		return left.kind == tokRParen
	default:
		return false
	}
}

func isFunctionName(t token) bool {
	if t.kind != tokIdent {
		return false
	}
	_, ok := functions[t.text]

	return ok
}

func isAtom(t token) bool {
	return t.kind == tokNumber || (t.kind == tokIdent && !isFunctionName(t))
}
