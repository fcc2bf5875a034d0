// SPDX-License-Identifier: MIT
// Package algebra: tokenizer for matrix expressions.

package algebra

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokName
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokComma
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

var punctuation = map[byte]tokenKind{
	'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash,
	'(': tokLParen, ')': tokRParen, '[': tokLBracket, ']': tokRBracket, ',': tokComma,
}

// multiplication signs accepted besides '*'.
var timesSigns = strings.NewReplacer("×", "*", "·", "*")

// tokenize scans s into tokens terminated by a tokEOF.
//
// Errors:
//   - ErrUnsupported for '^' and "**" (powers are not part of the language).
//   - ErrSyntax for any other character outside the alphabet.
func tokenize(s string) ([]token, error) {
	s = timesSigns.Replace(s)
	var out []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '^' || strings.HasPrefix(s[i:], "**"):
			return nil, fmt.Errorf("%w: power operator at offset %d", ErrUnsupported, i)
		case punctuation[c] != tokEOF:
			out = append(out, token{kind: punctuation[c], text: s[i : i+1], pos: i})
			i++
		case (c >= '0' && c <= '9') || c == '.':
			end := scanNumber(s, i)
			if end == i+1 && c == '.' {
				return nil, fmt.Errorf("%w: stray '.' at offset %d", ErrSyntax, i)
			}
			out = append(out, token{kind: tokNumber, text: s[i:end], pos: i})
			i = end
		case isNameStart(rune(c)):
			j := i + 1
			for j < len(s) && isNameContinue(rune(s[j])) {
				j++
			}
			out = append(out, token{kind: tokName, text: s[i:j], pos: i})
			i = j
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, r, i)
		}
	}
	out = append(out, token{kind: tokEOF, pos: len(s)})

	return out, nil
}

// scanNumber returns the end offset of the decimal literal starting at i.
// An exponent is consumed only when digits follow it.
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

func isNameStart(r rune) bool    { return r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r)) }
func isNameContinue(r rune) bool { return isNameStart(r) || (r >= '0' && r <= '9') }
