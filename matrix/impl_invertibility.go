// SPDX-License-Identifier: MIT

package matrix

// Characterizations holds the twelve equivalent statements (a–l) of the
// invertible matrix theorem evaluated for one matrix. For a square A of order n
// they all hold exactly when rank(A) == n; L is computed independently from
// rank(Aᵀ). Every statement is false for non-square or empty input.
type Characterizations struct {
	Order int // n for square input, 0 otherwise
	Rank  int // rank(A) (computed for square, non-empty input only)

	A, B, C, D, E, F, G, H, I, J, K, L bool
}

// Statement is one line of the theorem with its truth value.
type Statement struct {
	Key   string
	Text  string
	Holds bool
}

// theorem lists the statements in order; Text is rendered for an n×n A.
var theorem = [12]struct{ key, text string }{
	{"a", "A is invertible"},
	{"b", "A is row equivalent to the n×n identity matrix"},
	{"c", "A has n pivot positions"},
	{"d", "the equation Ax = 0 has only the trivial solution"},
	{"e", "the columns of A form a linearly independent set"},
	{"f", "the linear transformation x ↦ Ax is one-to-one"},
	{"g", "the equation Ax = b has at least one solution for each b in Rⁿ"},
	{"h", "the columns of A span Rⁿ"},
	{"i", "the linear transformation x ↦ Ax maps Rⁿ onto Rⁿ"},
	{"j", "there is an n×n matrix C such that CA = I"},
	{"k", "there is an n×n matrix D such that AD = I"},
	{"l", "Aᵀ is an invertible matrix"},
}

// Statements returns the twelve statements in theorem order.
func (c Characterizations) Statements() []Statement {
	vals := [12]bool{c.A, c.B, c.C, c.D, c.E, c.F, c.G, c.H, c.I, c.J, c.K, c.L}
	out := make([]Statement, len(theorem))
	for i, t := range theorem {
		out[i] = Statement{Key: t.key, Text: t.text, Holds: vals[i]}
	}

	return out
}

// Invertible reports whether every statement holds.
func (c Characterizations) Invertible() bool {
	for _, s := range c.Statements() {
		if !s.Holds {
			return false
		}
	}

	return true
}

// Invertibility evaluates the invertible matrix theorem for m via rank.
//
// Implementation:
//   - Stage 1: non-square or 0×0 input ⇒ all false, no error.
//   - Stage 2: RREF(m) gives the rank and the pivot count (the log, if any, records it).
//   - Stage 3: rank(mᵀ) decides statement l.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Invertibility").
func Invertibility(m Matrix, opts ...Option) (Characterizations, error) {
	if err := ValidateNotNil(m); err != nil {
		return Characterizations{}, matrixErrorf(opInvertible, err)
	}
	n := m.Rows()
	if n != m.Cols() || n == 0 {
		return Characterizations{}, nil
	}
	rank, _, pivots, err := Rank(m, opts...)
	if err != nil {
		return Characterizations{}, matrixErrorf(opInvertible, err)
	}
	t, err := Transpose(m)
	if err != nil {
		return Characterizations{}, matrixErrorf(opInvertible, err)
	}
	rankT, _, _, err := Rank(t)
	if err != nil {
		return Characterizations{}, matrixErrorf(opInvertible, err)
	}

	inv := rank == n
	return Characterizations{
		Order: n,
		Rank:  rank,
		A:     inv,
		B:     inv,
		C:     len(pivots) == n,
		D:     inv,
		E:     inv,
		F:     inv,
		G:     inv,
		H:     inv,
		I:     inv,
		J:     inv,
		K:     inv,
		L:     rankT == n,
	}, nil
}
