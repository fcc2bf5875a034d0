// SPDX-License-Identifier: MIT
// Package rational_test covers parsing, arithmetic and formatting of Rat.

package rational_test

import (
	"math"
	"testing"

	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want rational.Rat
	}{
		{"3", rational.FromInt(3)},
		{" -7 ", rational.FromInt(-7)},
		{"0.25", rational.New(1, 4)},
		{".5", rational.New(1, 2)},
		{"-1/2", rational.New(-1, 2)},
		{"6/4", rational.New(3, 2)},
		{"1e-3", rational.New(1, 1000)},
		{"2.5E2", rational.FromInt(250)},
		{"0.1/0.3", rational.New(1, 3)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := rational.Parse(tc.in)
			require.NoError(t, err)
			assert.Truef(t, got.Equal(tc.want), "Parse(%q) = %s, want %s", tc.in, got, tc.want)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "1/2/3", "0x10", "1..2", "--1", "/3", "e"} {
		_, err := rational.Parse(in)
		assert.ErrorIsf(t, err, rational.ErrSyntax, "input %q", in)
	}
	_, err := rational.Parse("5/0")
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestZeroValueIsZero(t *testing.T) {
	t.Parallel()

	var z rational.Rat
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.True(t, z.Add(rational.One()).IsOne())
	assert.Equal(t, 0, z.Sign())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := rational.New(1, 3)
	b := rational.New(1, 6)

	assert.Equal(t, "1/2", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/18", a.Mul(b).String())
	q, err := a.Quo(b)
	require.NoError(t, err)
	assert.Equal(t, "2", q.String())
	assert.Equal(t, "-1/3", a.Neg().String())
	assert.Equal(t, "1/3", a.Neg().Abs().String())

	inv, err := a.Inv()
	require.NoError(t, err)
	assert.Equal(t, "3", inv.String())

	_, err = a.Quo(rational.Zero())
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
	_, err = rational.Zero().Inv()
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestImmutability(t *testing.T) {
	t.Parallel()

	a := rational.New(2, 5)
	_ = a.Add(rational.One())
	_ = a.Mul(rational.FromInt(10))
	assert.Equal(t, "2/5", a.String())

	b := a.Big()
	b.SetInt64(99)
	assert.Equal(t, "2/5", a.String())
}

func TestPowInt(t *testing.T) {
	t.Parallel()

	r := rational.New(-2, 3)
	p, err := r.PowInt(3)
	require.NoError(t, err)
	assert.Equal(t, "-8/27", p.String())

	p, err = r.PowInt(-2)
	require.NoError(t, err)
	assert.Equal(t, "9/4", p.String())

	p, err = rational.Zero().PowInt(0)
	require.NoError(t, err)
	assert.True(t, p.IsOne())

	_, err = rational.Zero().PowInt(-1)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestFromFloat(t *testing.T) {
	t.Parallel()

	r, err := rational.FromFloat(0.1)
	require.NoError(t, err)
	assert.Equal(t, "1/10", r.String())

	r, err = rational.FromFloat(-2.5)
	require.NoError(t, err)
	assert.Equal(t, "-5/2", r.String())

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = rational.FromFloat(f)
		assert.ErrorIs(t, err, rational.ErrNotFinite)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a, b := rational.New(-3, 4), rational.New(1, 2)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, a.CmpAbs(b))
	assert.True(t, rational.Max(a, b).Equal(b))
	assert.True(t, rational.New(4, 2).IsInt())
	assert.False(t, b.IsInt())
	assert.True(t, rational.New(7, 7).IsOne())
	assert.False(t, rational.FromInt(-1).IsOne())
	assert.False(t, rational.MustParse("100000000000000000000001").IsOne())
	assert.InDelta(t, -0.75, a.Float64(), 0)
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.3333", rational.New(1, 3).Decimal(4))
	assert.Equal(t, "0.5", rational.New(1, 2).Decimal(4))
	assert.Equal(t, "-2", rational.FromInt(-2).Decimal(4))
	assert.Equal(t, "1", rational.New(99999, 100000).Decimal(3))
	assert.Equal(t, "0", rational.New(-1, 100000).Decimal(3))
}

func TestDyadic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		k    uint
		want string
	}{
		{"1/3", 2, "1/4"},
		{"-1/3", 2, "-1/4"},
		{"3/8", 2, "1/2"},
		{"-3/8", 2, "-1/2"},
		{"5/2", 0, "3"},
		{"3/8", 3, "3/8"},
		{"7", 4, "7"},
		{"2/3", 10, "683/1024"},
	}
	for _, tc := range tests {
		got := rational.MustParse(tc.in).Dyadic(tc.k)
		assert.Equal(t, tc.want, got.String(), "%s at 2^-%d", tc.in, tc.k)
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	var r rational.Rat
	require.NoError(t, r.UnmarshalText([]byte("-7/21")))
	b, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-1/3", string(b))
	assert.ErrorIs(t, r.UnmarshalText([]byte("x")), rational.ErrSyntax)
}
