// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertibility(t *testing.T) {
	t.Parallel()

	c, err := matrix.Invertibility(MustInts(t, fixA3))
	require.NoError(t, err)
	assert.True(t, c.Invertible())
	assert.Equal(t, 3, c.Order)
	assert.Equal(t, 3, c.Rank)
	for _, s := range c.Statements() {
		assert.Truef(t, s.Holds, "statement %s", s.Key)
	}

	c, err = matrix.Invertibility(MustInts(t, fixSingular3))
	require.NoError(t, err)
	assert.False(t, c.Invertible())
	assert.Equal(t, 2, c.Rank)
	for _, s := range c.Statements() {
		assert.Falsef(t, s.Holds, "statement %s", s.Key)
	}
}

func TestInvertibility_NonSquareAndEmpty(t *testing.T) {
	t.Parallel()

	for _, m := range []*matrix.Dense{MustInts(t, fixRect34), MustIdentity(t, 0)} {
		c, err := matrix.Invertibility(m)
		require.NoError(t, err)
		assert.Equal(t, matrix.Characterizations{}, c)
		assert.False(t, c.Invertible())
	}

	_, err := matrix.Invertibility(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCharacterizations_StatementsOrder(t *testing.T) {
	t.Parallel()

	st := matrix.Characterizations{}.Statements()
	require.Len(t, st, 12)
	keys := make([]string, len(st))
	for i, s := range st {
		keys[i] = s.Key
		assert.NotEmpty(t, s.Text)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}, keys)
	assert.Equal(t, "Aᵀ is an invertible matrix", st[11].Text)
}
