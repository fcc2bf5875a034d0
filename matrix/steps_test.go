// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_NilIsNoop(t *testing.T) {
	t.Parallel()

	var l *matrix.Log
	assert.NotPanics(t, func() {
		l.Notef("x", "value %d", 1)
		l.Snapshot("x", MustIdentity(t, 2))
	})
	assert.Nil(t, l.Steps())
	assert.Zero(t, l.Len())
}

func TestLog_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	l := matrix.NewLog()
	m := MustIdentity(t, 2)
	l.Snapshot("before", m)
	require.NoError(t, m.Set(0, 0, rational.FromInt(9)))
	l.Notef("edit", "set (%d,%d)", 1, 1)

	steps := l.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, matrix.StepSnapshot, steps[0].Kind)
	assert.Equal(t, "[1, 0]\n[0, 1]\n", steps[0].Matrix.String())
	assert.Equal(t, matrix.StepNote, steps[1].Kind)
	assert.Equal(t, "set (1,1)", steps[1].Text)

	// Steps hands out a copy of the slice
	steps[1].Text = "changed"
	assert.Equal(t, "set (1,1)", l.Steps()[1].Text)
}

func TestStepKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "note", matrix.StepNote.String())
	assert.Equal(t, "snapshot", matrix.StepSnapshot.String())
	assert.Equal(t, "StepKind(7)", matrix.StepKind(7).String())
}
