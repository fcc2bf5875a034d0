// SPDX-License-Identifier: MIT

// Package matrix - step log ("show your work") for elimination kernels.
//
// Purpose:
//   - Record, in execution order, every structural action of a kernel (row swap,
//     row scale, row combination) and labelled snapshots of intermediate matrices.
//
// Behavior highlights:
//   - A nil *Log is a valid sink: every method is a no-op, so kernels call it unconditionally.
//   - Snapshots store a clone; later kernel work never alters recorded matrices.
//   - Logging is observational only; it never changes a numeric result.
//
// AI-Hints:
//   - Create one Log per call (NewLog) and pass it with WithLog; the caller owns it after return.
//   - A Log is not safe for concurrent use; concurrent kernels need separate logs.

package matrix

import "fmt"

// StepKind distinguishes narration from matrix snapshots.
type StepKind int

const (
	// StepNote is a labelled line of narration.
	StepNote StepKind = iota
	// StepSnapshot is a labelled copy of a whole matrix.
	StepSnapshot
)

// String returns "note" or "snapshot".
func (k StepKind) String() string {
	switch k {
	case StepNote:
		return "note"
	case StepSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is a single log entry. Matrix is set only for StepSnapshot.
type Step struct {
	Kind   StepKind
	Label  string
	Text   string
	Matrix *Dense
}

// Log is an append-only, ordered sequence of steps.
type Log struct {
	steps []Step
}

// NewLog returns an empty log.
func NewLog() *Log { return &Log{} }

// Notef appends a narration step; the text is built with fmt.Sprintf.
func (l *Log) Notef(label, format string, args ...any) {
	if l == nil {
		return
	}
	l.steps = append(l.steps, Step{Kind: StepNote, Label: label, Text: fmt.Sprintf(format, args...)})
}

// Snapshot appends a labelled copy of m.
func (l *Log) Snapshot(label string, m *Dense) {
	if l == nil || m == nil {
		return
	}
	l.steps = append(l.steps, Step{Kind: StepSnapshot, Label: label, Matrix: m.Clone()})
}

// Steps returns a copy of the recorded steps (nil for a nil log).
func (l *Log) Steps() []Step {
	if l == nil {
		return nil
	}
	out := make([]Step, len(l.steps))
	copy(out, l.steps)

	return out
}

// Len returns the number of recorded steps.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}

	return len(l.steps)
}
