// SPDX-License-Identifier: MIT

// Package worksheet runs batches of calculator tasks described in YAML.
//
// A worksheet lists tasks; each task names an operation (op) and carries its
// operands: matrices as rows of numeric strings, free text (dirty matrix text,
// a linear system or a matrix expression), a formula with an interval or
// seeds. Run executes the tasks concurrently and returns a Report holding one
// Entry per task, in worksheet order. A failing task records its error in its
// entry and does not stop the others.
package worksheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrTask reports a task whose operands do not fit its op.
	ErrTask = errors.New("worksheet: invalid task")

	// ErrUnknownOp reports an op outside the supported set.
	ErrUnknownOp = fmt.Errorf("%w: unknown op", ErrTask)
)

// Sheet is a decoded worksheet.
type Sheet struct {
	Tasks []Task `yaml:"tasks"`
}

// Task is one worksheet entry. Which fields are read depends on Op.
type Task struct {
	Name     string       `yaml:"name"`
	Op       string       `yaml:"op"`
	Matrices [][][]string `yaml:"matrices,omitempty"`
	// Names binds Matrices to expression names; A, B, C, ... by default.
	Names   []string `yaml:"names,omitempty"`
	Text    string   `yaml:"text,omitempty"`
	Formula string   `yaml:"formula,omitempty"`
	A       string   `yaml:"a,omitempty"`
	B       string   `yaml:"b,omitempty"`
	Tol     string   `yaml:"tol,omitempty"`
	MaxIter int      `yaml:"max_iter,omitempty"`
	Method  string   `yaml:"method,omitempty"`
}

// Load reads and decodes the worksheet at path.
func Load(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("read %s: %w", path, err)
	}
	sheet, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// Decode reads one YAML worksheet from r. Unknown keys are rejected, tasks
// without an op fail with ErrTask, and unnamed tasks are named "task-<n>".
func Decode(r io.Reader) (Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return Sheet{}, fmt.Errorf("%w: empty worksheet", ErrTask)
		}
		return Sheet{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	for i := range sheet.Tasks {
		t := &sheet.Tasks[i]
		if t.Name == "" {
			t.Name = fmt.Sprintf("task-%d", i+1)
		}
		if t.Op == "" {
			return Sheet{}, fmt.Errorf("%w: %s: missing op", ErrTask, t.Name)
		}
	}
	return sheet, nil
}
