// SPDX-License-Identifier: MIT
package worksheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/achitoo/CalculadoraLineal/roots"
	"gopkg.in/yaml.v3"
)

// decimalDigits is the number of fractional digits used for rational
// iteration values, which can carry very large denominators.
const decimalDigits = 15

// Report is the outcome of a worksheet run.
type Report struct {
	Results []Entry `yaml:"results"`
}

// Entry is the result of one task. Only the fields relevant to the op are set.
type Entry struct {
	Name       string      `yaml:"name"`
	Op         string      `yaml:"op"`
	Error      string      `yaml:"error,omitempty"`
	Matrix     [][]string  `yaml:"matrix,omitempty"`
	Value      string      `yaml:"value,omitempty"`
	Pivots     []int       `yaml:"pivots,omitempty"`
	Variables  []string    `yaml:"variables,omitempty"`
	Statements []string    `yaml:"statements,omitempty"`
	Root       string      `yaml:"root,omitempty"`
	Status     string      `yaml:"status,omitempty"`
	Reason     string      `yaml:"reason,omitempty"`
	Iterations []Iteration `yaml:"iterations,omitempty"`
	Steps      []Step      `yaml:"steps,omitempty"`
}

// Failed reports whether the task ended with an error.
func (e Entry) Failed() bool { return e.Error != "" }

// Iteration is one row of a root-finding table, values already formatted.
type Iteration struct {
	Index  int    `yaml:"i"`
	A      string `yaml:"a,omitempty"`
	FA     string `yaml:"fa,omitempty"`
	B      string `yaml:"b,omitempty"`
	FB     string `yaml:"fb,omitempty"`
	C      string `yaml:"c"`
	FC     string `yaml:"fc,omitempty"`
	Slope  string `yaml:"slope,omitempty"`
	Error  string `yaml:"error,omitempty"`
	Reason string `yaml:"reason,omitempty"`
}

// Step is one rendered entry of a matrix step log.
type Step struct {
	Label  string     `yaml:"label"`
	Text   string     `yaml:"text,omitempty"`
	Matrix [][]string `yaml:"matrix,omitempty"`
}

// Encode writes r to w as a YAML document.
func (r Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}

// Failures counts the entries that ended with an error.
func (r Report) Failures() int {
	n := 0
	for _, e := range r.Results {
		if e.Failed() {
			n++
		}
	}
	return n
}

func renderSteps(l *matrix.Log) []Step {
	steps := l.Steps()
	if len(steps) == 0 {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = Step{Label: s.Label, Text: s.Text}
		if s.Kind == matrix.StepSnapshot {
			out[i].Matrix = s.Matrix.Strings()
		}
	}
	return out
}

func formatRat(r rational.Rat) string { return r.Decimal(decimalDigits) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// ratTable renders the records of an exact (bracketing) run.
func ratTable(res roots.Result[rational.Rat]) []Iteration {
	out := make([]Iteration, len(res.Iterations))
	for i, it := range res.Iterations {
		out[i] = Iteration{
			Index:  it.Index,
			A:      formatRat(it.A),
			FA:     formatRat(it.FA),
			B:      formatRat(it.B),
			FB:     formatRat(it.FB),
			C:      formatRat(it.C),
			FC:     formatRat(it.FC),
			Error:  formatRat(it.Error),
			Reason: it.Reason,
		}
	}
	return out
}

// floatTable renders the records of an open-method run. Newton records keep
// the current iterate in A and the derivative in Slope; secant records keep
// both previous iterates in A and B.
func floatTable(res roots.Result[float64], secant bool) []Iteration {
	out := make([]Iteration, len(res.Iterations))
	for i, it := range res.Iterations {
		row := Iteration{
			Index:  it.Index,
			A:      formatFloat(it.A),
			FA:     formatFloat(it.FA),
			C:      formatFloat(it.C),
			FC:     formatFloat(it.FC),
			Slope:  formatFloat(it.Slope),
			Error:  formatFloat(it.Error),
			Reason: it.Reason,
		}
		if secant {
			row.B, row.FB = formatFloat(it.B), formatFloat(it.FB)
		}
		out[i] = row
	}
	return out
}
