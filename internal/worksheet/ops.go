// SPDX-License-Identifier: MIT
package worksheet

import (
	"fmt"
	"strconv"

	"github.com/achitoo/CalculadoraLineal/algebra"
	"github.com/achitoo/CalculadoraLineal/matrix"
	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/achitoo/CalculadoraLineal/roots"
)

// Supported ops.
const (
	OpAdd           = "add"
	OpSub           = "sub"
	OpSum           = "sum"
	OpSubSeq        = "subseq"
	OpMul           = "mul"
	OpChain         = "chain"
	OpTranspose     = "transpose"
	OpRREF          = "rref"
	OpRank          = "rank"
	OpDeterminant   = "determinant"
	OpInverse       = "inverse"
	OpCramer        = "cramer"
	OpSolve         = "solve"
	OpInvertibility = "invertibility"
	OpIndependence  = "independence"
	OpExpression    = "expression"
	OpBisection     = "bisection"
	OpFalsePosition = "falseposition"
	OpNewton        = "newton"
	OpSecant        = "secant"
	OpParseSystem   = "parse-system"
	OpParseMatrix   = "parse-matrix"
	OpMultipliable  = "multipliable"
)

// Defaults fill root-finding fields a task leaves empty.
type Defaults struct {
	Tol     string
	MaxIter int
}

// taskEnv is the per-task state shared by the op handlers.
type taskEnv struct {
	defaults Defaults
	log      *matrix.Log // nil unless steps were requested
}

type opFunc func(t Task, env taskEnv, e *Entry) error

var ops = map[string]opFunc{
	OpAdd:           binaryOp(matrix.Add),
	OpSub:           binaryOp(matrix.Sub),
	OpMul:           binaryOp(matrix.Mul),
	OpCramer:        binaryOp(matrix.Cramer),
	OpSum:           naryOp(matrix.Sum),
	OpSubSeq:        naryOp(matrix.SubSeq),
	OpChain:         naryOp(matrix.MulChain),
	OpTranspose:     runTranspose,
	OpRREF:          runRREF,
	OpRank:          runRank,
	OpDeterminant:   runDeterminant,
	OpInverse:       runInverse,
	OpSolve:         runSolve,
	OpInvertibility: runInvertibility,
	OpIndependence:  runIndependence,
	OpExpression:    runExpression,
	OpBisection:     bracketingOp(roots.Bisection),
	OpFalsePosition: bracketingOp(roots.FalsePosition),
	OpNewton:        runNewton,
	OpSecant:        runSecant,
	OpParseSystem:   runParseSystem,
	OpParseMatrix:   runParseMatrix,
	OpMultipliable:  runMultipliable,
}

// Ops returns the supported op names (unordered).
func Ops() []string {
	out := make([]string, 0, len(ops))
	for name := range ops {
		out = append(out, name)
	}
	return out
}

// runTask executes t and returns its entry; errors are recorded, not returned.
func runTask(t Task, defaults Defaults, steps bool) Entry {
	e := Entry{Name: t.Name, Op: t.Op}
	fn, ok := ops[t.Op]
	if !ok {
		e.Error = fmt.Errorf("%w: %q", ErrUnknownOp, t.Op).Error()
		return e
	}
	env := taskEnv{defaults: defaults}
	if steps {
		env.log = matrix.NewLog()
	}
	if err := fn(t, env, &e); err != nil {
		e.Error = err.Error()
	}
	e.Steps = renderSteps(env.log)
	return e
}

// ---------- operand helpers ----------

// operands decodes the task matrices. Without matrices, a non-empty Text is
// parsed as a single dirty-text matrix.
func operands(t Task) ([]*matrix.Dense, error) {
	if len(t.Matrices) == 0 && t.Text != "" {
		m, err := matrix.ParseText(t.Text)
		if err != nil {
			return nil, err
		}
		return []*matrix.Dense{m}, nil
	}
	out := make([]*matrix.Dense, len(t.Matrices))
	for i, rows := range t.Matrices {
		m, err := matrix.NewFromStrings(rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i+1, err)
		}
		out[i] = m
	}
	return out, nil
}

// exactly returns the operands when there are exactly n of them.
func exactly(t Task, n int) ([]*matrix.Dense, error) {
	ms, err := operands(t)
	if err != nil {
		return nil, err
	}
	if len(ms) != n {
		return nil, fmt.Errorf("%w: %s needs %d matrices, got %d", ErrTask, t.Op, n, len(ms))
	}
	return ms, nil
}

func asMatrices(ms []*matrix.Dense) []matrix.Matrix {
	out := make([]matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m
	}
	return out
}

func (env taskEnv) opts() []matrix.Option { return []matrix.Option{matrix.WithLog(env.log)} }

// ---------- matrix ops ----------

func binaryOp(f func(a, b matrix.Matrix, o ...matrix.Option) (*matrix.Dense, error)) opFunc {
	return func(t Task, env taskEnv, e *Entry) error {
		ms, err := exactly(t, 2)
		if err != nil {
			return err
		}
		r, err := f(ms[0], ms[1], env.opts()...)
		if err != nil {
			return err
		}
		e.Matrix = r.Strings()
		return nil
	}
}

func naryOp(f func(ms []matrix.Matrix, o ...matrix.Option) (*matrix.Dense, error)) opFunc {
	return func(t Task, env taskEnv, e *Entry) error {
		ms, err := operands(t)
		if err != nil {
			return err
		}
		r, err := f(asMatrices(ms), env.opts()...)
		if err != nil {
			return err
		}
		e.Matrix = r.Strings()
		return nil
	}
}

func runTranspose(t Task, _ taskEnv, e *Entry) error {
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	r, err := matrix.Transpose(ms[0])
	if err != nil {
		return err
	}
	e.Matrix = r.Strings()
	return nil
}

func runRREF(t Task, env taskEnv, e *Entry) error {
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	r, pivots, err := matrix.RREF(ms[0], env.opts()...)
	if err != nil {
		return err
	}
	e.Matrix, e.Pivots = r.Strings(), pivots
	return nil
}

func runRank(t Task, env taskEnv, e *Entry) error {
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	rank, _, pivots, err := matrix.Rank(ms[0], env.opts()...)
	if err != nil {
		return err
	}
	e.Value, e.Pivots = strconv.Itoa(rank), pivots
	return nil
}

var determinantMethods = map[string]matrix.DeterminantStrategy{
	"":            matrix.Auto,
	"auto":        matrix.Auto,
	"cofactor":    matrix.Cofactor,
	"elimination": matrix.Elimination,
}

func runDeterminant(t Task, env taskEnv, e *Entry) error {
	strategy, ok := determinantMethods[t.Method]
	if !ok {
		return fmt.Errorf("%w: determinant method %q", ErrTask, t.Method)
	}
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	det, err := matrix.Determinant(ms[0], append(env.opts(), matrix.WithDeterminant(strategy))...)
	if err != nil {
		return err
	}
	e.Value = det.String()
	return nil
}

func runInverse(t Task, env taskEnv, e *Entry) error {
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	inv, err := matrix.Inverse(ms[0], env.opts()...)
	if err != nil {
		return err
	}
	e.Matrix = inv.Strings()
	return nil
}

var solveMethods = map[string]matrix.SolveMethod{
	"":             matrix.GaussJordan,
	"gauss-jordan": matrix.GaussJordan,
	"gauss":        matrix.Gauss,
}

// runSolve solves A·x = b from two matrices, or from a linear system in Text.
func runSolve(t Task, env taskEnv, e *Entry) error {
	method, ok := solveMethods[t.Method]
	if !ok {
		return fmt.Errorf("%w: solve method %q", ErrTask, t.Method)
	}
	var a, b *matrix.Dense
	if len(t.Matrices) == 0 && t.Text != "" {
		sys, err := matrix.ParseLinearSystem(t.Text)
		if err != nil {
			return err
		}
		a, b, e.Variables = sys.A, sys.B, sys.Variables
	} else {
		ms, err := exactly(t, 2)
		if err != nil {
			return err
		}
		a, b = ms[0], ms[1]
	}
	sol, err := matrix.Solve(a, b, method, env.opts()...)
	if err != nil {
		return err
	}
	e.Value, e.Pivots = sol.Kind.String(), sol.Pivots
	if sol.X != nil {
		e.Matrix = sol.X.Strings()
	}
	return nil
}

func runInvertibility(t Task, env taskEnv, e *Entry) error {
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	c, err := matrix.Invertibility(ms[0], env.opts()...)
	if err != nil {
		return err
	}
	e.Value = strconv.FormatBool(c.Invertible())
	for _, s := range c.Statements() {
		e.Statements = append(e.Statements, fmt.Sprintf("%s) %s: %t", s.Key, s.Text, s.Holds))
	}
	return nil
}

func runIndependence(t Task, env taskEnv, e *Entry) error {
	ms, err := exactly(t, 1)
	if err != nil {
		return err
	}
	ok, err := matrix.Independent(ms[0], env.opts()...)
	if err != nil {
		return err
	}
	e.Value = strconv.FormatBool(ok)
	return nil
}

func runMultipliable(t Task, _ taskEnv, e *Entry) error {
	ms, err := exactly(t, 2)
	if err != nil {
		return err
	}
	ok, desc := matrix.Multipliable(ms[0], ms[1])
	e.Value = strconv.FormatBool(ok)
	e.Reason = desc
	return nil
}

// runExpression evaluates Text with the task matrices bound to Names
// (or A, B, C, ... when Names is empty).
func runExpression(t Task, _ taskEnv, e *Entry) error {
	if t.Text == "" {
		return fmt.Errorf("%w: expression needs text", ErrTask)
	}
	if len(t.Names) > 0 && len(t.Names) != len(t.Matrices) {
		return fmt.Errorf("%w: %d names for %d matrices", ErrTask, len(t.Names), len(t.Matrices))
	}
	vars := make(map[string]*matrix.Dense, len(t.Matrices))
	for i, rows := range t.Matrices {
		m, err := matrix.NewFromStrings(rows)
		if err != nil {
			return fmt.Errorf("matrix %d: %w", i+1, err)
		}
		name := string(rune('A' + i))
		if len(t.Names) > 0 {
			name = t.Names[i]
		}
		vars[name] = m
	}
	r, err := algebra.Eval(t.Text, vars)
	if err != nil {
		return err
	}
	e.Matrix = r.Strings()
	return nil
}

func runParseSystem(t Task, _ taskEnv, e *Entry) error {
	sys, err := matrix.ParseLinearSystem(t.Text)
	if err != nil {
		return err
	}
	aug := make([][]string, sys.A.Rows())
	bs := sys.B.Strings()
	for i, row := range sys.A.Strings() {
		aug[i] = append(row, bs[i][0])
	}
	e.Matrix, e.Variables = aug, sys.Variables
	return nil
}

func runParseMatrix(t Task, _ taskEnv, e *Entry) error {
	m, err := matrix.ParseText(t.Text)
	if err != nil {
		return err
	}
	e.Matrix = m.Strings()
	return nil
}

// ---------- root finding ----------

// limits resolves the tolerance and iteration cap of a root-finding task.
func limits(t Task, d Defaults) (rational.Rat, int, error) {
	tolText := t.Tol
	if tolText == "" {
		tolText = d.Tol
	}
	tol, err := rational.Parse(tolText)
	if err != nil {
		return rational.Rat{}, 0, fmt.Errorf("%w: tol: %w", ErrTask, err)
	}
	maxIter := t.MaxIter
	if maxIter == 0 {
		maxIter = d.MaxIter
	}
	return tol, maxIter, nil
}

// point parses an interval end or seed.
func point(field, text string) (rational.Rat, error) {
	if text == "" {
		return rational.Rat{}, fmt.Errorf("%w: missing %s", ErrTask, field)
	}
	r, err := rational.Parse(text)
	if err != nil {
		return rational.Rat{}, fmt.Errorf("%w: %s: %w", ErrTask, field, err)
	}
	return r, nil
}

type bracketingFunc func(formula string, a, b, tol rational.Rat, maxIter int, opts ...roots.Option) (roots.Result[rational.Rat], error)

func bracketingOp(solve bracketingFunc) opFunc {
	return func(t Task, env taskEnv, e *Entry) error {
		tol, maxIter, err := limits(t, env.defaults)
		if err != nil {
			return err
		}
		a, err := point("a", t.A)
		if err != nil {
			return err
		}
		b, err := point("b", t.B)
		if err != nil {
			return err
		}
		res, err := solve(t.Formula, a, b, tol, maxIter)
		if err != nil {
			return err
		}
		e.Root, e.Status, e.Reason = formatRat(res.Root), res.Status.String(), res.Reason()
		e.Iterations = ratTable(res)
		return nil
	}
}

func runNewton(t Task, env taskEnv, e *Entry) error {
	tol, maxIter, err := limits(t, env.defaults)
	if err != nil {
		return err
	}
	x0, err := point("a", t.A)
	if err != nil {
		return err
	}
	res, err := roots.Newton(t.Formula, x0.Float64(), tol.Float64(), maxIter)
	if err != nil {
		return err
	}
	e.Root, e.Status, e.Reason = formatFloat(res.Root), res.Status.String(), res.Reason()
	e.Iterations = floatTable(res, false)
	return nil
}

func runSecant(t Task, env taskEnv, e *Entry) error {
	tol, maxIter, err := limits(t, env.defaults)
	if err != nil {
		return err
	}
	x0, err := point("a", t.A)
	if err != nil {
		return err
	}
	x1, err := point("b", t.B)
	if err != nil {
		return err
	}
	res, err := roots.Secant(t.Formula, x0.Float64(), x1.Float64(), tol.Float64(), maxIter)
	if err != nil {
		return err
	}
	e.Root, e.Status, e.Reason = formatFloat(res.Root), res.Status.String(), res.Reason()
	e.Iterations = floatTable(res, true)
	return nil
}
