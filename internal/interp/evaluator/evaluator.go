// Package evaluator executes a resolved AST against a chain of lexical
// environments: closures, classes, inheritance, method binding, and
// non-local control flow (return, break) all live here.
package evaluator

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/environment"
	"github.com/cwbudde/glox/internal/interp/values"
	"github.com/cwbudde/glox/internal/token"
)

// Interpreter executes statements against a current environment, with an
// implicit globals environment kept as a separate handle so the Function
// call path can always find the outermost scope.
type Interpreter struct {
	globals *environment.Env
	env     *environment.Env

	source string
	file   string

	// RunID tags this interpreter instance so --trace output can correlate
	// REPL history entries across a session; it has no effect on language
	// semantics.
	RunID string

	// Stdout is where print statements write. Defaults to os.Stdout; tests
	// substitute a bytes.Buffer to capture output.
	Stdout io.Writer
}

// New creates an Interpreter with a fresh global environment seeded with
// the native clock() function (see SPEC_FULL.md's "Supplemented features").
func New(source, file string) *Interpreter {
	globals := environment.New()
	it := &Interpreter{
		globals: globals,
		env:     globals,
		source:  source,
		file:    file,
		RunID:   uuid.NewString(),
		Stdout:  os.Stdout,
	}
	globals.Define("clock", &values.NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []values.Value) (values.Value, error) {
			return values.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	return it
}

// effectKind distinguishes the non-local control-flow effects a statement
// can produce; effects propagate statement-by-statement and are consumed
// by the construct that scopes them (Break by the innermost While, Return
// by the innermost call), never by host-language exceptions/unwinding.
type effectKind int

const (
	effectNone effectKind = iota
	effectReturn
	effectBreak
)

type effect struct {
	kind  effectKind
	value values.Value
}

var noEffect = effect{kind: effectNone}

// RuntimeError is the single runtime error type the evaluator raises; it
// carries the most specific token available for location, per spec.md §7.
type RuntimeError struct {
	*diagnostics.Diagnostic
}

func (i *Interpreter) newError(code diagnostics.Code, tok token.Token, message string, args ...any) error {
	return &RuntimeError{diagnostics.New(diagnostics.RuntimeError, code, tok.Pos, i.source, i.file, message, args...)}
}

// Execute runs a resolved statement sequence to completion. A RuntimeError
// halts execution immediately and is returned to the host; a Break effect
// that reaches the top level is a resolver-contract violation and panics
// rather than failing silently.
func (i *Interpreter) Execute(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		eff, err := i.execStmt(stmt)
		if err != nil {
			return err
		}
		if eff.kind != effectNone {
			panic("evaluator: control-flow effect escaped to top level; resolver should have rejected this program")
		}
	}
	return nil
}

// EvaluateExpression evaluates a single resolved expression against the
// interpreter's current environment. Used by the REPL.
func (i *Interpreter) EvaluateExpression(expr ast.Expr) (values.Value, error) {
	return i.evalExpr(expr)
}

func (i *Interpreter) printf(format string, args ...any) {
	fmt.Fprintf(i.Stdout, format, args...)
}
