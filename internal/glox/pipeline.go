// Package glox wires the scanner, parser, resolver, and evaluator into the
// boundary contract described by spec.md §1: scan, parse, resolve, and
// execute/evaluate-expression are the only points where a host (CLI, REPL,
// or test) touches the core.
package glox

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/evaluator"
	"github.com/cwbudde/glox/internal/parser"
	"github.com/cwbudde/glox/internal/resolver"
	"github.com/cwbudde/glox/internal/scanner"
	"github.com/cwbudde/glox/internal/token"
)

// Scan tokenizes source. A non-empty diagnostics slice means scanning
// failed and the token slice must not be used.
func Scan(source, file string) ([]token.Token, []*diagnostics.Diagnostic) {
	return scanner.Scan(source, file)
}

// ParseProgram parses a token stream in program mode (a statement
// sequence). A non-empty diagnostics slice means parsing failed.
func ParseProgram(tokens []token.Token, source, file string) ([]ast.Stmt, []*diagnostics.Diagnostic) {
	return parser.Parse(tokens, source, file)
}

// ParseExpression parses a token stream as a single expression, used by the
// REPL's expression-evaluation mode.
func ParseExpression(tokens []token.Token, source, file string) (ast.Expr, []*diagnostics.Diagnostic) {
	return parser.ParseExpression(tokens, source, file)
}

// Resolve annotates stmts in place with scope-distance hops and returns the
// warnings and errors collected. Any error means execution is unsafe.
func Resolve(stmts []ast.Stmt, source, file string) resolver.Result {
	return resolver.Resolve(stmts, source, file)
}

// ResolveExpr resolves a single bare expression, used by the REPL.
func ResolveExpr(expr ast.Expr, source, file string) resolver.Result {
	return resolver.ResolveExpr(expr, source, file)
}

// Interpreter re-exports evaluator.Interpreter so hosts construct exactly
// one evaluator per run and can call both Execute and EvaluateExpression
// against it (the REPL needs both, depending on what parses).
type Interpreter = evaluator.Interpreter

// NewInterpreter creates an Interpreter over source/file, seeded with the
// native globals (clock()).
func NewInterpreter(source, file string) *Interpreter {
	return evaluator.New(source, file)
}
