package parser

import (
	"testing"

	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/scanner"
)

func scan(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	tokens, errs := scanner.Scan(source, "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	stmts, perrs := Parse(tokens, source, "test")
	if len(perrs) != 0 {
		t.Fatalf("parse errors: %v", perrs)
	}
	return stmts
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts := scan(t, "print 1 + 2 * 3;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	ps, ok := stmts[0].(*ast.PrintStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.PrintStmt", stmts[0])
	}
	bin, ok := ps.Expression.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryExpr", ps.Expression)
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Errorf("expected '2 * 3' to bind tighter than '+', got right operand %T", bin.Right)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := scan(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.BlockStmt (desugared for)", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("desugared for-block has %d statements, want 2 (init, while)", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("first statement = %T, want *ast.VarStmt", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("second statement = %T, want *ast.WhileStmt", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("while body = %T, want *ast.BlockStmt (body, increment)", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Errorf("while body has %d statements, want 2", len(body.Statements))
	}
}

func TestParseForLoopMissingInitializerSemicolonReportsForLoopCode(t *testing.T) {
	tokens, errs := scanner.Scan("for (var i = 0 i < 3; i = i + 1) print i;", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	_, perrs := Parse(tokens, "for (var i = 0 i < 3; i = i + 1) print i;", "test")
	if len(perrs) != 1 {
		t.Fatalf("got %d parse errors, want 1", len(perrs))
	}
	if perrs[0].Code != "ExpectedForLoopInitializerOrSemiColon" {
		t.Errorf("error code = %q, want ExpectedForLoopInitializerOrSemiColon", perrs[0].Code)
	}
}

func TestParseForLoopMissingConditionSemicolonReportsForLoopCode(t *testing.T) {
	tokens, errs := scanner.Scan("for (var i = 0; i < 3 i = i + 1) print i;", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	_, perrs := Parse(tokens, "for (var i = 0; i < 3 i = i + 1) print i;", "test")
	if len(perrs) != 1 {
		t.Fatalf("got %d parse errors, want 1", len(perrs))
	}
	if perrs[0].Code != "ExpectedForLoopConditionOrSemiColon" {
		t.Errorf("error code = %q, want ExpectedForLoopConditionOrSemiColon", perrs[0].Code)
	}
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts := scan(t, "class B < A { speak() { return 1; } }")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	class, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassStmt", stmts[0])
	}
	if class.SuperClass == nil || class.SuperClass.Name.Lexeme != "A" {
		t.Errorf("superclass = %v, want VariableExpr{Name: A}", class.SuperClass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "speak" {
		t.Errorf("methods = %v, want [speak]", class.Methods)
	}
}

func TestParseAssignmentTargets(t *testing.T) {
	stmts := scan(t, "a = 1; a.b = 2;")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	if _, ok := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.AssignExpr); !ok {
		t.Errorf("first assignment parsed as %T, want *ast.AssignExpr", stmts[0].(*ast.ExpressionStmt).Expression)
	}
	if _, ok := stmts[1].(*ast.ExpressionStmt).Expression.(*ast.SetExpr); !ok {
		t.Errorf("second assignment parsed as %T, want *ast.SetExpr", stmts[1].(*ast.ExpressionStmt).Expression)
	}
}

func TestParseInvalidAssignmentTargetIsAnError(t *testing.T) {
	tokens, errs := scanner.Scan("1 = 2;", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	_, perrs := Parse(tokens, "1 = 2;", "test")
	if len(perrs) != 1 {
		t.Fatalf("got %d parse errors, want 1", len(perrs))
	}
	if perrs[0].Code != "InvalidAssignment" {
		t.Errorf("error code = %q, want InvalidAssignment", perrs[0].Code)
	}
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	tokens, errs := scanner.Scan("var ; print 1;", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	_, perrs := Parse(tokens, "var ; print 1;", "test")
	if len(perrs) != 1 {
		t.Fatalf("got %d parse errors, want exactly 1 (malformed var declaration; parsing resumes cleanly at 'print 1;')", len(perrs))
	}
}

func TestParseExpressionMode(t *testing.T) {
	tokens, errs := scanner.Scan("1 + 2", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	expr, perrs := ParseExpression(tokens, "1 + 2", "test")
	if len(perrs) != 0 {
		t.Fatalf("parse errors: %v", perrs)
	}
	if _, ok := expr.(*ast.BinaryExpr); !ok {
		t.Errorf("got %T, want *ast.BinaryExpr", expr)
	}
}

func TestParseExpressionModeRejectsTrailingInput(t *testing.T) {
	tokens, errs := scanner.Scan("1 + 2 3", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	_, perrs := ParseExpression(tokens, "1 + 2 3", "test")
	if len(perrs) == 0 {
		t.Fatalf("expected an error for trailing input after expression")
	}
}

func TestParseExpressionModeRecoversFromPanic(t *testing.T) {
	tokens, errs := scanner.Scan("1 +", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	_, perrs := ParseExpression(tokens, "1 +", "test")
	if len(perrs) == 0 {
		t.Fatalf("expected a recovered parse error, not a panic")
	}
}
