package parser

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/token"
)

// statement := exprStmt | printStmt | ifStmt | whileStmt | forStmt
//            | returnStmt | breakStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.Break):
		return p.breakStmt()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.exprStmt(diagnostics.CodeExpectedToken, "expected ';' after expression")
	}
}

// block := "{" declaration* "}"
// The opening '{' has already been consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return stmts
}

// printStmt := "print" expr ";"
func (p *Parser) printStmt() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "expected ';' after value")
	return &ast.PrintStmt{Expression: value}
}

// exprStmt := expr ";"
//
// semiCode/semiMessage let callers outside a plain expression-statement
// (namely forStmt's initializer clause) report a more specific diagnostic
// than the generic trailing-semicolon error.
func (p *Parser) exprStmt(semiCode diagnostics.Code, semiMessage string) ast.Stmt {
	expr := p.expression()
	p.consumeCode(token.Semicolon, semiCode, semiMessage)
	return &ast.ExpressionStmt{Expression: expr}
}

// ifStmt := "if" "(" expr ")" statement ( "else" statement )?
func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'if'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// whileStmt := "while" "(" expr ")" statement
func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'while'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after condition")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStmt desugars into a Block{ init, While{ cond or true, Block{ body, increment } } }
// before reaching the resolver — there is no dedicated ForStmt AST node.
//
// forStmt := "for" "(" ( varDecl | exprStmt | ";" )
//
//	( expr )? ";"
//	( expr )? ")" statement
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDecl(diagnostics.CodeExpectedForLoopInitializerOrSemiColon, "expected ';' after loop initializer")
	default:
		initializer = p.exprStmt(diagnostics.CodeExpectedForLoopInitializerOrSemiColon, "expected ';' after loop initializer")
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consumeCode(token.Semicolon, diagnostics.CodeExpectedForLoopConditionOrSemiColon, "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.LiteralExpr{IsBool: true, Bool: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

// returnStmt := "return" expr? ";"
func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// breakStmt := "break" ";"
func (p *Parser) breakStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.Semicolon, "expected ';' after 'break'")
	return &ast.BreakStmt{Keyword: keyword}
}
