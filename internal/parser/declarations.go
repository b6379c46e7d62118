package parser

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/token"
)

// declaration := classDecl | funDecl | varDecl | statement
//
// On a parse error, recovers via synchronize() and returns a nil statement —
// the caller discards the whole program if any error was recorded.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.Class):
		return p.classDecl()
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDecl(diagnostics.CodeExpectedToken, "expected ';' after variable declaration")
	default:
		return p.statement()
	}
}

// classDecl := "class" IDENT ( "<" IDENT )? "{" function* "}"
func (p *Parser) classDecl() ast.Stmt {
	name := p.consume(token.Identifier, "expected class name")

	var superClass *ast.VariableExpr
	if p.match(token.Less) {
		superName := p.consume(token.Identifier, "expected superclass name")
		superClass = &ast.VariableExpr{Name: superName}
	}

	p.consume(token.LeftBrace, "expected '{' before class body")

	var methods []*ast.FunctionStmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}

	if !p.match(token.RightBrace) {
		p.errorAt(diagnostics.CodeExpectedRightBraceAfterClassBody, p.peek(), "expected '}' after class body")
		panic(parseError{})
	}

	return &ast.ClassStmt{Name: name, SuperClass: superClass, Methods: methods}
}

// funDecl := "fun" function
// function := IDENT "(" params? ")" block
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.Identifier, "expected "+kind+" name")
	p.consume(token.LeftParen, "expected '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			params = append(params, p.consume(token.Identifier, "expected parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after parameters")
	p.consume(token.LeftBrace, "expected '{' before "+kind+" body")
	body := p.block()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// varDecl := "var" IDENT ( "=" expr )? ";"
//
// semiCode/semiMessage let callers outside a plain var-declaration statement
// (namely forStmt's initializer clause) report a more specific diagnostic
// than the generic trailing-semicolon error.
func (p *Parser) varDecl(semiCode diagnostics.Code, semiMessage string) ast.Stmt {
	name := p.consume(token.Identifier, "expected variable name")

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consumeCode(token.Semicolon, semiCode, semiMessage)
	return &ast.VarStmt{Name: name, Initializer: initializer}
}
