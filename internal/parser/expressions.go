package parser

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/token"
)

// expr := assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := ( call "." )? IDENT "=" assignment | logic_or
//
// The left side is always parsed as logic_or first; if '=' follows, the
// already-parsed expression is reinterpreted as an assignment target. Only
// Variable and Get are valid targets (prefer a separate l-value path keyed
// on what was just parsed, per the teacher's "no polymorphic node method"
// idiom) — anything else is InvalidAssignment. A Get target becomes a Set.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorAt(diagnostics.CodeInvalidAssignment, equals, "invalid assignment target")
			return expr
		}
	}
	return expr
}

// logic_or := logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and := equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality := comparison ( ("!="|"==") comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison := term ( ("<"|">"|"<="|">=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Less, token.Greater, token.LessEqual, token.GreaterEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term := factor ( ("+"|"-") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor := unary ( ("*"|"/") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary := ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

// call := primary ( "(" args? ")" | "." IDENT )*
// Calls and property accesses chain left-associatively at the same level.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.finishCall(expr)
		case p.match(token.Dot):
			name := p.consume(token.Identifier, "expected property name after '.'")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

// args := expr ( "," expr )*
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "expected ')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

// primary := NUMBER | STRING | "true" | "false" | "nil"
//
//	| "this" | "super" "." IDENT
//	| IDENT | "(" expr ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{IsBool: true, Bool: false}
	case p.match(token.True):
		return &ast.LiteralExpr{IsBool: true, Bool: true}
	case p.match(token.Nil):
		return &ast.LiteralExpr{IsNil: true}
	case p.match(token.Number):
		return &ast.LiteralExpr{IsNumber: true, Number: p.previous().Literal.Number}
	case p.match(token.String):
		return &ast.LiteralExpr{IsString: true, Str: p.previous().Literal.Str}
	case p.match(token.This):
		return &ast.ThisExpr{Keyword: p.previous()}
	case p.match(token.Super):
		keyword := p.previous()
		p.consume(token.Dot, "expected '.' after 'super'")
		method := p.consume(token.Identifier, "expected superclass method name")
		return &ast.SuperExpr{Keyword: keyword, Method: method}
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expected ')' after expression")
		return &ast.GroupingExpr{Expression: expr}
	}

	p.errorAt(diagnostics.CodeExpectedExpression, p.peek(), "expected expression")
	panic(parseError{})
}
