package resolver

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
)

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.pushContext(ctxLoop)
		r.resolveStmt(s.Body)
		r.popContext()

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, ctxFunction)

	case *ast.ReturnStmt:
		r.resolveReturn(s)

	case *ast.BreakStmt:
		if !r.enclosingLoopBeforeFunction() {
			r.errorAt(diagnostics.CodeBreakNotInLoop, s.Keyword, "'break' outside a loop")
		}

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveReturn(s *ast.ReturnStmt) {
	enclosing := r.enclosingFunction()
	if enclosing == ctxNone {
		r.errorAt(diagnostics.CodeReturnNotInFunction, s.Keyword, "'return' outside a function")
		return
	}
	if s.Value != nil {
		if enclosing == ctxInitializer {
			r.errorAt(diagnostics.CodeCantReturnValueFromAnInitializer, s.Keyword, "cannot return a value from an initializer")
			return
		}
		r.resolveExpr(s.Value)
	}
}

// resolveFunction declares+defines parameters in a fresh scope, resolves
// the body, then pops the scope — pushing/popping ctx around the body.
func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, ctx context) {
	r.pushContext(ctx)
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
	r.popContext()
}

func (r *Resolver) resolveClass(c *ast.ClassStmt) {
	r.declare(c.Name)
	r.define(c.Name)

	hasSuper := false
	if c.SuperClass != nil {
		if c.SuperClass.Name.Lexeme == c.Name.Lexeme {
			r.errorAt(diagnostics.CodeClassCantInheritFromItself, c.SuperClass.Name, "class '"+c.Name.Lexeme+"' cannot inherit from itself")
		} else {
			r.resolveExpr(c.SuperClass)
			hasSuper = true
		}
	}

	r.pushContext(ctxClass)

	if hasSuper {
		r.beginScope()
		r.defineSynthetic("super")
	}

	r.beginScope()
	r.defineSynthetic("this")

	for _, method := range c.Methods {
		ctx := ctxMethod
		if method.Name.Lexeme == "init" {
			ctx = ctxInitializer
		}
		r.resolveFunction(method, ctx)
	}

	r.endScope() // this

	if hasSuper {
		r.endScope() // super
	}

	r.popContext()
}
