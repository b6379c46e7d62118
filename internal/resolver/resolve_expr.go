package resolver

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
)

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// no sub-expressions

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *ast.VariableExpr:
		r.resolveVariable(e)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		e.Hops = r.resolveLocal(e.Name.Lexeme)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if !r.insideClass() {
			r.errorAt(diagnostics.CodeThisNotInsideClass, e.Keyword, "'this' outside a class")
		}
		e.Hops = r.resolveLocal("this")

	case *ast.SuperExpr:
		e.SuperHops = r.resolveLocal("super")
		e.ThisHops = r.resolveLocal("this")

	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveVariable implements "declaration then definition": reading a
// local whose entry is not yet defined in the innermost scope is an error.
func (r *Resolver) resolveVariable(e *ast.VariableExpr) {
	if top := r.currentScope(); top != nil {
		if v, ok := top[e.Name.Lexeme]; ok && !v.defined {
			r.errorAt(diagnostics.CodeCantReadLocalVarInItsInitializer, e.Name,
				"cannot read local variable '"+e.Name.Lexeme+"' in its own initializer")
			return
		}
	}
	e.Hops = r.resolveLocal(e.Name.Lexeme)
}
