package evaluator

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/values"
	"github.com/cwbudde/glox/internal/token"
)

func (i *Interpreter) evalExpr(expr ast.Expr) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return evalLiteral(e), nil

	case *ast.GroupingExpr:
		return i.evalExpr(e.Expression)

	case *ast.UnaryExpr:
		return i.evalUnary(e)

	case *ast.BinaryExpr:
		return i.evalBinary(e)

	case *ast.LogicalExpr:
		return i.evalLogical(e)

	case *ast.VariableExpr:
		return i.lookupVariable(e.Name, e.Hops)

	case *ast.AssignExpr:
		return i.evalAssign(e)

	case *ast.CallExpr:
		return i.evalCall(e)

	case *ast.GetExpr:
		return i.evalGet(e)

	case *ast.SetExpr:
		return i.evalSet(e)

	case *ast.ThisExpr:
		return i.lookupVariable(e.Keyword, e.Hops)

	case *ast.SuperExpr:
		return i.evalSuper(e)

	default:
		panic("evaluator: unhandled expression type")
	}
}

func evalLiteral(e *ast.LiteralExpr) values.Value {
	switch {
	case e.IsBool:
		return values.Bool(e.Bool)
	case e.IsNumber:
		return values.Number(e.Number)
	case e.IsString:
		return values.String(e.Str)
	default:
		return nil
	}
}

// lookupVariable reads a Variable/This reference: a non-nil hops resolves
// via GetAt, a nil hops falls back to the unqualified (global) lookup.
func (i *Interpreter) lookupVariable(name token.Token, hops *ast.Hops) (values.Value, error) {
	if hops != nil {
		v, ok := i.env.GetAt(name.Lexeme, hops.Value)
		if !ok {
			return nil, i.newError(diagnostics.CodeUndefinedVariable, name, "undefined variable '"+name.Lexeme+"'")
		}
		return v, nil
	}
	v, ok := i.globals.Get(name.Lexeme)
	if !ok {
		return nil, i.newError(diagnostics.CodeUndefinedVariable, name, "undefined variable '"+name.Lexeme+"'")
	}
	return v, nil
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) (values.Value, error) {
	v, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}

	if e.Hops != nil {
		if !i.env.AssignAt(e.Name.Lexeme, v, e.Hops.Value) {
			return nil, i.newError(diagnostics.CodeUndefinedVariable, e.Name, "undefined variable '"+e.Name.Lexeme+"'")
		}
		return v, nil
	}
	if !i.globals.Assign(e.Name.Lexeme, v) {
		return nil, i.newError(diagnostics.CodeUndefinedVariable, e.Name, "undefined variable '"+e.Name.Lexeme+"'")
	}
	return v, nil
}

func (i *Interpreter) evalLogical(e *ast.LogicalExpr) (values.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == token.Or {
		if values.IsTruthy(left) {
			return left, nil
		}
	} else { // And
		if !values.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) (values.Value, error) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(values.Number)
		if !ok {
			return nil, i.newError(diagnostics.CodeUnaryMinusExpectsNumber, e.Operator, "unary '-' expects a number")
		}
		return -n, nil
	case token.Bang:
		return values.Bool(!values.IsTruthy(right)), nil
	default:
		return nil, i.newError(diagnostics.CodeUnknownUnaryExpression, e.Operator, "unknown unary operator '"+e.Operator.Lexeme+"'")
	}
}
