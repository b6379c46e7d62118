package evaluator

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/values"
	"github.com/cwbudde/glox/internal/token"
)

func (i *Interpreter) evalBinary(e *ast.BinaryExpr) (values.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EqualEqual:
		return values.Bool(values.Equal(left, right)), nil
	case token.BangEqual:
		return values.Bool(!values.Equal(left, right)), nil

	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Minus, token.Star:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, i.newError(diagnostics.CodeBinaryOperatorExpectsNumbers, e.Operator, "operator '"+e.Operator.Lexeme+"' expects two numbers")
		}
		return applyNumeric(e.Operator.Kind, ln, rn), nil

	case token.Slash:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, i.newError(diagnostics.CodeBinaryOperatorExpectsNumbers, e.Operator, "operator '/' expects two numbers")
		}
		if rn == 0 {
			return nil, i.newError(diagnostics.CodeDivisionByZero, e.Operator, "division by zero")
		}
		return ln / rn, nil

	case token.Plus:
		return i.evalPlus(e.Operator, left, right)

	default:
		return nil, i.newError(diagnostics.CodeUnknownBinaryExpression, e.Operator, "unknown binary operator '"+e.Operator.Lexeme+"'")
	}
}

func bothNumbers(a, b values.Value) (values.Number, values.Number, bool) {
	an, aok := a.(values.Number)
	bn, bok := b.(values.Number)
	return an, bn, aok && bok
}

func applyNumeric(kind token.Kind, l, r values.Number) values.Value {
	switch kind {
	case token.Less:
		return values.Bool(l < r)
	case token.LessEqual:
		return values.Bool(l <= r)
	case token.Greater:
		return values.Bool(l > r)
	case token.GreaterEqual:
		return values.Bool(l >= r)
	case token.Minus:
		return l - r
	case token.Star:
		return l * r
	default:
		panic("evaluator: applyNumeric called with non-numeric operator")
	}
}

// evalPlus accepts number+number or string+string; any other pairing is
// BinaryPlusExpectsTwoNumbersOrTwoStrings.
func (i *Interpreter) evalPlus(op token.Token, left, right values.Value) (values.Value, error) {
	if ln, rn, ok := bothNumbers(left, right); ok {
		return ln + rn, nil
	}
	if ls, ok := left.(values.String); ok {
		if rs, ok := right.(values.String); ok {
			return ls + rs, nil
		}
	}
	return nil, i.newError(diagnostics.CodeBinaryPlusExpectsTwoNumbersOrTwoStrings, op, "'+' expects two numbers or two strings")
}
