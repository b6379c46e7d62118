package evaluator

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/values"
)

func (i *Interpreter) evalGet(e *ast.GetExpr) (values.Value, error) {
	obj, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := obj.(*values.Instance)
	if !ok {
		return nil, i.newError(diagnostics.CodeOnlyInstancesHaveProperties, e.Name, "only instances have properties")
	}

	v, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		return nil, i.newError(diagnostics.CodeUndefinedProperty, e.Name, "undefined property '"+e.Name.Lexeme+"'")
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.SetExpr) (values.Value, error) {
	obj, err := i.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*values.Instance)
	if !ok {
		return nil, i.newError(diagnostics.CodeOnlyInstancesHaveProperties, e.Name, "only instances have properties")
	}

	v, err := i.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, v)
	return v, nil
}

// evalSuper reads the superclass from the enclosing `super` scope and
// `this` from the enclosing `this` scope (both via resolver-annotated
// hops), finds the method on that superclass, and binds it to `this`.
func (i *Interpreter) evalSuper(e *ast.SuperExpr) (values.Value, error) {
	superVal, _ := i.env.GetAt("super", e.SuperHops.Value)
	superClass := superVal.(*values.Class)

	thisVal, _ := i.env.GetAt("this", e.ThisHops.Value)
	instance := thisVal.(*values.Instance)

	method := superClass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, i.newError(diagnostics.CodeUndefinedProperty, e.Method, "undefined property '"+e.Method.Lexeme+"'")
	}
	return method.Bind(instance), nil
}
