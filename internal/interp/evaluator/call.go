package evaluator

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/environment"
	"github.com/cwbudde/glox/internal/interp/values"
)

func (i *Interpreter) evalCall(e *ast.CallExpr) (values.Value, error) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	switch c := callee.(type) {
	case *values.Function:
		if err := i.checkArity(c.Arity(), len(args), e.Paren); err != nil {
			return nil, err
		}
		return i.callFunction(c, args)

	case *values.NativeFunction:
		if err := i.checkArity(c.Arity(), len(args), e.Paren); err != nil {
			return nil, err
		}
		return c.Fn(args)

	case *values.Class:
		return i.instantiate(c, args, e.Paren)

	default:
		return nil, i.newError(diagnostics.CodeNonCallableCalled, e.Paren, "can only call functions and classes")
	}
}

func (i *Interpreter) checkArity(expected, found int, paren ast.Token) error {
	if expected != found {
		return i.newError(diagnostics.CodeCallableArityMismatch, paren,
			"expected %d arguments but got %d", expected, found)
	}
	return nil
}

// callFunction constructs a child scope of the closure (or globals if the
// function has none), binds parameters, executes the body, and interprets
// the resulting effect: Return(v) yields v, a fall-through yields nil. If
// the function is an initializer, the result is always overridden to the
// value of `this` from the closure, regardless of any explicit return.
func (i *Interpreter) callFunction(fn *values.Function, args []values.Value) (values.Value, error) {
	closure := fn.Closure
	if closure == nil {
		closure = i.globals
	}
	callEnv := environment.NewEnclosed(closure)
	for idx, param := range fn.Decl.Params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	eff, err := i.execBlock(fn.Decl.Body, callEnv)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		this, _ := closure.GetAt("this", 0)
		return this, nil
	}

	if eff.kind == effectReturn {
		return eff.value, nil
	}
	return nil, nil
}

// instantiate constructs a fresh instance, then — if the class exposes an
// init method — binds it to the instance and calls it with args (arity
// from init). Without an init method, the call must pass zero arguments.
// The result is always the new instance, never init's own return value.
func (i *Interpreter) instantiate(class *values.Class, args []values.Value, paren ast.Token) (values.Value, error) {
	instance := values.NewInstance(class)

	init := class.FindMethod("init")
	if init == nil {
		if len(args) != 0 {
			return nil, i.newError(diagnostics.CodeCallableArityMismatch, paren,
				"expected 0 arguments but got %d", len(args))
		}
		return instance, nil
	}

	bound := init.Bind(instance)
	if err := i.checkArity(bound.Arity(), len(args), paren); err != nil {
		return nil, err
	}
	if _, err := i.callFunction(bound, args); err != nil {
		return nil, err
	}
	return instance, nil
}
