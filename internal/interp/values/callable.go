package values

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/interp/environment"
)

// Callable is any value the evaluator can invoke with a Call expression:
// a user-defined Function, a NativeFunction, or a Class (calling a class
// constructs an instance). Name is intentionally excluded from this
// interface — Class already exposes its name via a Name field, and a
// method can't share an identifier with a field of the same name.
type Callable interface {
	Arity() int
}

// Function bundles a function/method declaration with the lexical
// environment captured at its definition (its closure). Calling a
// declaration with no closure (a bare top-level function before any
// closure capture) runs against the global environment instead — the
// evaluator supplies that fallback, not this type.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *environment.Env
	IsInitializer bool
}

func (f *Function) Arity() int   { return len(f.Decl.Params) }
func (f *Function) Name() string { return f.Decl.Name.Lexeme }

// Bind produces a new Function sharing the same declaration whose closure
// is a fresh child scope of the original closure containing just
// `this -> instance`. Used for method lookup through Instance.Get and for
// super-dispatch.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

// NativeFunction wraps a host-implemented builtin (e.g. clock()).
type NativeFunction struct {
	NameStr string
	ArityN  int
	Fn      func(args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int   { return n.ArityN }
func (n *NativeFunction) Name() string { return n.NameStr }
