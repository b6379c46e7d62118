package evaluator

import (
	"github.com/cwbudde/glox/internal/ast"
	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/interp/environment"
	"github.com/cwbudde/glox/internal/interp/values"
)

func (i *Interpreter) execStmts(stmts []ast.Stmt) (effect, error) {
	for _, s := range stmts {
		eff, err := i.execStmt(s)
		if err != nil || eff.kind != effectNone {
			return eff, err
		}
	}
	return noEffect, nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt) (effect, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expression)
		return noEffect, err

	case *ast.PrintStmt:
		v, err := i.evalExpr(s.Expression)
		if err != nil {
			return noEffect, err
		}
		i.printf("%s\n", values.Stringify(v))
		return noEffect, nil

	case *ast.VarStmt:
		var v values.Value
		if s.Initializer != nil {
			var err error
			v, err = i.evalExpr(s.Initializer)
			if err != nil {
				return noEffect, err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return noEffect, nil

	case *ast.BlockStmt:
		return i.execBlock(s.Statements, environment.NewEnclosed(i.env))

	case *ast.IfStmt:
		cond, err := i.evalExpr(s.Condition)
		if err != nil {
			return noEffect, err
		}
		if values.IsTruthy(cond) {
			return i.execStmt(s.Then)
		}
		if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return noEffect, nil

	case *ast.WhileStmt:
		return i.execWhile(s)

	case *ast.FunctionStmt:
		fn := &values.Function{Decl: s, Closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return noEffect, nil

	case *ast.ReturnStmt:
		var v values.Value
		if s.Value != nil {
			var err error
			v, err = i.evalExpr(s.Value)
			if err != nil {
				return noEffect, err
			}
		}
		return effect{kind: effectReturn, value: v}, nil

	case *ast.BreakStmt:
		return effect{kind: effectBreak}, nil

	case *ast.ClassStmt:
		return noEffect, i.execClass(s)

	default:
		panic("evaluator: unhandled statement type")
	}
}

// execBlock runs stmts against env, restoring the interpreter's previous
// environment on every exit path — including when an effect or error
// propagates out.
func (i *Interpreter) execBlock(stmts []ast.Stmt, env *environment.Env) (effect, error) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()
	return i.execStmts(stmts)
}

// execWhile loops while condition is truthy; a Break effect from the body
// ends the loop without propagating further, while a Return effect
// propagates to the enclosing call.
func (i *Interpreter) execWhile(s *ast.WhileStmt) (effect, error) {
	for {
		cond, err := i.evalExpr(s.Condition)
		if err != nil {
			return noEffect, err
		}
		if !values.IsTruthy(cond) {
			return noEffect, nil
		}
		eff, err := i.execStmt(s.Body)
		if err != nil {
			return noEffect, err
		}
		switch eff.kind {
		case effectBreak:
			return noEffect, nil
		case effectReturn:
			return eff, nil
		}
	}
}

// execClass evaluates the superclass expression (if present), opens a
// super-scope when needed, builds each method's closure, and assigns the
// finished class value to the previously-declared name.
func (i *Interpreter) execClass(s *ast.ClassStmt) error {
	var superClass *values.Class
	if s.SuperClass != nil {
		v, err := i.evalExpr(s.SuperClass)
		if err != nil {
			return err
		}
		sc, ok := v.(*values.Class)
		if !ok {
			return i.newError(diagnostics.CodeSuperClassMustBeAClass, s.SuperClass.Name, "superclass of '"+s.Name.Lexeme+"' must be a class")
		}
		superClass = sc
	}

	i.env.Define(s.Name.Lexeme, nil)

	previous := i.env
	if superClass != nil {
		i.env = environment.NewEnclosed(i.env)
		i.env.Define("super", superClass)
	}

	methods := make(map[string]*values.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &values.Function{
			Decl:          m,
			Closure:       i.env,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	if superClass != nil {
		i.env = previous
	}

	class := &values.Class{Name: s.Name.Lexeme, SuperClass: superClass, Methods: methods}
	i.env.Assign(s.Name.Lexeme, class)
	return nil
}
