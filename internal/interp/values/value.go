// Package values defines the runtime value sum type for the evaluator: nil,
// boolean, number, string, callables (functions, methods, class
// constructors), classes, and instances.
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is any Lox runtime value. Nil is represented by a Go nil of this
// type; Bool, Number, and String are the three scalar variants.
type Value any

// Bool, Number, and String are thin wrappers so type switches in the
// evaluator can distinguish a Lox boolean/number/string from an arbitrary
// Go value without relying on Go's native bool/float64/string identity
// (which would make Callable/Class/Instance — themselves plain structs —
// indistinguishable from scalars in a type switch only by accident).
type (
	Bool   bool
	Number float64
	String string
)

// IsTruthy implements Lox truthiness: nil and false are falsy; everything
// else — including 0 and "" — is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(Bool); ok {
		return bool(b)
	}
	return true
}

// Equal implements Lox's structural equality: nil=nil is true, same-typed
// scalars compare by value (including IEEE-754 semantics for Number, so
// NaN != NaN and -0 == 0), and anything else (including cross-type
// comparisons) is false.
func Equal(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && float64(av) == float64(bv)
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return false
	}
}

// Stringify renders a value's printed form: nil as "nil", booleans
// lowercase, numbers in Go's default double formatting, strings quoted,
// callables as "<fun NAME>", classes as "<class NAME>", instances as
// "<instance of class NAME>".
func Stringify(v Value) string {
	switch vv := v.(type) {
	case nil:
		return "nil"
	case Bool:
		return strconv.FormatBool(bool(vv))
	case Number:
		return formatNumber(float64(vv))
	case String:
		return "\"" + string(vv) + "\""
	case *Function:
		return "<fun " + vv.Name() + ">"
	case *NativeFunction:
		return "<fun " + vv.NameStr + ">"
	case *Class:
		return "<class " + vv.Name + ">"
	case *Instance:
		return "<instance of class " + vv.Class.Name + ">"
	default:
		return fmt.Sprintf("%v", vv)
	}
}

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Go's 'g' format can emit exponent notation for very large/small
	// magnitudes; Lox has no numeric literal syntax for that, but the
	// printed form must still round-trip through a plain decimal for values
	// produced by arithmetic, matching the host double-to-string default.
	if strings.ContainsAny(s, "eE") {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}
