package values

import (
	"math"
	"testing"
)

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{String(""), true},
		{Number(1), true},
	}
	for _, c := range cases {
		if got := IsTruthy(c.v); got != c.want {
			t.Errorf("IsTruthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqualNilSemantics(t *testing.T) {
	if !Equal(nil, nil) {
		t.Errorf("Equal(nil, nil) = false, want true")
	}
	if Equal(nil, Bool(false)) {
		t.Errorf("Equal(nil, false) = true, want false")
	}
}

func TestEqualScalars(t *testing.T) {
	if !Equal(Number(1), Number(1)) {
		t.Errorf("Equal(1, 1) = false, want true")
	}
	if Equal(Number(1), String("1")) {
		t.Errorf("Equal(1, \"1\") = true, want false (cross-type never equal)")
	}
	negZero := Number(math.Copysign(0, -1))
	if !Equal(negZero, Number(0.0)) {
		t.Errorf("Equal(-0, 0) = false, want true (IEEE-754 semantics)")
	}
	if Equal(Number(math.NaN()), Number(math.NaN())) {
		t.Errorf("Equal(NaN, NaN) = true, want false (IEEE-754 semantics)")
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{nil, "nil"},
		{Bool(true), "true"},
		{Number(3), "3"},
		{Number(3.5), "3.5"},
		{String("hi"), "\"hi\""},
	}
	for _, c := range cases {
		if got := Stringify(c.v); got != c.want {
			t.Errorf("Stringify(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestStringifyClassAndInstance(t *testing.T) {
	class := &Class{Name: "Point", Methods: map[string]*Function{}}
	if got := Stringify(class); got != "<class Point>" {
		t.Errorf("Stringify(class) = %q, want %q", got, "<class Point>")
	}
	instance := NewInstance(class)
	if got := Stringify(instance); got != "<instance of class Point>" {
		t.Errorf("Stringify(instance) = %q, want %q", got, "<instance of class Point>")
	}
}

func TestClassFindMethodWalksSuperclassChain(t *testing.T) {
	speak := &Function{}
	base := &Class{Name: "A", Methods: map[string]*Function{"speak": speak}}
	derived := &Class{Name: "B", SuperClass: base, Methods: map[string]*Function{}}

	if derived.FindMethod("speak") != speak {
		t.Errorf("FindMethod did not walk to superclass")
	}
	if derived.FindMethod("missing") != nil {
		t.Errorf("FindMethod found a nonexistent method")
	}
}

func TestInstanceGetSetFieldsAndMethods(t *testing.T) {
	class := &Class{Name: "Point", Methods: map[string]*Function{
		"dist": {},
	}}
	instance := NewInstance(class)
	instance.Set("x", Number(1))

	v, ok := instance.Get("x")
	if !ok || v != Number(1) {
		t.Fatalf("Get(x) = (%v, %v), want (1, true)", v, ok)
	}

	v, ok = instance.Get("dist")
	if !ok {
		t.Fatalf("Get(dist) failed, want a bound method")
	}
	if _, ok := v.(*Function); !ok {
		t.Errorf("Get(dist) = %T, want *Function (bound)", v)
	}

	if _, ok := instance.Get("nope"); ok {
		t.Errorf("Get(nope) succeeded, want failure")
	}
}

func TestFunctionBindCreatesThisScope(t *testing.T) {
	class := &Class{Name: "Point"}
	instance := NewInstance(class)
	fn := &Function{}
	bound := fn.Bind(instance)

	v, ok := bound.Closure.GetAt("this", 0)
	if !ok || v != instance {
		t.Fatalf("bound closure's this = (%v, %v), want (%v, true)", v, ok, instance)
	}
}
