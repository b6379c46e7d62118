package glox

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// execute scans, parses, resolves, and runs source end-to-end, returning
// whatever the program printed.
func execute(t *testing.T, source string) (string, error) {
	t.Helper()

	tokens, errs := Scan(source, "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	stmts, perrs := ParseProgram(tokens, source, "test")
	if len(perrs) != 0 {
		t.Fatalf("parse errors: %v", perrs)
	}
	result := Resolve(stmts, source, "test")
	if result.HasErrors() {
		t.Fatalf("resolve errors: %v", result.Errors)
	}

	var buf bytes.Buffer
	interp := NewInterpreter(source, "test")
	interp.Stdout = &buf
	err := interp.Execute(stmts)
	return buf.String(), err
}

// TestScenarioSnapshots pins the exact stdout of every round-trip scenario
// against a golden snapshot, covering the same programs exercised directly
// in internal/interp/evaluator's scenario tests but through the full
// scan->parse->resolve->execute boundary a host actually drives.
func TestScenarioSnapshots(t *testing.T) {
	cases := map[string]string{
		"arithmetic_and_precedence": `print 1 + 2 * 3;  print (1 + 2) * 3;`,
		"closures_capture_not_snapshot": `
			fun makeCounter() { var i = 0; fun inc() { i = i + 1; return i; } return inc; }
			var c = makeCounter(); print c(); print c(); print c();
		`,
		"lexical_scope_fixed_at_definition": `
			var a = "global";
			{ fun show() { print a; } show(); var a = "local"; show(); }
		`,
		"inheritance_and_super": `
			class A { speak() { print "A"; } }
			class B < A { speak() { super.speak(); print "B"; } }
			B().speak();
		`,
		"initializer_returns_instance": `
			class P { init(x) { this.x = x; } }
			var p = P(42); print p.x;
		`,
		"break_and_return_interaction": `
			fun f() { var i = 0; while (true) { if (i == 3) return i; i = i + 1; } }
			print f();
		`,
	}

	for name, source := range cases {
		name, source := name, source
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, source)
			if err != nil {
				t.Fatalf("unexpected runtime error: %v", err)
			}
			snaps.MatchSnapshot(t, name, out)
		})
	}
}

func TestNegativeScenarios(t *testing.T) {
	t.Run("CantReadLocalVarInItsInitializer", func(t *testing.T) {
		tokens, errs := Scan(`{ var a = a; }`, "test")
		if len(errs) != 0 {
			t.Fatalf("scan errors: %v", errs)
		}
		stmts, perrs := ParseProgram(tokens, `{ var a = a; }`, "test")
		if len(perrs) != 0 {
			t.Fatalf("parse errors: %v", perrs)
		}
		result := Resolve(stmts, `{ var a = a; }`, "test")
		if len(result.Errors) != 1 || string(result.Errors[0].Code) != "CantReadLocalVarInItsInitializer" {
			t.Fatalf("got errors %v, want exactly CantReadLocalVarInItsInitializer", result.Errors)
		}
	})

	t.Run("ClassCantInheritFromItself", func(t *testing.T) {
		source := `class X < X {}`
		tokens, _ := Scan(source, "test")
		stmts, perrs := ParseProgram(tokens, source, "test")
		if len(perrs) != 0 {
			t.Fatalf("parse errors: %v", perrs)
		}
		result := Resolve(stmts, source, "test")
		if len(result.Errors) != 1 || string(result.Errors[0].Code) != "ClassCantInheritFromItself" {
			t.Fatalf("got errors %v, want exactly ClassCantInheritFromItself", result.Errors)
		}
	})

	t.Run("NonCallableCalled", func(t *testing.T) {
		_, err := execute(t, `1();`)
		if err == nil {
			t.Fatalf("expected a runtime error")
		}
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		_, err := execute(t, `1 / 0;`)
		if err == nil {
			t.Fatalf("expected a runtime error")
		}
	})
}

func TestNonASCIISourceFailsScanning(t *testing.T) {
	_, errs := Scan("var café = 1;", "test")
	if len(errs) != 1 || string(errs[0].Code) != "NonAsciiCharacterFound" {
		t.Fatalf("got errors %v, want exactly NonAsciiCharacterFound", errs)
	}
}

func TestREPLDualModeParse(t *testing.T) {
	// A bare expression parses in expression mode.
	tokens, errs := Scan("1 + 2", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	if _, perrs := ParseExpression(tokens, "1 + 2", "test"); len(perrs) != 0 {
		t.Fatalf("expression-mode parse failed: %v", perrs)
	}

	// A statement fails expression mode and must be retried as a program.
	tokens, errs = Scan("var a = 1;", "test")
	if len(errs) != 0 {
		t.Fatalf("scan errors: %v", errs)
	}
	if _, perrs := ParseExpression(tokens, "var a = 1;", "test"); len(perrs) == 0 {
		t.Fatalf("expected expression-mode parse of a statement to fail")
	}
	if _, perrs := ParseProgram(tokens, "var a = 1;", "test"); len(perrs) != 0 {
		t.Fatalf("statement-mode parse failed: %v", perrs)
	}
}
