// Package diagnostics formats scan, parse, resolution, and runtime errors
// with source context, a line/column header, and a caret pointing at the
// offending position.
package diagnostics

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/cwbudde/glox/internal/token"
)

// Kind groups a Diagnostic by the pipeline stage that produced it.
type Kind int

const (
	ScanError Kind = iota
	ParseError
	ResolveError
	ResolveWarning
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case ScanError:
		return "scan error"
	case ParseError:
		return "parse error"
	case ResolveError:
		return "resolve error"
	case ResolveWarning:
		return "warning"
	case RuntimeError:
		return "runtime error"
	default:
		return "error"
	}
}

// Code is a stable, programmatic identifier for a specific diagnostic,
// mirroring the error taxonomy of spec.md §7.
type Code string

const (
	// Scan errors.
	CodeNonAsciiCharacterFound Code = "NonAsciiCharacterFound"
	CodeUnexpectedCharacter    Code = "UnexpectedCharacter"
	CodeUnterminatedString     Code = "UnterminatedString"

	// Parse errors.
	CodeExpectedToken                         Code = "ExpectedToken"
	CodeExpectedExpression                    Code = "ExpectedExpression"
	CodeExpectedStatement                     Code = "ExpectedStatement"
	CodeInvalidAssignment                     Code = "InvalidAssignment"
	CodeExpectedForLoopInitializerOrSemiColon Code = "ExpectedForLoopInitializerOrSemiColon"
	CodeExpectedForLoopConditionOrSemiColon   Code = "ExpectedForLoopConditionOrSemiColon"
	CodeExpectedRightBraceAfterClassBody      Code = "ExpectedRightBraceAfterClassBody"

	// Resolution errors.
	CodeVariableAlreadyDeclared         Code = "VariableAlreadyDeclared"
	CodeCantReadLocalVarInItsInitializer Code = "CantReadLocalVarInItsInitializer"
	CodeReturnNotInFunction              Code = "ReturnNotInFunction"
	CodeCantReturnValueFromAnInitializer Code = "CantReturnValueFromAnInitializer"
	CodeBreakNotInLoop                   Code = "BreakNotInLoop"
	CodeThisNotInsideClass               Code = "ThisNotInsideClass"
	CodeClassCantInheritFromItself       Code = "ClassCantInheritFromItself"

	// Resolution warnings.
	CodeUnusedLocalVar Code = "UnusedLocalVar"

	// Runtime errors.
	CodeUnknownUnaryExpression                     Code = "UnknownUnaryExpression"
	CodeUnknownBinaryExpression                    Code = "UnknownBinaryExpression"
	CodeUnaryMinusExpectsNumber                    Code = "UnaryMinusExpectsNumber"
	CodeBinaryOperatorExpectsNumbers               Code = "BinaryOperatorExpectsNumbers"
	CodeBinaryPlusExpectsTwoNumbersOrTwoStrings    Code = "BinaryPlusExpectsTwoNumbersOrTwoStrings"
	CodeDivisionByZero                             Code = "DivisionByZero"
	CodeUndefinedVariable                          Code = "UndefinedVariable"
	CodeNonCallableCalled                          Code = "NonCallableCalled"
	CodeCallableArityMismatch                      Code = "CallableArityMismatch"
	CodeOnlyInstancesHaveProperties                Code = "OnlyInstancesHaveProperties"
	CodeUndefinedProperty                          Code = "UndefinedProperty"
	CodeSuperClassMustBeAClass                     Code = "SuperClassMustBeAClass"
)

// Diagnostic is a single structured diagnostic with enough context to be
// formatted with a source-line excerpt and caret.
type Diagnostic struct {
	Kind    Kind
	Code    Code
	Message string
	Pos     token.Position
	Source  string // full source text, for rendering the offending line
	File    string
}

func New(kind Kind, code Code, pos token.Position, source, file, message string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Pos:     pos,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface with an unformatted, single-line form.
func (d *Diagnostic) Error() string {
	if d.File != "" {
		return fmt.Sprintf("%s: %s at %s:%d:%d", d.Kind, d.Message, d.File, d.Pos.Line, d.Pos.Column)
	}
	return fmt.Sprintf("%s: %s at %d:%d", d.Kind, d.Message, d.Pos.Line, d.Pos.Column)
}

// Format renders the diagnostic with a source excerpt and a caret pointing
// at Pos.Column. Column offsets are measured in display cells, not byte or
// rune counts, so carets stay aligned even if a source line contains
// full-width characters copy-pasted into an otherwise-ASCII file.
func (d *Diagnostic) Format() string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", d.Kind, d.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", d.Kind, d.Pos.Line, d.Pos.Column)
	}

	line := sourceLine(d.Source, d.Pos.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+caretOffset(line, d.Pos.Column)))
		sb.WriteString("^\n")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// caretOffset computes the display-cell offset of a 1-based column within
// line, accounting for any wide runes preceding it.
func caretOffset(line string, column int) int {
	if column < 1 {
		return 0
	}
	runes := []rune(line)
	limit := column - 1
	if limit > len(runes) {
		limit = len(runes)
	}
	cells := 0
	for _, r := range runes[:limit] {
		if width.LookupRune(r).Kind() == width.EastAsianWide || width.LookupRune(r).Kind() == width.EastAsianFullwidth {
			cells += 2
		} else {
			cells++
		}
	}
	return cells
}

// Bag accumulates diagnostics from a batching pipeline stage. The resolver
// uses it for its errors and warnings; the scanner and parser collect into
// plain []*Diagnostic slices.
type Bag struct {
	items []*Diagnostic
}

func (b *Bag) Add(d *Diagnostic) { b.items = append(b.items, d) }

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Kind != ResolveWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Items() []*Diagnostic { return b.items }

func (b *Bag) Len() int { return len(b.items) }
