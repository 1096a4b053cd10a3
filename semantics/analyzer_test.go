package semantics_test

import (
	"strings"
	"testing"

	"github.com/SpazzPy/AnalizadorSemantico/internals"
	"github.com/SpazzPy/AnalizadorSemantico/lexer"
	"github.com/SpazzPy/AnalizadorSemantico/parser"
	"github.com/SpazzPy/AnalizadorSemantico/semantics"
)

func analyzeSource(t *testing.T, code string) error {
	t.Helper()

	p := parser.NewParser(lexer.NewLexer("", code), "")
	program := p.Parse()
	if program == nil {
		t.Fatalf("ERROR: ast is nil: %v", p.Errors)
	}
	return semantics.Analyze(program)
}

func wantKind(t *testing.T, err error, kind internals.ErrorKind) *internals.Diagnostic {
	t.Helper()

	if err == nil {
		t.Fatal("expected the analysis to fail")
	}
	diag, ok := err.(*internals.Diagnostic)
	if !ok {
		t.Fatalf("expected a diagnostic, got %T", err)
	}
	if diag.Kind != kind {
		t.Fatalf("expected %v, got %v", kind, diag.Kind)
	}
	return diag
}

func TestDeclaredBeforeUse(t *testing.T) {
	code := `
x = 1
y = x + 2
print(y)
`
	if err := analyzeSource(t, code); err != nil {
		t.Errorf("expected the analysis to pass, got %v", err)
	}
}

func TestUndefinedReference(t *testing.T) {
	err := analyzeSource(t, `y = x + 2`)
	wantKind(t, err, internals.UndefinedName)
}

func TestPrintUndefinedArgument(t *testing.T) {
	err := analyzeSource(t, `print(x)`)
	diag := wantKind(t, err, internals.UndefinedName)
	if !strings.Contains(diag.Message, "x") {
		t.Errorf("expected the message to name x, got %q", diag.Message)
	}
}

func TestFunctionParamsCheckInOwnScope(t *testing.T) {
	code := `
fn f(a) {
	a + 1
}
f(2)
`
	if err := analyzeSource(t, code); err != nil {
		t.Errorf("expected the analysis to pass, got %v", err)
	}
}

func TestFunctionParamDoesNotLeak(t *testing.T) {
	code := `
fn f(a) {
	a + 1
}
print(a)
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UndefinedName)
}

func TestFunctionBodyShadowsOuterBinding(t *testing.T) {
	code := `
x = 1
fn f() {
	x = "s"
	s = x + "!"
}
y = x + 1
`
	if err := analyzeSource(t, code); err != nil {
		t.Errorf("expected the analysis to pass, got %v", err)
	}
}

func TestCallUndeclaredName(t *testing.T) {
	err := analyzeSource(t, `foo(1)`)
	wantKind(t, err, internals.UndefinedCall)
}

func TestCallVariable(t *testing.T) {
	code := `
x = 1
x(2)
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UndefinedCall)
}

func TestCallClass(t *testing.T) {
	code := `
class Foo {
}
Foo(1)
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UndefinedCall)
}

func TestCallUserFunction(t *testing.T) {
	code := `
fn greet(name) {
	print(name)
}
greet("bob")
`
	if err := analyzeSource(t, code); err != nil {
		t.Errorf("expected the analysis to pass, got %v", err)
	}
}

func TestTypeMismatchAcrossAssignments(t *testing.T) {
	code := `
x = 1
y = "s"
z = x + y
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.TypeMismatch)
}

func TestIntFloatPromotion(t *testing.T) {
	code := `
x = 1
y = 2.5
z = x + y
`
	if err := analyzeSource(t, code); err != nil {
		t.Errorf("expected the analysis to pass, got %v", err)
	}
}

func TestReassignmentChangesInferredType(t *testing.T) {
	code := `
x = 1
x = "s"
y = x + "!"
`
	if err := analyzeSource(t, code); err != nil {
		t.Errorf("expected the analysis to pass, got %v", err)
	}

	code = `
x = 1
x = "s"
y = x + 1
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.TypeMismatch)
}

func TestMultiTargetAssignment(t *testing.T) {
	err := analyzeSource(t, `a, b = 1`)
	wantKind(t, err, internals.UnsupportedAssignmentTarget)
}

func TestNonNameAssignmentTarget(t *testing.T) {
	err := analyzeSource(t, `1 = 2`)
	wantKind(t, err, internals.UnsupportedAssignmentTarget)
}

func TestClassBodyDoesNotLeak(t *testing.T) {
	code := `
class Point {
	x = 1
}
print(x)
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UndefinedName)
}

func TestImportIsRejected(t *testing.T) {
	err := analyzeSource(t, `import "helpers"`)
	wantKind(t, err, internals.UnsupportedNode)
}

func TestUnaryExpressionIsRejected(t *testing.T) {
	code := `
x = 1
y = -x
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UnsupportedExpression)
}

func TestAssigningFromCallIsRejected(t *testing.T) {
	code := `
fn f() {
}
x = f()
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UnsupportedExpression)
}

func TestFailureInsideBodyKeepsScopesPaired(t *testing.T) {
	code := `
fn broken() {
	y = ghost + 1
}
`
	err := analyzeSource(t, code)
	wantKind(t, err, internals.UndefinedName)
}
