package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type harness struct {
	rt       *runtime.Runtime
	out      bytes.Buffer
	warnings []*cmlang.Diagnostic
}

func newHarness(opts ...runtime.Option) *harness {
	h := &harness{}
	opts = append([]runtime.Option{
		runtime.WithOutput(&h.out),
		runtime.WithWarningHandler(func(d *cmlang.Diagnostic) {
			h.warnings = append(h.warnings, d)
		}),
	}, opts...)
	h.rt = runtime.NewRuntime(opts...)
	return h
}

func (h *harness) eval(t *testing.T, n Node) value.Value {
	t.Helper()
	v, err := n.Evaluate(h.rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func (h *harness) fail(t *testing.T, n Node, kind cmlang.ErrorKind) error {
	t.Helper()
	v, err := n.Evaluate(h.rt)
	if err == nil {
		t.Fatalf("expected %s, evaluated to %v", kind, v)
	}
	if v != nil {
		t.Errorf("expected no value on fatal error, got %v", v)
	}
	if k := cmlang.KindOf(err); k != kind {
		t.Errorf("expected error kind %s, got %s (%v)", kind, k, err)
	}
	return err
}

func TestLiteralIsSelfEvaluating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	if v := h.eval(t, Int(42)); v != value.Integer(42) {
		t.Errorf("expected 42, got %v", v)
	}
	if v := h.eval(t, Str("x")); v != value.Text("x") {
		t.Errorf("expected \"x\", got %v", v)
	}
	if v := h.eval(t, Lit(nil)); !value.IsUnit(v) {
		t.Errorf("expected unit, got %v", v)
	}
}

func TestEmptyBlockIsUnit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	if v := h.eval(t, NewBlock()); !value.IsUnit(v) {
		t.Errorf("expected empty block to evaluate to unit, got %v", v)
	}
}

func TestBlockValueIsLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	if v := h.eval(t, NewBlock(Int(1), Int(2), Int(3))); v != value.Integer(3) {
		t.Errorf("expected block to evaluate to 3, got %v", v)
	}
}

func TestBlockScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	block := NewBlock(NewVarDecl("inner", Int(1)), NewVar("inner"))
	if v := h.eval(t, block); v != value.Integer(1) {
		t.Errorf("expected 1, got %v", v)
	}
	if _, found := h.rt.Env.Lookup("inner"); found {
		t.Errorf("expected declaration to vanish with the block's scope")
	}
	if h.rt.Env.Depth() != 1 {
		t.Errorf("expected depth 1 after block, is %d", h.rt.Env.Depth())
	}
}

func TestBlockPopsScopeOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	block := NewBlock(NewBlock(NewVarDecl("a", Int(1)), NewVar("nope")))
	h.fail(t, block, cmlang.UndefinedSymbol)
	if h.rt.Env.Depth() != 1 {
		t.Errorf("expected depth 1 after failed block, is %d", h.rt.Env.Depth())
	}
}

func TestIfBranches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	tests := []struct {
		cond Node
		want value.Value
	}{
		{Int(1), value.Text("then")},
		{Int(0), value.Text("else")},
		{Int(-1), value.Text("else")},
		{Str(""), value.Text("else")},
		{Str("x"), value.Text("then")},
		{Lit(value.Unit), value.Text("else")},
	}
	for _, test := range tests {
		v := h.eval(t, NewIf(test.cond, Str("then"), Str("else")))
		if v != test.want {
			t.Errorf("if %v: expected %v, got %v", test.cond.(*Literal).Value, test.want, v)
		}
	}
	if v := h.eval(t, NewIf(Int(0), Str("then"), nil)); !value.IsUnit(v) {
		t.Errorf("expected if without else to evaluate to unit, got %v", v)
	}
}

func TestIfElsePrints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	// if (0) { print("a") } else { print("b") }
	h := newHarness()
	h.eval(t, NewIf(Int(0),
		NewBlock(NewPrint(Str("a"))),
		NewBlock(NewPrint(Str("b")))))
	if h.out.String() != "b\n" {
		t.Errorf("expected output b, got %q", h.out.String())
	}
}

func TestCountdownLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	// var x = 5; until (x > 0) { print(x); x = x - 1 }
	h := newHarness()
	program := NewBlock(
		NewVarDecl("x", Int(5)),
		NewUntil(
			NewBinOp(value.Greater, NewVar("x"), Int(0)),
			NewBlock(
				NewPrint(NewVar("x")),
				NewAssign("x", NewBinOp(value.Minus, NewVar("x"), Int(1))),
			),
		),
	)
	if v := h.eval(t, program); !value.IsUnit(v) {
		t.Errorf("expected the loop statement to yield unit, got %v", v)
	}
	if h.out.String() != "5\n4\n3\n2\n1\n" {
		t.Errorf("unexpected output %q", h.out.String())
	}
	if len(h.warnings) != 0 {
		t.Errorf("expected no warnings, got %v", h.warnings)
	}
}

func TestLoopNeverEntered(t *testing.T) {
	h := newHarness()
	h.eval(t, NewUntil(Int(0), NewPrint(Str("never"))))
	if h.out.Len() != 0 {
		t.Errorf("expected no output, got %q", h.out.String())
	}
}

func TestRedeclarationWarns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	h.eval(t, NewVarDecl("x", Int(1)))
	v := h.eval(t, NewVarDecl("x", Int(2)))
	if v != value.Integer(2) {
		t.Errorf("expected declaration to evaluate to its value 2, got %v", v)
	}
	if len(h.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(h.warnings))
	}
	w := h.warnings[0]
	if w.Severity != cmlang.Warning || w.Kind != cmlang.Redeclaration {
		t.Errorf("expected a redeclaration warning, got %v", w)
	}
	if w.Message != `redeclaration of variable "x"` {
		t.Errorf("unexpected warning message %q", w.Message)
	}
	if got := h.eval(t, NewVar("x")); got != value.Integer(2) {
		t.Errorf("expected second declaration to win, got %v", got)
	}
}

func TestRedeclarationOfOuterNameWarns(t *testing.T) {
	h := newHarness()
	h.rt.Env.DeclareGlobal("g", value.Integer(1))
	h.eval(t, NewBlock(NewVarDecl("g", Int(2))))
	if len(h.warnings) != 1 {
		t.Errorf("expected shadowing declaration to warn, got %d warnings", len(h.warnings))
	}
	if v, _ := h.rt.Env.Lookup("g"); v != value.Integer(1) {
		t.Errorf("expected global g to stay 1, is %v", v)
	}
}

func TestDeclarationEvaluatesInitializerFirst(t *testing.T) {
	h := newHarness()
	h.fail(t, NewVarDecl("x", NewVar("x")), cmlang.UndefinedSymbol)
	if _, found := h.rt.Env.Lookup("x"); found {
		t.Errorf("expected failed declaration not to bind x")
	}
}

func TestUndefinedReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	err := h.fail(t, NewVar("nope"), cmlang.UndefinedSymbol)
	if err.Error() != `usage of undefined symbol "nope"` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestAssignToUndefined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	err := h.fail(t, NewAssign("nope", Int(1)), cmlang.UndefinedSymbol)
	if err.Error() != `undefined symbol "nope"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if _, found := h.rt.Env.Lookup("nope"); found {
		t.Errorf("failed assignment must not create a binding")
	}
}

// Assignment from an inner scope updates the outer binding and the shadowing
// inner binding alike.
func TestAssignUpdatesAllFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	h.eval(t, NewVarDecl("x", Int(1)))
	v := h.eval(t, NewBlock(
		NewVarDecl("x", Int(2)),
		NewAssign("x", Int(7)),
	))
	if v != value.Integer(7) {
		t.Errorf("expected assignment to evaluate to 7, got %v", v)
	}
	if got, _ := h.rt.Env.Lookup("x"); got != value.Integer(7) {
		t.Errorf("expected outer x to be 7 as well, is %v", got)
	}
}

func TestAssignNearestOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness(runtime.AssignNearest(true))
	h.eval(t, NewVarDecl("x", Int(1)))
	h.eval(t, NewBlock(
		NewVarDecl("x", Int(2)),
		NewAssign("x", Int(7)),
	))
	if got, _ := h.rt.Env.Lookup("x"); got != value.Integer(1) {
		t.Errorf("expected outer x to keep 1, is %v", got)
	}
	h.eval(t, NewBlock(NewAssign("x", Int(5))))
	if got, _ := h.rt.Env.Lookup("x"); got != value.Integer(5) {
		t.Errorf("expected outer x to be assigned from inner block, is %v", got)
	}
}

func TestBinOpTypeMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	err := h.fail(t, NewBinOp(value.Plus, Int(1), Str("a")), cmlang.TypeMismatch)
	for _, word := range []string{"plus", "integer", "string"} {
		if !strings.Contains(err.Error(), word) {
			t.Errorf("expected message to name %q: %v", word, err)
		}
	}
}

func TestBinOpOnUnit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	unit := NewPrint() // prints a newline, evaluates to unit
	err := h.fail(t, NewBinOp(value.Equal, unit, NewPrint()), cmlang.UnsupportedOperation)
	if err.Error() != "cannot perform equal operation on unit type" {
		t.Errorf("unexpected message %q", err.Error())
	}
	h.fail(t, NewBinOp(value.Plus, Lit(value.Unit), Int(1)), cmlang.TypeMismatch)
}

func TestBinOpOperandOrder(t *testing.T) {
	h := newHarness()
	// the left operand is evaluated first
	n := NewBinOp(value.Plus,
		NewBlock(NewPrint(Str("left")), Int(1)),
		NewBlock(NewPrint(Str("right")), Int(2)))
	if v := h.eval(t, n); v != value.Integer(3) {
		t.Errorf("expected 3, got %v", v)
	}
	if h.out.String() != "left\nright\n" {
		t.Errorf("expected left operand to be evaluated first, output %q", h.out.String())
	}
}

func TestBinOpFailuresOfOperators(t *testing.T) {
	h := newHarness()
	h.fail(t, NewBinOp(value.Minus, Str("a"), Str("b")), cmlang.UnsupportedOperation)
	h.fail(t, NewBinOp(value.Divide, Int(1), Int(0)), cmlang.DivisionByZero)
	if v := h.eval(t, NewBinOp(value.Plus, Str("foo"), Str("bar"))); v != value.Text("foobar") {
		t.Errorf("expected foobar, got %v", v)
	}
}

func TestFatalErrorStopsSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	program := NewBlock(
		NewPrint(Str("before")),
		NewBinOp(value.Plus, Int(1), Str("a")),
		NewPrint(Str("after")),
	)
	_, err := Run(program, h.rt)
	if err == nil {
		t.Fatalf("expected the program to fail")
	}
	if h.out.String() != "before\n" {
		t.Errorf("expected evaluation to stop at the error, output %q", h.out.String())
	}
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	v := h.eval(t, NewPrint(Str("a"), Int(1), Lit(value.Unit), Str("b")))
	if !value.IsUnit(v) {
		t.Errorf("expected print to evaluate to unit, got %v", v)
	}
	h.eval(t, NewPrint())
	if h.out.String() != "a1Tb\n\n" {
		t.Errorf("unexpected output %q", h.out.String())
	}
}

func TestConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	if v := h.eval(t, NewToInt(Str("42"))); v != value.Integer(42) {
		t.Errorf("expected 42, got %v", v)
	}
	if v := h.eval(t, NewToInt(Lit(value.Unit))); v != value.Integer(0) {
		t.Errorf("expected unit to convert to 0, got %v", v)
	}
	if v := h.eval(t, NewToInt(Int(-3))); v != value.Integer(-3) {
		t.Errorf("expected -3, got %v", v)
	}
	h.fail(t, NewToInt(Str("x")), cmlang.ConversionError)
	if v := h.eval(t, NewToText(Int(12))); v != value.Text("12") {
		t.Errorf("expected \"12\", got %v", v)
	}
	if v := h.eval(t, NewToText(NewPrint())); v != value.Text("T") {
		t.Errorf("expected \"T\", got %v", v)
	}
	sum := NewBinOp(value.Plus, NewToText(Int(4)), NewToText(Int(2)))
	if v := h.eval(t, NewToInt(sum)); v != value.Integer(42) {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestCallIsNotSupported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness()
	h.fail(t, NewCall("f", NewPrint(Str("arg"))), cmlang.NotImplemented)
	if h.out.Len() != 0 {
		t.Errorf("expected arguments not to be evaluated, output %q", h.out.String())
	}
}

func TestLenientCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cmlang.ast")
	defer teardown()
	//
	h := newHarness(runtime.LenientCalls(true))
	if v := h.eval(t, NewCall("f", NewPrint(Str("arg")))); !value.IsUnit(v) {
		t.Errorf("expected lenient call to evaluate to unit, got %v", v)
	}
	if h.out.Len() != 0 {
		t.Errorf("expected arguments not to be evaluated, output %q", h.out.String())
	}
}

func TestErrorCarriesSpan(t *testing.T) {
	h := newHarness()
	span := cmlang.MakeSpan(cmlang.Position{Line: 3, Column: 5}, cmlang.Position{Line: 3, Column: 10})
	n := WithSpan(NewBinOp(value.Plus, Int(1), Str("a")), span)
	_, err := n.Evaluate(h.rt)
	if err == nil || err.Error() != "3:5: cannot perform plus operation on type integer and type string" {
		t.Errorf("expected error located at 3:5, got %v", err)
	}
}

func TestWalk(t *testing.T) {
	program := NewBlock(
		NewVarDecl("x", Int(1)),
		NewIf(NewVar("x"), NewPrint(Str("yes")), nil),
	)
	var labels []string
	Walk(program, func(n Node, level int) bool {
		label, _ := Describe(n)
		labels = append(labels, strings.Repeat(".", level)+label)
		return true
	})
	want := []string{"block", ".decl x", "..integer 1", ".if", "..var x", "..print", `...string "yes"`}
	if strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected walk order %v", labels)
	}
}
