package cmlang

import (
	"fmt"
	"testing"
)

func pos(line, col int) Position {
	return Position{Line: line, Column: col}
}

func TestSpanExtend(t *testing.T) {
	a := MakeSpan(pos(1, 5), pos(1, 8))
	b := MakeSpan(pos(2, 1), pos(2, 4))
	if s := a.Extend(b); s.From() != pos(1, 5) || s.To() != pos(2, 4) {
		t.Errorf("expected (1:5…2:4), got %s", s)
	}
	if s := b.Extend(a); s.From() != pos(1, 5) || s.To() != pos(2, 4) {
		t.Errorf("expected extension to be symmetric, got %s", s)
	}
	if s := a.Extend(Span{}); s != a {
		t.Errorf("expected null span to be neutral, got %s", s)
	}
	if s := (Span{}).Extend(b); s != b {
		t.Errorf("expected null span to be neutral, got %s", s)
	}
}

func TestDiagnosticFormat(t *testing.T) {
	d := Warningf(Redeclaration, "redeclaration of variable %q", "x")
	if d.String() != `Warning: redeclaration of variable "x"` {
		t.Errorf("unexpected warning text %q", d.String())
	}
	e := Errorf(DivisionByZero, "division by zero")
	e.At(MakeSpan(pos(3, 7), pos(3, 12)))
	if e.Error() != "3:7: division by zero" {
		t.Errorf("unexpected error text %q", e.Error())
	}
	if e.String() != "Error: division by zero" {
		t.Errorf("unexpected diagnostic text %q", e.String())
	}
	e.At(MakeSpan(pos(9, 9), pos(9, 10)))
	if e.Span.From() != pos(3, 7) {
		t.Errorf("expected At to keep the first span, got %s", e.Span)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("running: %w", Errorf(TypeMismatch, "mismatch"))
	if k := KindOf(wrapped); k != TypeMismatch {
		t.Errorf("expected TypeMismatch, got %s", k)
	}
	if k := KindOf(fmt.Errorf("plain")); k != NoError {
		t.Errorf("expected NoError for plain errors, got %s", k)
	}
	if k := KindOf(nil); k != NoError {
		t.Errorf("expected NoError for nil, got %s", k)
	}
}
