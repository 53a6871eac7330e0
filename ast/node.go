package ast

import (
	"errors"

	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
)

// Node is the evaluation protocol every AST node implements.
type Node interface {
	Evaluate(rt *runtime.Runtime) (value.Value, error)
	Span() cmlang.Span
}

// Statement is a node which is executed for its side effect. Its Evaluate
// executes the statement and then returns unit.
type Statement interface {
	Node
	Execute(rt *runtime.Runtime) error
}

// executed is the common tail of a statement's Evaluate.
func executed(err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return value.Unit, nil
}

// Loc is embedded into nodes and carries their source span.
type Loc struct {
	span cmlang.Span
}

// Span returns the source span of a node. Nodes not created by a parser have
// a null span.
func (l Loc) Span() cmlang.Span {
	return l.span
}

// SetSpan sets the source span of a node.
func (l *Loc) SetSpan(span cmlang.Span) {
	l.span = span
}

// Spanner is implemented by nodes whose span may be set after construction.
type Spanner interface {
	SetSpan(cmlang.Span)
}

// WithSpan sets the span of node n, if possible, and returns n.
func WithSpan(n Node, span cmlang.Span) Node {
	if s, ok := n.(Spanner); ok {
		s.SetSpan(span)
	}
	return n
}

// Run evaluates a root node. It is a convenience for drivers.
func Run(root Node, rt *runtime.Runtime) (value.Value, error) {
	if root == nil {
		return value.Unit, nil
	}
	v, err := root.Evaluate(rt)
	if err != nil {
		tracer().Errorf("evaluation aborted: %v", err)
		return nil, err
	}
	return v, nil
}

// locate attaches the span of the failing node to a diagnostic which does not
// know its position yet.
func locate(err error, span cmlang.Span) error {
	var d *cmlang.Diagnostic
	if errors.As(err, &d) {
		d.At(span)
	}
	return err
}

// --- Literals --------------------------------------------------------------

// Literal is a self-evaluating value node.
type Literal struct {
	Loc
	Value value.Value
}

// Lit creates a literal node for v.
func Lit(v value.Value) *Literal {
	if v == nil {
		v = value.Unit
	}
	return &Literal{Value: v}
}

// Int creates an integer literal.
func Int(n int64) *Literal {
	return Lit(value.Integer(n))
}

// Str creates a string literal.
func Str(s string) *Literal {
	return Lit(value.Text(s))
}

// Evaluate returns the literal's value.
func (l *Literal) Evaluate(*runtime.Runtime) (value.Value, error) {
	return l.Value, nil
}
