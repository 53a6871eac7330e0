package ast

import (
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
)

// BinOp applies a binary operator to two operands.
type BinOp struct {
	Loc
	Op    value.Operator
	Left  Node
	Right Node
}

// NewBinOp creates an operator node.
func NewBinOp(op value.Operator, left, right Node) *BinOp {
	return &BinOp{Op: op, Left: left, Right: right}
}

// Evaluate evaluates the left and then the right operand. Operands of
// differing kinds are a type mismatch, operands of kind unit are not
// supported by any operator. Both are fatal errors, as are failures of the
// operator itself (e.g., subtracting strings or dividing by zero).
func (n *BinOp) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	left, err := n.Left.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	right, err := n.Right.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	lk, rk := left.Kind(), right.Kind()
	if lk != rk {
		return nil, value.MismatchError(n.Op, lk, rk).At(n.Span())
	}
	if lk == value.UnitKind {
		return nil, value.UnitError(n.Op).At(n.Span())
	}
	v, err := value.Apply(n.Op, left, right)
	if err != nil {
		return nil, locate(err, n.Span())
	}
	tracer().Debugf("%s %s %s = %s", left.Render(), n.Op.Symbol(), right.Render(), v.Render())
	return v, nil
}
