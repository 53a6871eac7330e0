package value

import (
	"strings"

	"github.com/Lannee/cmlang"
)

// Operator is a binary operator.
type Operator int8

// The binary operators, in the order of the operator table.
const (
	Plus Operator = iota
	Minus
	Multiply
	Divide
	Equal
	NotEqual
	Greater
	GreaterEqual
	Less
	LessEqual
)

var opNames = [...]string{
	Plus:         "plus",
	Minus:        "minus",
	Multiply:     "multiply",
	Divide:       "divide",
	Equal:        "equal",
	NotEqual:     "not equal",
	Greater:      "greater",
	GreaterEqual: "greater or equal",
	Less:         "less",
	LessEqual:    "less or equal",
}

var opSymbols = [...]string{
	Plus:         "+",
	Minus:        "-",
	Multiply:     "*",
	Divide:       "/",
	Equal:        "==",
	NotEqual:     "!=",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
}

// String returns the name of an operator as used in diagnostics.
func (op Operator) String() string {
	if op.valid() {
		return opNames[op]
	}
	return "unknown"
}

// Symbol returns the surface syntax of an operator.
func (op Operator) Symbol() string {
	if op.valid() {
		return opSymbols[op]
	}
	return "?"
}

// IsComparison is true for the six comparison operators.
func (op Operator) IsComparison() bool {
	return op >= Equal && op <= LessEqual
}

func (op Operator) valid() bool {
	return op >= Plus && op <= LessEqual
}

// OperatorFor finds an operator by its surface syntax.
func OperatorFor(symbol string) (Operator, bool) {
	for op, s := range opSymbols {
		if s == symbol {
			return Operator(op), true
		}
	}
	return 0, false
}

// --- Dispatch --------------------------------------------------------------

// Apply applies a binary operator to two values. Dispatch is a match over
// (left kind, right kind, operator):
//
//	integer × integer   all ten operators
//	string  × string    plus (concatenation) and the comparisons
//	unit    × any       UnsupportedOperation
//	differing kinds     TypeMismatch
//
// Failures are returned as fatal *cmlang.Diagnostic values without a span.
func Apply(op Operator, left, right Value) (Value, error) {
	if !op.valid() {
		return nil, cmlang.Errorf(cmlang.UnsupportedOperation, "unknown operator %d", int(op))
	}
	lk, rk := left.Kind(), right.Kind()
	if lk != rk {
		return nil, MismatchError(op, lk, rk)
	}
	switch lk {
	case IntegerKind:
		return applyInteger(op, left.(Integer), right.(Integer))
	case TextKind:
		return applyText(op, left.(Text), right.(Text))
	case UnitKind:
		return nil, UnitError(op)
	}
	tracer().Errorf("no dispatch for %s on kind %s", op, lk)
	return nil, cmlang.Errorf(cmlang.UnsupportedOperation, "unsupported operation for %s type", lk)
}

// MismatchError is the diagnostic for operands of differing kinds.
func MismatchError(op Operator, left, right Kind) *cmlang.Diagnostic {
	return cmlang.Errorf(cmlang.TypeMismatch,
		"cannot perform %s operation on type %s and type %s", op, left, right)
}

// UnitError is the diagnostic for an operator applied to Unit.
func UnitError(op Operator) *cmlang.Diagnostic {
	return cmlang.Errorf(cmlang.UnsupportedOperation,
		"cannot perform %s operation on unit type", op)
}

// Integer arithmetic wraps around on overflow, as int64 arithmetic does in Go.
// This includes MinInt64 / -1.
func applyInteger(op Operator, a, b Integer) (Value, error) {
	switch op {
	case Plus:
		return a + b, nil
	case Minus:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return nil, cmlang.Errorf(cmlang.DivisionByZero, "division by zero")
		}
		return a / b, nil
	case Equal:
		return Bool(a == b), nil
	case NotEqual:
		return Bool(a != b), nil
	case Greater:
		return Bool(a > b), nil
	case GreaterEqual:
		return Bool(a >= b), nil
	case Less:
		return Bool(a < b), nil
	case LessEqual:
		return Bool(a <= b), nil
	}
	return nil, cmlang.Errorf(cmlang.UnsupportedOperation, "unsupported operation for integer type")
}

func applyText(op Operator, a, b Text) (Value, error) {
	if op == Plus {
		var sb strings.Builder
		sb.Grow(len(a) + len(b))
		sb.WriteString(string(a))
		sb.WriteString(string(b))
		return Text(sb.String()), nil
	}
	if !op.IsComparison() {
		return nil, cmlang.Errorf(cmlang.UnsupportedOperation, "unsupported operation for string type")
	}
	c := strings.Compare(string(a), string(b))
	switch op {
	case Equal:
		return Bool(c == 0), nil
	case NotEqual:
		return Bool(c != 0), nil
	case Greater:
		return Bool(c > 0), nil
	case GreaterEqual:
		return Bool(c >= 0), nil
	case Less:
		return Bool(c < 0), nil
	default: // LessEqual
		return Bool(c <= 0), nil
	}
}
