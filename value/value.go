package value

import (
	"strconv"
)

// Kind is the tag identifying which variant a value is.
type Kind int8

// Kinds of values.
const (
	UnitKind Kind = iota
	IntegerKind
	TextKind
)

func (k Kind) String() string {
	switch k {
	case UnitKind:
		return "unit"
	case IntegerKind:
		return "integer"
	case TextKind:
		return "string"
	}
	return "undefined"
}

// Value is an immutable runtime datum.
type Value interface {
	Kind() Kind
	Render() string // textual form
	Truth() Integer // coercion used by conditionals
}

// --- Unit ------------------------------------------------------------------

// UnitValue is the type of the singleton Unit.
type UnitValue struct{}

// Unit represents "no value". Statements evaluate to Unit.
var Unit = UnitValue{}

// unitToken is the textual form of Unit.
const unitToken = "T"

func (UnitValue) Kind() Kind     { return UnitKind }
func (UnitValue) Render() string { return unitToken }
func (UnitValue) Truth() Integer { return 0 }
func (UnitValue) String() string { return unitToken }

// IsUnit is a predicate: is v the Unit value?
func IsUnit(v Value) bool {
	return v == nil || v.Kind() == UnitKind
}

// --- Integer ---------------------------------------------------------------

// Integer is a signed 64-bit integer value.
type Integer int64

func (i Integer) Kind() Kind     { return IntegerKind }
func (i Integer) Render() string { return strconv.FormatInt(int64(i), 10) }
func (i Integer) Truth() Integer { return i }
func (i Integer) String() string { return i.Render() }

// Bool converts a Go boolean into the Integer 0 or 1.
func Bool(b bool) Integer {
	if b {
		return 1
	}
	return 0
}

// --- Text ------------------------------------------------------------------

// Text is a string value.
type Text string

func (t Text) Kind() Kind     { return TextKind }
func (t Text) Render() string { return string(t) }
func (t Text) Truth() Integer { return Bool(t != "") }
func (t Text) String() string { return strconv.Quote(string(t)) }

// ---------------------------------------------------------------------------

// IsTrue applies the truth coercion the way conditionals and loops do:
// a value is true if its truth is greater than zero.
func IsTrue(v Value) bool {
	if v == nil {
		return false
	}
	return v.Truth() > 0
}
