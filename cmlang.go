package cmlang

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanner, as it is up to the language to define them.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an integer literal:
//
//	TokType = Int         // identifier for this kind of tokens
//	Lexeme  = "42"        // lexeme how it appeared in the input stream
//	Value   = nil         // the parser converts the lexeme
//	Span    = (3:7…3:9)   // position in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Positions and spans ---------------------------------------------------

// Position is a 1-based line/column position in source text. The zero
// Position means "unknown".
type Position struct {
	Line   int
	Column int
}

// IsNull is a predicate: is the position unknown?
func (p Position) IsNull() bool {
	return p.Line == 0 && p.Column == 0
}

// Before is true if p is located in front of other.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Column < other.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a small type for capturing the source range of a token or of an AST
// node. A span denotes a start position and the position just behind the end.
type Span [2]Position // (x…y)

// MakeSpan creates a span from two positions.
func MakeSpan(from, to Position) Span {
	return Span{from, to}
}

// From returns the start position of a span.
func (s Span) From() Position {
	return s[0]
}

// To returns the end position of a span.
func (s Span) To() Position {
	return s[1]
}

// IsNull is true for spans of nodes which have not been created from source.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are
// neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0].Before(s[0]) {
		s[0] = other[0]
	}
	if s[1].Before(other[1]) {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%s…%s)", s[0], s[1])
}
