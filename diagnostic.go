package cmlang

import (
	"errors"
	"fmt"
)

// Severity of a diagnostic. There are exactly two: warnings are reported and
// evaluation continues, fatal errors abort the whole evaluation.
type Severity int8

// Severities
const (
	Warning Severity = iota
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Fatal:
		return "Error"
	}
	return "unknown"
}

// ErrorKind classifies diagnostics.
type ErrorKind int8

// Kinds of diagnostics. Redeclaration is the only warning kind.
const (
	NoError ErrorKind = iota
	Redeclaration
	UndefinedSymbol
	TypeMismatch
	UnsupportedOperation
	DivisionByZero
	ConversionError
	UnsupportedConversion
	NotImplemented
	SyntaxError
)

var kindNames = [...]string{
	NoError:               "no error",
	Redeclaration:         "redeclaration",
	UndefinedSymbol:       "undefined symbol",
	TypeMismatch:          "type mismatch",
	UnsupportedOperation:  "unsupported operation",
	DivisionByZero:        "division by zero",
	ConversionError:       "conversion error",
	UnsupportedConversion: "unsupported conversion",
	NotImplemented:        "not implemented",
	SyntaxError:           "syntax error",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic is a human readable message of a given severity and kind. Fatal
// diagnostics are returned as errors.
type Diagnostic struct {
	Severity Severity
	Kind     ErrorKind
	Message  string
	Span     Span // null if not created from source
}

var _ error = (*Diagnostic)(nil)

// Error returns the message, prefixed by the source position if known.
func (d *Diagnostic) Error() string {
	if d.Span.IsNull() {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Span.From(), d.Message)
}

// String returns the diagnostic the way it is shown on a diagnostic channel,
// e.g. `Warning: redeclaration of variable "x"`. The position is not part of
// it.
func (d *Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// At sets the span of a diagnostic, if it has none yet. Returns d.
func (d *Diagnostic) At(span Span) *Diagnostic {
	if d.Span.IsNull() {
		d.Span = span
	}
	return d
}

// Errorf creates a fatal diagnostic.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: Fatal,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warningf creates a warning.
func Warningf(kind ErrorKind, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: Warning,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of a diagnostic wrapped in err, or NoError if err
// does not wrap one.
func KindOf(err error) ErrorKind {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d.Kind
	}
	return NoError
}
