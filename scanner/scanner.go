/*
Package scanner defines an interface for scanners to be used with the parser
of cmlang, and an adapter for the lexmachine scanner generator implementing it.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals, keywords and regular
expressions:

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// scanner.Skip      is a pre-defined action which ignores the scanned match
		// scanner.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   cmlang.Token
	}

	LM, err := scanner.NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence and read until EOF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/Lannee/cmlang"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmlang.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cmlang.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	String  = scanner.String
	Comment = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cmlang.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner.
type DefaultToken struct {
	kind   cmlang.TokType
	lexeme string
	Val    interface{}
	span   cmlang.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ cmlang.TokType, lexeme string, span cmlang.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() cmlang.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() cmlang.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d %q %s>", t.kind, t.lexeme, t.span.From())
}
