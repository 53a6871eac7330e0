package scanner

import (
	"strings"

	"github.com/Lannee/cmlang"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// LMAdapter wraps a compiled lexmachine DFA. Scanners for concrete inputs are
// created with Scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter compiles a lexer from literal operators ("{", "==", …),
// keywords ("if", "var", …) and additional patterns installed by init.
// tokenIds maps literals and keywords to token types.
//
// Literals and keywords are registered first. lexmachine resolves matches of
// equal length in favour of the earlier pattern, so keywords take precedence
// over identifier patterns from init, while longer identifiers ("variable")
// still match as a whole.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	lexer := lexmachine.NewLexer()
	for _, lit := range literals {
		lexer.Add(quote(lit), MakeToken(lit, tokenIds[lit]))
	}
	for _, kw := range keywords {
		lexer.Add([]byte(kw), MakeToken(kw, tokenIds[kw]))
	}
	if init != nil {
		init(lexer)
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("cannot compile DFA: %v", err)
		return nil, err
	}
	return &LMAdapter{Lexer: lexer}, nil
}

// quote escapes every character of a literal operator for use as a pattern.
func quote(lit string) []byte {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return []byte(b.String())
}

// Scanner returns a tokenizer for input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner reads tokens from a single input.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)     // receives input errors
	last    cmlang.Position // end of the last token
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler replaces the error handler. nil restores the default,
// which traces the error.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.Error = h
}

// NextToken returns the next token of the input. Input not matched by any
// pattern is reported to the error handler and skipped. After the end of
// input every call returns an EOF token positioned behind the last token.
func (lms *LMScanner) NextToken() cmlang.Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", cmlang.Span{})
	}
	tok := lms.next()
	if tok == nil {
		return MakeDefaultToken(EOF, "", cmlang.MakeSpan(lms.last, lms.last))
	}
	from := cmlang.Position{Line: tok.StartLine, Column: tok.StartColumn}
	lms.last = cmlang.Position{Line: tok.EndLine, Column: tok.EndColumn + 1}
	tracer().Debugf("token %d %q at %s", tok.Type, tok.Lexeme, from)
	return MakeDefaultToken(cmlang.TokType(tok.Type), string(tok.Lexeme),
		cmlang.MakeSpan(from, lms.last))
}

// next drives the DFA until it yields a token or reaches the end of input.
func (lms *LMScanner) next() *lexmachine.Token {
	for {
		tok, err, eof := lms.scanner.Next()
		switch {
		case eof:
			return nil
		case err != nil:
			lms.Error(err)
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				lms.scanner.TC = ui.FailTC // resume behind the offending input
			}
		case tok == nil: // skipped input at the very end
			return nil
		default:
			return tok.(*lexmachine.Token)
		}
	}
}

// ---------------------------------------------------------------------------

// Skip is a lexmachine action for input without tokens, such as whitespace
// and comments.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken returns a lexmachine action producing tokens of type id.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
