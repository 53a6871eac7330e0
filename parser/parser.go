/*
Package parser builds cmlang ASTs from source text.

The surface syntax is small:

	program  := { expr [';'] }
	block    := '{' { expr [';'] } '}'
	expr     := 'var' ID '=' expr
	          | ID '=' expr
	          | 'if' '(' expr ')' expr [ 'else' expr ]
	          | 'until' '(' expr ')' expr
	          | compare
	compare  := sum [ ('=='|'!='|'<'|'<='|'>'|'>=') sum ]
	sum      := term { ('+'|'-') term }
	term     := unary { ('*'|'/') unary }
	unary    := '-' unary | primary
	primary  := INT | STRING | ID | ID '(' args ')' | 'print' '(' args ')'
	          | 'tostr' '(' expr ')' | 'toint' '(' expr ')' | '(' expr ')' | block

Comments run from "//" to the end of the line. Scanning is done by a
lexmachine DFA, parsing by recursive descent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package parser

import (
	"strconv"
	"strings"

	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/ast"
	"github.com/Lannee/cmlang/scanner"
	"github.com/Lannee/cmlang/value"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmlang.parser'.
func tracer() tracing.Trace {
	return tracing.Select("cmlang.parser")
}

// Parse parses source text and returns the top-level expressions.
func Parse(source string) ([]ast.Node, error) {
	p, err := newParser(source)
	if err != nil {
		return nil, err
	}
	nodes, err := p.sequence(scanner.EOF)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %d top-level expressions", len(nodes))
	return nodes, nil
}

// ParseProgram parses source text and returns a block containing the
// top-level expressions. Evaluating the block evaluates the program in a
// scope of its own.
func ParseProgram(source string) (*ast.Block, error) {
	nodes, err := Parse(source)
	if err != nil {
		return nil, err
	}
	block := ast.NewBlock(nodes...)
	if len(nodes) > 0 {
		block.SetSpan(nodes[0].Span().Extend(nodes[len(nodes)-1].Span()))
	}
	return block, nil
}

// --- Parser ----------------------------------------------------------------

// parser performs syntax analysis on a slice of tokens.
type parser struct {
	tokens []cmlang.Token
	pos    int
}

func newParser(source string) (*parser, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(source)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("scanner error: %v", e)
		if scanErr == nil {
			scanErr = e
		}
	})
	p := &parser{}
	for {
		tok := scan.NextToken()
		p.tokens = append(p.tokens, tok)
		if tok.TokType() == scanner.EOF {
			break
		}
	}
	if scanErr != nil {
		return nil, cmlang.Errorf(cmlang.SyntaxError, "illegal input: %v", scanErr)
	}
	return p, nil
}

// ---- navigation helpers ----

func (p *parser) peek() cmlang.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) cmlang.Token {
	if p.pos+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos+offset]
}

func (p *parser) advance() cmlang.Token {
	tok := p.peek()
	if tok.TokType() != scanner.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) check(t string) bool {
	return int(p.peek().TokType()) == tokid(t)
}

func (p *parser) expect(t string) (cmlang.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return nil, p.unexpected("'" + t + "'")
}

func (p *parser) unexpected(expected string) error {
	tok := p.peek()
	found := tokenName(int(tok.TokType()))
	if tok.TokType() != scanner.EOF {
		found = "'" + tok.Lexeme() + "'"
	}
	return cmlang.Errorf(cmlang.SyntaxError, "expected %s, found %s", expected, found).At(tok.Span())
}

// located sets the span of n to cover from..the previous token.
func (p *parser) located(n ast.Node, from cmlang.Token) ast.Node {
	to := from
	if p.pos > 0 {
		to = p.tokens[p.pos-1]
	}
	return ast.WithSpan(n, from.Span().Extend(to.Span()))
}

// ---- grammar ----

// sequence parses expressions up to a terminating token type, which is not
// consumed. Semicolons between expressions are optional.
func (p *parser) sequence(end int) ([]ast.Node, error) {
	var nodes []ast.Node
	for {
		for p.check(";") {
			p.advance()
		}
		if int(p.peek().TokType()) == end {
			return nodes, nil
		}
		if p.peek().TokType() == scanner.EOF {
			return nil, p.unexpected("'}'")
		}
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) expr() (ast.Node, error) {
	start := p.peek()
	switch {
	case p.check("var"):
		p.advance()
		id, err := p.expect("ID")
		if err != nil {
			return nil, err
		}
		if _, err = p.expect("="); err != nil {
			return nil, err
		}
		init, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.located(ast.NewVarDecl(id.Lexeme(), init), start), nil
	case p.check("ID") && int(p.peekAt(1).TokType()) == tokid("="):
		p.advance()
		p.advance()
		rhs, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.located(ast.NewAssign(start.Lexeme(), rhs), start), nil
	case p.check("if"):
		p.advance()
		cond, err := p.condition()
		if err != nil {
			return nil, err
		}
		then, err := p.expr()
		if err != nil {
			return nil, err
		}
		var otherwise ast.Node
		if p.check("else") {
			p.advance()
			if otherwise, err = p.expr(); err != nil {
				return nil, err
			}
		}
		return p.located(ast.NewIf(cond, then, otherwise), start), nil
	case p.check("until"):
		p.advance()
		cond, err := p.condition()
		if err != nil {
			return nil, err
		}
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return p.located(ast.NewUntil(cond, body), start), nil
	}
	return p.compare()
}

// condition parses '(' expr ')'.
func (p *parser) condition() (ast.Node, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(")"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *parser) compare() (ast.Node, error) {
	start := p.peek()
	left, err := p.sum()
	if err != nil {
		return nil, err
	}
	if op, ok := p.operator("==", "!=", "<", "<=", ">", ">="); ok {
		right, err := p.sum()
		if err != nil {
			return nil, err
		}
		return p.located(ast.NewBinOp(op, left, right), start), nil
	}
	return left, nil
}

func (p *parser) sum() (ast.Node, error) {
	start := p.peek()
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator("+", "-")
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = p.located(ast.NewBinOp(op, left, right), start)
	}
}

func (p *parser) term() (ast.Node, error) {
	start := p.peek()
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.operator("*", "/")
		if !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = p.located(ast.NewBinOp(op, left, right), start)
	}
}

// operator consumes one of the given operator tokens, if present.
func (p *parser) operator(symbols ...string) (value.Operator, bool) {
	for _, sym := range symbols {
		if p.check(sym) {
			p.advance()
			return value.OperatorFor(sym)
		}
	}
	return 0, false
}

// unary parses negation. A negated integer literal becomes a negative
// literal, any other negated operand x becomes 0 - x.
func (p *parser) unary() (ast.Node, error) {
	if !p.check("-") {
		return p.primary()
	}
	start := p.advance()
	if p.check("NUM") {
		num := p.advance()
		n, err := integer("-"+num.Lexeme(), num)
		if err != nil {
			return nil, err
		}
		return p.located(n, start), nil
	}
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	zero := ast.WithSpan(ast.Int(0), start.Span())
	return p.located(ast.NewBinOp(value.Minus, zero, operand), start), nil
}

func (p *parser) primary() (ast.Node, error) {
	start := p.peek()
	switch {
	case p.check("NUM"):
		p.advance()
		return integer(start.Lexeme(), start)
	case p.check("STRING"):
		p.advance()
		s := strings.TrimSuffix(strings.TrimPrefix(start.Lexeme(), `"`), `"`)
		return ast.WithSpan(ast.Str(s), start.Span()), nil
	case p.check("ID"):
		p.advance()
		if !p.check("(") {
			return ast.WithSpan(ast.NewVar(start.Lexeme()), start.Span()), nil
		}
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		return p.located(ast.NewCall(start.Lexeme(), args...), start), nil
	case p.check("print"):
		p.advance()
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		return p.located(ast.NewPrint(args...), start), nil
	case p.check("tostr"), p.check("toint"):
		p.advance()
		arg, err := p.condition()
		if err != nil {
			return nil, err
		}
		if start.Lexeme() == "tostr" {
			return p.located(ast.NewToText(arg), start), nil
		}
		return p.located(ast.NewToInt(arg), start), nil
	case p.check("("):
		return p.condition()
	case p.check("{"):
		p.advance()
		nodes, err := p.sequence(tokid("}"))
		if err != nil {
			return nil, err
		}
		p.advance() // '}'
		return p.located(ast.NewBlock(nodes...), start), nil
	}
	return nil, p.unexpected("expression")
}

// arguments parses '(' [ expr { ',' expr } ] ')'.
func (p *parser) arguments() ([]ast.Node, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var args []ast.Node
	if p.check(")") {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.check(",") {
			p.advance()
			continue
		}
		if _, err = p.expect(")"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// integer creates an integer literal node from a lexeme.
func integer(lexeme string, tok cmlang.Token) (ast.Node, error) {
	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, cmlang.Errorf(cmlang.SyntaxError, "integer literal %s out of range", lexeme).At(tok.Span())
	}
	return ast.WithSpan(ast.Lit(value.Integer(n)), tok.Span()), nil
}
