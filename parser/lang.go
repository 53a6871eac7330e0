package parser

import (
	"fmt"
	"sync"

	"github.com/Lannee/cmlang/scanner"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal lexemes
var literals = []string{"(", ")", "{", "}", ";", ",",
	"==", "!=", "<=", ">=", "<", ">", "=", "+", "-", "*", "/"}

// The keyword tokens
var keywords = []string{"var", "if", "else", "until", "print", "tostr", "toint"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types
var tokenNames map[int]string

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["COMMENT"] = scanner.Comment
		tokenIds["ID"] = scanner.Ident
		tokenIds["NUM"] = scanner.Int
		tokenIds["STRING"] = scanner.String
		id := 10
		for _, lit := range literals {
			tokenIds[lit] = id
			id++
		}
		for _, kw := range keywords {
			tokenIds[kw] = id
			id++
		}
		tokenNames = make(map[int]string, len(tokenIds)+1)
		for name, id := range tokenIds {
			tokenNames[id] = name
		}
		tokenNames[scanner.EOF] = "end of input"
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

// tokid is a shortcut for the id of a known token.
func tokid(t string) int {
	_, id := Token(t)
	return id
}

// tokenName returns a printable name for a token type.
func tokenName(id int) string {
	initTokens()
	if name, ok := tokenNames[id]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", id)
}

var lexer *scanner.LMAdapter
var lexerErr error
var lexerOnce sync.Once

// Lexer returns the lexmachine lexer for cmlang. The DFA is compiled once.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*`), scanner.Skip) // skip comments
			lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING"))
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
			lexer.Add([]byte(`[0-9]+`), makeToken("NUM"))
			lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
		}
		lexer, lexerErr = scanner.NewLMAdapter(init, literals, keywords, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return scanner.MakeToken(s, id)
}
