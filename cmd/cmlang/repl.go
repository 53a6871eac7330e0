package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lannee/cmlang/ast"
	"github.com/Lannee/cmlang/parser"
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/scanner"
	"github.com/Lannee/cmlang/value"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

const (
	prompt     = "cmlang> "
	contPrompt = "...     "
)

// Intp is an interactive session.
type Intp struct {
	rt    *runtime.Runtime
	out   io.Writer
	input strings.Builder // accumulated multi-line input
	depth int             // brace nesting of the accumulated input
}

// NewIntp creates a session which evaluates in the global frame of rt.
func NewIntp(rt *runtime.Runtime, out io.Writer) *Intp {
	rt.Output = out
	rt.SetWarningHandler(report)
	return &Intp{rt: rt, out: out}
}

// repl starts interactive mode.
func repl(conf *Config) int {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".cmlang_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         ":quit",
		HistorySearchFold: true,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		return exitError
	}
	defer rl.Close()
	rt, err := newRuntime(conf, rl.Stdout(), rl.Stderr())
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitError
	}
	intp := NewIntp(rt, rl.Stdout())
	pterm.Info.Println("Welcome to cmlang") // colored welcome message
	tracer().Infof("Quit with :quit or <ctrl>D")
	for {
		if intp.depth > 0 {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			intp.reset()
			continue
		} else if err != nil { // io.EOF
			break
		}
		if quit := intp.Line(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
	return exitOK
}

// Line processes a line of input. It returns true if the session should end.
// Input is collected until all braces are closed, then evaluated.
func (intp *Intp) Line(line string) bool {
	if intp.depth == 0 {
		switch strings.TrimSpace(line) {
		case ":quit":
			return true
		case ":env":
			intp.rt.Env.Dump(intp.out)
			return false
		}
	}
	intp.depth += braces(line)
	intp.input.WriteString(line)
	intp.input.WriteString("\n")
	if intp.depth > 0 {
		return false
	}
	source := intp.input.String()
	intp.reset()
	if strings.TrimSpace(source) != "" {
		intp.Eval(source)
	}
	return false
}

// braces returns the number of opening minus closing brace tokens of a
// line. Braces inside strings and comments do not count. Input errors are
// ignored, as the line may be an incomplete part of the input.
func braces(line string) int {
	lm, err := parser.Lexer()
	if err != nil {
		tracer().Errorf("no lexer: %v", err)
		return 0
	}
	scan, err := lm.Scanner(line)
	if err != nil {
		return 0
	}
	scan.SetErrorHandler(func(error) {})
	_, openID := parser.Token("{")
	_, closeID := parser.Token("}")
	depth := 0
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		switch int(tok.TokType()) {
		case openID:
			depth++
		case closeID:
			depth--
		}
	}
	return depth
}

func (intp *Intp) reset() {
	intp.input.Reset()
	intp.depth = 0
}

// Eval evaluates the top-level expressions of source in the global frame and
// echoes the value of each expression which is not unit. Errors are reported
// and abort the rest of the input, but not the session.
func (intp *Intp) Eval(source string) {
	nodes, err := parser.Parse(source)
	if err != nil {
		reportError(err)
		return
	}
	for _, n := range nodes {
		v, err := ast.Run(n, intp.rt)
		if err != nil {
			reportError(err)
			return
		}
		if !value.IsUnit(v) {
			io.WriteString(intp.out, echo(v)+"\n")
		}
	}
}

// echo formats a value for display, quoting strings.
func echo(v value.Value) string {
	if t, ok := v.(value.Text); ok {
		return t.String()
	}
	return v.Render()
}
