package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/ast"
	"github.com/Lannee/cmlang/parser"
	"github.com/Lannee/cmlang/runtime"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// Exit codes
const (
	exitOK = iota
	exitError
	exitUsage
)

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.New))
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// options collects the command line.
type options struct {
	config        string
	trace         string
	assignNearest bool
	lenientCalls  bool
	dump          bool
}

// execute runs a cmlang command and returns the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cmlang", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := options{}
	fs.StringVar(&opts.config, "config", "", "YAML configuration file")
	fs.StringVar(&opts.trace, "trace", "", "Trace level [Debug|Info|Error]")
	fs.BoolVar(&opts.assignNearest, "assign-nearest", false, "assignment updates the innermost binding only")
	fs.BoolVar(&opts.lenientCalls, "lenient-calls", false, "calls evaluate to unit")
	fs.BoolVar(&opts.dump, "dump", false, "print memory frames after a run")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: cmlang [flags] run <file> | ast <file> | repl")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	conf, err := LoadConfig(opts.config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	fs.Visit(func(f *flag.Flag) { // flags set explicitly override the configuration
		switch f.Name {
		case "trace":
			conf.Trace = opts.trace
		case "assign-nearest":
			conf.Assign = choose(opts.assignNearest, assignNearest, assignAll)
		case "lenient-calls":
			conf.Calls = choose(opts.lenientCalls, callsLenient, callsStrict)
		}
	})
	conf.ApplyTracing()
	tracer().Debugf("configuration is %+v", *conf)
	//
	cmd := fs.Arg(0)
	switch {
	case cmd == "run" && fs.NArg() == 2:
		return runFile(conf, fs.Arg(1), opts.dump, stdout, stderr)
	case cmd == "ast" && fs.NArg() == 2:
		return showAST(fs.Arg(1), stderr)
	case cmd == "repl" && fs.NArg() == 1:
		return repl(conf)
	}
	fs.Usage()
	return exitUsage
}

func choose(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

// newRuntime creates a runtime for a configuration. Output goes to stdout,
// warnings to diag.
func newRuntime(conf *Config, stdout, diag io.Writer) (*runtime.Runtime, error) {
	opts := append([]runtime.Option{
		runtime.WithOutput(stdout),
		runtime.WithDiagnostics(diag),
	}, conf.Options()...)
	rt := runtime.NewRuntime(opts...)
	if err := conf.Seed(rt.Env); err != nil {
		return nil, err
	}
	return rt, nil
}

// runFile evaluates a program file.
func runFile(conf *Config, path string, dump bool, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	rt, err := newRuntime(conf, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	code := exitOK
	if err = runSource(string(source), rt); err != nil {
		printError(stderr, err)
		code = exitError
	}
	if dump {
		rt.Env.Dump(stdout)
	}
	return code
}

// runSource parses and evaluates a complete program.
func runSource(source string, rt *runtime.Runtime) error {
	prog, err := parser.ParseProgram(source)
	if err != nil {
		return err
	}
	_, err = ast.Run(prog, rt)
	return err
}

// printError prints a fatal error in the same format as warnings.
func printError(w io.Writer, err error) {
	var d *cmlang.Diagnostic
	if errors.As(err, &d) {
		fmt.Fprintln(w, d.String())
		tracer().Infof("fatal %s at %s", d.Kind, d.Span)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// showAST displays the syntax tree of a program file.
func showAST(path string, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	nodes, err := parser.Parse(string(source))
	if err != nil {
		printError(stderr, err)
		return exitError
	}
	renderTree(path, nodes)
	return exitOK
}
