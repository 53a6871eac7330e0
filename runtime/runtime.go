/*
Package runtime implements an interpreter runtime, consisting of
memory frames forming a scope chain, and the runtime bundle which is threaded
through an evaluation.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Memory Frames

This module implements a stack of memory frames. Every frame holds a symbol
table of bindings. The bottom frame is the global frame; blocks push and pop
frames on top of it.

Runtime

A Runtime bundles the environment with the output channel, the diagnostic
channel and the evaluation options. Nodes receive the Runtime on every
evaluation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package runtime

import (
	"fmt"
	"io"
	"os"

	"github.com/Lannee/cmlang"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmlang.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("cmlang.runtime")
}

// Runtime is a type implementing a runtime environment for an interpreter.
type Runtime struct {
	Env         *Environment // scope chain
	Output      io.Writer    // output channel for print
	Diagnostics io.Writer    // diagnostic channel for warnings
	warn        func(*cmlang.Diagnostic)
	opts        options
}

// options are the evaluation options of a runtime.
type options struct {
	assignNearest bool
	lenientCalls  bool
}

// NewRuntime constructs a new runtime environment, initialized with a fresh
// environment holding an empty global frame. Output defaults to stdout,
// diagnostics default to stderr.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		Env:         NewEnvironment(),
		Output:      os.Stdout,
		Diagnostics: os.Stderr,
	}
	rt.warn = rt.printWarning
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Warn reports a warning. Evaluation continues afterwards.
func (rt *Runtime) Warn(d *cmlang.Diagnostic) {
	tracer().Infof("%s", d.Error())
	rt.warn(d)
}

// SetWarningHandler sets a handler for warnings. A nil handler restores the
// default, which prints warnings to the diagnostic channel.
func (rt *Runtime) SetWarningHandler(h func(*cmlang.Diagnostic)) {
	if h == nil {
		rt.warn = rt.printWarning
		return
	}
	rt.warn = h
}

// Default warning reporting function
func (rt *Runtime) printWarning(d *cmlang.Diagnostic) {
	if rt.Diagnostics != nil {
		fmt.Fprintln(rt.Diagnostics, d.String())
	}
}

// AssignsNearest is true if assignments update only the innermost binding of
// a name instead of every binding in the scope chain.
func (rt *Runtime) AssignsNearest() bool {
	return rt.opts.assignNearest
}

// LenientCalls is true if calls evaluate to unit instead of failing.
func (rt *Runtime) LenientCalls() bool {
	return rt.opts.lenientCalls
}

// --- Runtime options -------------------------------------------------------

// Option configures a runtime.
type Option func(rt *Runtime)

// WithOutput sets the output channel.
func WithOutput(w io.Writer) Option {
	return func(rt *Runtime) {
		rt.Output = w
	}
}

// WithDiagnostics sets the diagnostic channel.
func WithDiagnostics(w io.Writer) Option {
	return func(rt *Runtime) {
		rt.Diagnostics = w
	}
}

// WithWarningHandler sets a handler for warnings, see SetWarningHandler.
func WithWarningHandler(h func(*cmlang.Diagnostic)) Option {
	return func(rt *Runtime) {
		rt.SetWarningHandler(h)
	}
}

// WithEnvironment replaces the fresh environment by env, e.g. to share
// globals between evaluations.
func WithEnvironment(env *Environment) Option {
	return func(rt *Runtime) {
		if env != nil {
			rt.Env = env
		}
	}
}

// AssignNearest sets or clears option AssignNearest: assignments update the
// innermost binding only. It is off by default; assignments then update
// every frame binding the name.
func AssignNearest(b bool) Option {
	return func(rt *Runtime) {
		rt.opts.assignNearest = b
	}
}

// LenientCalls sets or clears option LenientCalls: calls evaluate to unit
// without evaluating their arguments. It is off by default; calls then fail,
// as user-defined functions are not supported.
func LenientCalls(b bool) Option {
	return func(rt *Runtime) {
		rt.opts.lenientCalls = b
	}
}
