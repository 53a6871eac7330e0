package ast

import (
	"io"

	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
)

// --- Print -----------------------------------------------------------------

// Print writes the textual forms of its arguments to the output channel,
// without separators, followed by a newline.
type Print struct {
	Loc
	Args []Node
}

var _ Statement = (*Print)(nil)

// NewPrint creates an output node.
func NewPrint(args ...Node) *Print {
	return &Print{Args: args}
}

// Execute evaluates the arguments in order and prints each one as soon as it
// has been evaluated. Arguments may print themselves.
func (n *Print) Execute(rt *runtime.Runtime) error {
	for _, arg := range n.Args {
		v, err := arg.Evaluate(rt)
		if err != nil {
			return err
		}
		if _, err = io.WriteString(rt.Output, v.Render()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(rt.Output, "\n")
	return err
}

// Evaluate prints and returns unit.
func (n *Print) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	return executed(n.Execute(rt))
}

// --- Conversions -----------------------------------------------------------

// ToText converts its argument to a string.
type ToText struct {
	Loc
	Arg Node
}

// NewToText creates a string conversion node.
func NewToText(arg Node) *ToText {
	return &ToText{Arg: arg}
}

// Evaluate returns the textual form of the argument as a string value.
func (n *ToText) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	v, err := n.Arg.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	return value.ToText(v), nil
}

// ToInt converts its argument to an integer.
type ToInt struct {
	Loc
	Arg Node
}

// NewToInt creates an integer conversion node.
func NewToInt(arg Node) *ToInt {
	return &ToInt{Arg: arg}
}

// Evaluate converts the argument: unit converts to 0, integers are returned
// unchanged, strings are parsed as decimal integer literals. A string which
// is not a valid literal is a fatal conversion error.
func (n *ToInt) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	v, err := n.Arg.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	i, err := value.ToInteger(v)
	if err != nil {
		return nil, locate(err, n.Span())
	}
	return i, nil
}

// --- Call ------------------------------------------------------------------

// Call is a call of a named function. User-defined functions do not exist
// (yet), therefore a call either fails or, with option LenientCalls set on
// the runtime, evaluates to unit. Arguments are never evaluated.
type Call struct {
	Loc
	Callee string
	Args   []Node
}

// NewCall creates a call node.
func NewCall(callee string, args ...Node) *Call {
	return &Call{Callee: callee, Args: args}
}

// Evaluate fails with NotImplemented, or returns unit for lenient runtimes.
func (n *Call) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	if rt.LenientCalls() {
		tracer().Debugf("ignoring call of %q with %d arguments", n.Callee, len(n.Args))
		return value.Unit, nil
	}
	return nil, cmlang.Errorf(cmlang.NotImplemented,
		"call of %q: user-defined functions are not supported", n.Callee).At(n.Span())
}
