/*
Package value implements the runtime values of cmlang.

The set of values is closed: Unit, Integer and Text. Values are immutable;
operators always produce new values. Binary operators are dispatched by an
explicit match over the kinds of both operands and the operator (see Apply),
which yields either a result value or a typed diagnostic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package value

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmlang.value'.
func tracer() tracing.Trace {
	return tracing.Select("cmlang.value")
}
