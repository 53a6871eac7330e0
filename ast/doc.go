/*
Package ast implements the nodes of cmlang's abstract syntax tree and their
evaluation.

Every node implements Node: it evaluates to a value.Value, reading and
mutating the runtime's environment on the way and possibly writing to the
runtime's output channel. Statements are nodes which are executed for their
side effect only and always evaluate to unit. Literals evaluate to their value
unchanged.

Evaluation is a synchronous recursive tree walk. A fatal error anywhere in the
tree aborts the whole evaluation: it is returned as an error (a
*cmlang.Diagnostic) and no sibling nodes are evaluated afterwards. Warnings are
reported to the runtime and evaluation continues.

Node types

	Literal              value literal
	Var                  variable reference
	VarDecl              variable declaration (var x = …)
	Assign               assignment (x = …)
	BinOp                binary operator (+ - * / == != > >= < <=)
	Block                sequence of nodes in a new scope ({ … })
	If                   conditional with optional else branch
	Until                loop, running its body while the condition is true
	Print                output builtin
	ToText, ToInt        conversion builtins
	Call                 call of a named function (not supported)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmlang.ast'.
func tracer() tracing.Trace {
	return tracing.Select("cmlang.ast")
}
