/*
Package cmlang is a tree-walking evaluator for a small imperative expression
language.

The evaluator consumes an already built abstract syntax tree and produces
runtime values and side effects by recursively evaluating nodes against a
scoped variable environment. Package structure is as follows:

■ value: Package value implements the closed set of runtime values (unit,
integer, string) and the operators defined on them.

■ runtime: Package runtime implements the scope chain of memory frames and
the runtime bundle threaded through an evaluation.

■ ast: Package ast implements the node types and their evaluation.

■ scanner, parser: A lexmachine based scanner and a recursive descent parser
building ASTs from source text.

■ cmd/cmlang: A command line driver with a REPL.

The base package contains data types which are used throughout all the other
packages: source positions, tokens and diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cmlang
