/*
Command cmlang runs cmlang programs.

	cmlang [flags] run  <file>   evaluate a program
	cmlang [flags] ast  <file>   display the syntax tree of a program
	cmlang [flags] repl          interactive mode

Flags are

	-config <file>     YAML configuration file
	-trace <level>     trace level [Debug|Info|Error]
	-assign-nearest    assignment updates the innermost binding only
	-lenient-calls     calls evaluate to unit instead of failing
	-dump              print the memory frames after a run

Flags override settings from the configuration file. A configuration file
may pre-seed the global memory frame:

	trace: Error       # Debug | Info | Error
	assign: all        # all | nearest
	calls: strict      # strict | lenient
	globals:
	  answer: 42
	  greeting: hello

In interactive mode, every input is evaluated in the global frame, thus
declarations persist between inputs. Input continues over several lines as
long as braces are open. ":env" prints the memory frames, ":quit" ends the
session.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cmlang.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cmlang.cli")
}
