package main

import (
	"errors"

	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/ast"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// report displays a diagnostic in interactive mode.
func report(d *cmlang.Diagnostic) {
	msg := d.Message
	if !d.Span.IsNull() {
		msg = d.Span.From().String() + ": " + msg
	}
	if d.Severity == cmlang.Warning {
		pterm.Warning.Println(msg)
		return
	}
	pterm.Error.Println(msg)
}

// reportError displays an error in interactive mode.
func reportError(err error) {
	var d *cmlang.Diagnostic
	if errors.As(err, &d) {
		report(d)
		return
	}
	pterm.Error.Println(err.Error())
}

// leveledList flattens a syntax tree into a list of labels with indentation
// levels, parents before children.
func leveledList(nodes []ast.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, n := range nodes {
		ast.Walk(n, func(n ast.Node, level int) bool {
			label, _ := ast.Describe(n)
			ll = append(ll, pterm.LeveledListItem{Level: level, Text: label})
			return true
		})
	}
	return ll
}

// renderTree prints a syntax tree on the terminal.
func renderTree(title string, nodes []ast.Node) {
	pterm.Println(title)
	ll := leveledList(nodes)
	tracer().Debugf("|ll| = %d", len(ll))
	if len(ll) == 0 {
		return
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
