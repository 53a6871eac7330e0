package ast

import (
	"fmt"
)

// Describe returns a short label for a node and its children in evaluation
// order. It is used for displaying trees.
func Describe(n Node) (string, []Node) {
	switch x := n.(type) {
	case *Literal:
		return fmt.Sprintf("%s %v", x.Value.Kind(), x.Value), nil
	case *Var:
		return "var " + x.Name, nil
	case *VarDecl:
		return "decl " + x.Name, []Node{x.Init}
	case *Assign:
		return "assign " + x.Name, []Node{x.Expr}
	case *BinOp:
		return "op " + x.Op.Symbol(), []Node{x.Left, x.Right}
	case *Block:
		return "block", x.Nodes
	case *If:
		if x.Else == nil {
			return "if", []Node{x.Cond, x.Then}
		}
		return "if-else", []Node{x.Cond, x.Then, x.Else}
	case *Until:
		return "until", []Node{x.Cond, x.Body}
	case *Print:
		return "print", x.Args
	case *ToText:
		return "tostr", []Node{x.Arg}
	case *ToInt:
		return "toint", []Node{x.Arg}
	case *Call:
		return "call " + x.Callee, x.Args
	case nil:
		return "nil", nil
	}
	return fmt.Sprintf("%T", n), nil
}

// Walk calls visit for n and all of its descendants, depth first, parents
// before children. level is the depth of the node, starting at 0 for n.
// Walk descends into the children of a node only if visit returns true.
func Walk(n Node, visit func(n Node, level int) bool) {
	walk(n, 0, visit)
}

func walk(n Node, level int, visit func(Node, int) bool) {
	if !visit(n, level) {
		return
	}
	_, children := Describe(n)
	for _, ch := range children {
		walk(ch, level+1, visit)
	}
}
