package ast

import (
	"github.com/Lannee/cmlang"
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
)

// VarDecl declares a variable in the innermost scope.
type VarDecl struct {
	Loc
	Name string
	Init Node
}

// NewVarDecl creates a declaration node.
func NewVarDecl(name string, init Node) *VarDecl {
	return &VarDecl{Name: name, Init: init}
}

// Evaluate evaluates the initializer and binds its value in the innermost
// frame. If the name is bound anywhere in the scope chain already, a warning
// is reported. Evaluates to the initializer's value.
func (n *VarDecl) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	v, err := n.Init.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	if _, found := rt.Env.Lookup(n.Name); found {
		rt.Warn(cmlang.Warningf(cmlang.Redeclaration,
			"redeclaration of variable %q", n.Name).At(n.Span()))
	}
	rt.Env.DeclareLocal(n.Name, v)
	return v, nil
}

// Assign assigns a value to an existing variable.
type Assign struct {
	Loc
	Name string
	Expr Node
}

// NewAssign creates an assignment node.
func NewAssign(name string, expr Node) *Assign {
	return &Assign{Name: name, Expr: expr}
}

// Evaluate evaluates the right hand side and assigns it. Assigning to a name
// which is not bound is a fatal error. Unless the runtime is configured to
// assign to the nearest binding only, every frame binding the name is
// updated. Evaluates to the assigned value.
func (n *Assign) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	v, err := n.Expr.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	var found bool
	if rt.AssignsNearest() {
		found = rt.Env.AssignNearest(n.Name, v)
	} else {
		found = rt.Env.Assign(n.Name, v) > 0
	}
	if !found {
		return nil, cmlang.Errorf(cmlang.UndefinedSymbol, "undefined symbol %q", n.Name).At(n.Span())
	}
	return v, nil
}

// Var is a reference to a variable.
type Var struct {
	Loc
	Name string
}

// NewVar creates a variable reference.
func NewVar(name string) *Var {
	return &Var{Name: name}
}

// Evaluate returns the value bound to the variable. Referencing a name which
// is not bound is a fatal error.
func (n *Var) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	v, found := rt.Env.Lookup(n.Name)
	if !found {
		return nil, cmlang.Errorf(cmlang.UndefinedSymbol, "usage of undefined symbol %q", n.Name).At(n.Span())
	}
	return v, nil
}
