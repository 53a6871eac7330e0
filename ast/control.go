package ast

import (
	"github.com/Lannee/cmlang/runtime"
	"github.com/Lannee/cmlang/value"
)

// --- Block -----------------------------------------------------------------

// Block is a sequence of nodes, evaluated in a scope of its own. It evaluates
// to the value of its last node, or to unit if it is empty.
type Block struct {
	Loc
	Nodes []Node
}

// NewBlock creates a block node.
func NewBlock(nodes ...Node) *Block {
	return &Block{Nodes: nodes}
}

// Evaluate pushes a new scope, evaluates the nodes of the block in order and
// pops the scope again. The scope is popped on every exit, including a fatal
// error of one of the nodes.
func (b *Block) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	rt.Env.PushScope()
	defer rt.Env.PopScope()
	var last value.Value = value.Unit
	for _, n := range b.Nodes {
		v, err := n.Evaluate(rt)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// --- If --------------------------------------------------------------------

// If is a conditional. Else is optional and may be nil.
type If struct {
	Loc
	Cond Node
	Then Node
	Else Node
}

// NewIf creates a conditional node. otherwise may be nil.
func NewIf(cond, then, otherwise Node) *If {
	return &If{Cond: cond, Then: then, Else: otherwise}
}

// Evaluate evaluates the condition and coerces it to its truth. If the truth
// is greater than zero, If evaluates to the Then branch, otherwise to the
// Else branch, or to unit if there is none.
func (n *If) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	cond, err := n.Cond.Evaluate(rt)
	if err != nil {
		return nil, err
	}
	if value.IsTrue(cond) {
		return n.Then.Evaluate(rt)
	}
	if n.Else != nil {
		return n.Else.Evaluate(rt)
	}
	return value.Unit, nil
}

// --- Until -----------------------------------------------------------------

// Until is a loop statement which evaluates its body as long as the
// condition is true (truth greater than zero). Despite its name it checks
// the condition before every iteration, like a while loop.
type Until struct {
	Loc
	Cond Node
	Body Node
}

var _ Statement = (*Until)(nil)

// NewUntil creates a loop node.
func NewUntil(cond, body Node) *Until {
	return &Until{Cond: cond, Body: body}
}

// Execute runs the loop. Values of the body are discarded. There is no bound
// on the number of iterations.
func (n *Until) Execute(rt *runtime.Runtime) error {
	iterations := 0
	for {
		cond, err := n.Cond.Evaluate(rt)
		if err != nil {
			return err
		}
		if !value.IsTrue(cond) {
			break
		}
		if _, err = n.Body.Evaluate(rt); err != nil {
			return err
		}
		iterations++
	}
	tracer().Debugf("loop terminated after %d iterations", iterations)
	return nil
}

// Evaluate executes the loop and returns unit.
func (n *Until) Evaluate(rt *runtime.Runtime) (value.Value, error) {
	return executed(n.Execute(rt))
}
