package runtime

import (
	"fmt"
	"io"

	"github.com/Lannee/cmlang/value"
)

// This module implements the scope chain as a stack of memory frames.
// Memory frames hold the bindings of active scopes. The bottommost frame
// holds the global bindings and lives as long as the environment.

// MemoryFrame is a memory frame, representing the bindings of a scope.
type MemoryFrame struct {
	Name        string
	SymbolTable *SymbolTable
	Parent      *MemoryFrame
}

// NewMemoryFrame creates a new memory frame.
func NewMemoryFrame(nm string) *MemoryFrame {
	mf := &MemoryFrame{
		Name:        nm,
		SymbolTable: NewSymbolTable(),
	}
	return mf
}

func (mf *MemoryFrame) String() string {
	return fmt.Sprintf("<mem %s [%d]>", mf.Name, mf.SymbolTable.Size())
}

// IsRoot is a predicate: Is this a root frame?
func (mf *MemoryFrame) IsRoot() bool {
	return (mf.Parent == nil)
}

// ---------------------------------------------------------------------------

// Environment is the scope chain: a stack of memory frames, innermost frame
// on top. It is created with exactly one frame, the global frame, which is
// never removed.
//
// An environment is not safe for concurrent use.
type Environment struct {
	memoryFrameBase *MemoryFrame
	memoryFrameTOS  *MemoryFrame
	depth           int
}

// NewEnvironment creates an environment holding an empty global frame.
func NewEnvironment() *Environment {
	env := &Environment{}
	global := NewMemoryFrame("global")
	env.memoryFrameBase = global
	env.memoryFrameTOS = global
	env.depth = 1
	return env
}

// Current gets the innermost memory frame (TOS).
func (env *Environment) Current() *MemoryFrame {
	return env.memoryFrameTOS
}

// Globals gets the outermost memory frame, containing global bindings.
func (env *Environment) Globals() *MemoryFrame {
	return env.memoryFrameBase
}

// Depth returns the number of frames, including the global frame.
func (env *Environment) Depth() int {
	return env.depth
}

// PushScope pushes a new, empty memory frame as TOS. Every call must be
// paired with a call to PopScope.
func (env *Environment) PushScope() *MemoryFrame {
	newmf := NewMemoryFrame(fmt.Sprintf("scope#%d", env.depth))
	newmf.Parent = env.memoryFrameTOS
	env.memoryFrameTOS = newmf // new frame now TOS
	env.depth++
	tracer().P("mem", newmf.Name).Debugf("pushing new memory frame")
	return newmf
}

// PopScope pops the top-most memory frame. Returns the popped frame.
// Popping the global frame is a programming error and will panic.
func (env *Environment) PopScope() *MemoryFrame {
	if env.memoryFrameTOS.IsRoot() {
		panic("attempt to pop global memory frame")
	}
	mf := env.memoryFrameTOS
	tracer().Debugf("popping memory frame [%s]", mf.Name)
	env.memoryFrameTOS = mf.Parent
	env.depth--
	return mf
}

// DeclareGlobal binds name in the global frame, overwriting an existing
// binding.
func (env *Environment) DeclareGlobal(name string, v value.Value) {
	env.memoryFrameBase.SymbolTable.Define(name, v)
}

// DeclareLocal binds name in the innermost frame, overwriting an existing
// binding of this frame.
func (env *Environment) DeclareLocal(name string, v value.Value) {
	env.memoryFrameTOS.SymbolTable.Define(name, v)
}

// Lookup finds the value bound to name, scanning from the innermost frame
// outwards.
func (env *Environment) Lookup(name string) (value.Value, bool) {
	if b, _ := env.resolve(name); b != nil {
		return b.Value, true
	}
	return nil, false
}

// Assign overwrites name with v in every frame which binds name, not just in
// the innermost one. Returns the number of frames updated; 0 means name is
// not bound at all.
func (env *Environment) Assign(name string, v value.Value) int {
	count := 0
	for mf := env.memoryFrameTOS; mf != nil; mf = mf.Parent {
		if b := mf.SymbolTable.Resolve(name); b != nil {
			b.Value = v
			count++
		}
	}
	if count > 1 {
		tracer().Debugf("assignment to '%s' updated %d frames", name, count)
	}
	return count
}

// AssignNearest overwrites name with v in the innermost frame binding name.
// Returns false if name is not bound.
func (env *Environment) AssignNearest(name string, v value.Value) bool {
	b, _ := env.resolve(name)
	if b == nil {
		return false
	}
	b.Value = v
	return true
}

// resolve finds the binding for name and the frame it lives in.
func (env *Environment) resolve(name string) (*Binding, *MemoryFrame) {
	for mf := env.memoryFrameTOS; mf != nil; mf = mf.Parent {
		if b := mf.SymbolTable.Resolve(name); b != nil {
			return b, mf
		}
	}
	return nil, nil
}

// Dump writes all frames, innermost first, and their bindings in name order
// to w. It is meant for diagnostics only.
func (env *Environment) Dump(w io.Writer) {
	for mf := env.memoryFrameTOS; mf != nil; mf = mf.Parent {
		fmt.Fprintf(w, "scope %s\n", mf.Name)
		mf.SymbolTable.Each(func(name string, b *Binding) {
			fmt.Fprintf(w, "  name: %s value: %s\n", name, b.Value.Render())
		})
	}
}
