package runtime

import (
	"fmt"

	"github.com/Lannee/cmlang/value"
	"github.com/emirpasic/gods/maps/treemap"
)

// Symbol table for variables. Every memory frame carries one.

// --- Bindings --------------------------------------------------------------

// Binding is the entry type of symbol tables: a name bound to a value.
// Bindings are mutable; assignment overwrites the value in place.
type Binding struct {
	name  string
	Value value.Value
}

// NewBinding creates a new binding.
func NewBinding(nm string, v value.Value) *Binding {
	if v == nil {
		v = value.Unit
	}
	return &Binding{name: nm, Value: v}
}

// Name gets the binding's name.
func (b *Binding) Name() string {
	return b.name
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	return fmt.Sprintf("<binding '%s'=%s>", b.name, b.Value.Render())
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store bindings (map-like semantics).
// Iteration is ordered by name.
type SymbolTable struct {
	table *treemap.Map
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// Resolve checks for a binding in the symbol table.
// Returns a binding or nil.
func (t *SymbolTable) Resolve(name string) *Binding {
	b, found := t.table.Get(name)
	if !found {
		return nil
	}
	return b.(*Binding)
}

// Define creates a new binding in the symbol table.
// Overwrites an existing binding with this name, if any.
// Returns the new binding and the previously stored binding (or nil).
func (t *SymbolTable) Define(name string, v value.Value) (*Binding, *Binding) {
	b := NewBinding(name, v)
	old := t.Insert(b)
	return b, old
}

// Insert inserts a pre-created binding. Returns the binding it replaced, if
// any.
func (t *SymbolTable) Insert(b *Binding) *Binding {
	old := t.Resolve(b.name)
	t.table.Put(b.name, b)
	return old
}

// Size counts the bindings in a symbol table.
func (t *SymbolTable) Size() int {
	return t.table.Size()
}

// Each iterates over the bindings in name order, executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Binding)) {
	t.table.Each(func(k, v interface{}) {
		mapper(k.(string), v.(*Binding))
	})
}
