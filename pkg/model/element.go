package model

import (
	"fmt"

	"github.com/leapstack-labs/flowhigh/pkg/tree"
)

// Element is a value that can occupy a field of an analysis node. Every
// node kind is an Element, and so is Raw. The set is closed.
type Element interface {
	element()
}

// Node is an Element that also takes part in the tree.
type Node interface {
	Element
	tree.Node

	// Kind returns the element type name used on the wire, e.g. "Attr".
	Kind() string
	// Has reports whether the named wire field was assigned by a builder.
	Has(field string) bool
	// Fields returns the assigned wire fields in first-assignment order.
	Fields() []string
}

// Stmt is implemented by Statement and every statement kind embedding it.
type Stmt interface {
	Node
	Stmt() *Statement
}

// Raw wraps a value that is not a node: a string inside a mixed
// collection, or a JSON object without an element type.
type Raw struct {
	Value any
}

func (Raw) element() {}

func (r Raw) String() string {
	return fmt.Sprint(r.Value)
}

// DialectExtension holds dialect specific attributes of a statement. It is
// stored as-is and never becomes a child.
type DialectExtension map[string]any

// node is embedded by every node kind.
type node struct {
	tree.Base
	fields []string
}

func (*node) element() {}

func (n *node) set(field string) {
	for _, f := range n.fields {
		if f == field {
			return
		}
	}
	n.fields = append(n.fields, field)
}

// Has implements Node.
func (n *node) Has(field string) bool {
	for _, f := range n.fields {
		if f == field {
			return true
		}
	}
	return false
}

// Fields implements Node.
func (n *node) Fields() []string {
	out := make([]string, len(n.fields))
	copy(out, n.fields)
	return out
}

// attach makes e a child of parent when e is a node. Typed setters skip
// nil pointers before reaching here, so e is either nil or a built node.
func attach(parent tree.Node, e Element) {
	c, ok := e.(Node)
	if !ok {
		return
	}
	parent.AddChild(c)
}

func attachAll(parent tree.Node, elems []Element) {
	for _, e := range elems {
		attach(parent, e)
	}
}
