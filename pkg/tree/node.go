package tree

// Node is implemented by every tree-capable type. The unexported method keeps
// the set of implementations to types that embed Base.
type Node interface {
	// AddChild appends child to the ordered child sequence and makes the
	// receiver its parent.
	AddChild(child Node)
	// Children returns the children in insertion order.
	Children() []Node
	// Parent returns the node this one was added to, or nil for a root.
	Parent() Node
	// ID returns the registry id, or 0 when the node was never registered.
	ID() int

	base() *Base
}

// Base holds the linkage data. The zero value is a detached root with no
// children; call Bind before adding children so they can point back at the
// owning node.
type Base struct {
	self     Node
	parent   Node
	children []Node
	id       int
}

// Bind records the node that embeds this Base.
func (b *Base) Bind(self Node) { b.self = self }

func (b *Base) base() *Base { return b }

// AddChild implements Node. A nil child is ignored.
func (b *Base) AddChild(child Node) {
	if child == nil {
		return
	}
	b.children = append(b.children, child)
	child.base().parent = b.self
}

// Children implements Node.
func (b *Base) Children() []Node { return b.children }

// Parent implements Node.
func (b *Base) Parent() Node { return b.parent }

// ID implements Node.
func (b *Base) ID() int { return b.id }

// IsRoot reports whether n has no parent.
func IsRoot(n Node) bool { return n.Parent() == nil }

// Depth returns the number of ancestors of n.
func Depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
