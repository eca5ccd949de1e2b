package tree

// Registry indexes the nodes produced by one conversion. Ids are assigned in
// registration order starting at 1.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	nodes []Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers n and returns its id. Registering the same node twice keeps
// its first id.
func (r *Registry) Add(n Node) int {
	b := n.base()
	if b.id != 0 && b.id <= len(r.nodes) && r.nodes[b.id-1] == n {
		return b.id
	}
	r.nodes = append(r.nodes, n)
	b.id = len(r.nodes)
	return b.id
}

// Lookup returns the node with the given id.
func (r *Registry) Lookup(id int) (Node, bool) {
	if id < 1 || id > len(r.nodes) {
		return nil, false
	}
	return r.nodes[id-1], true
}

// All returns the registered nodes in id order.
func (r *Registry) All() []Node {
	out := make([]Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int { return len(r.nodes) }

// Find returns the first registered node matching fn.
func (r *Registry) Find(fn func(Node) bool) (Node, bool) {
	for _, n := range r.nodes {
		if fn(n) {
			return n, true
		}
	}
	return nil, false
}
