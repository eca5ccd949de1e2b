package tree

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// AncestorOf returns the nearest ancestor of n whose dynamic type is T.
func AncestorOf[T Node](n Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if t, ok := p.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// DescendantsOf collects n and its descendants of type T in pre-order.
// With all set to false the search does not continue below a match.
func DescendantsOf[T Node](n Node, all bool) []T {
	var out []T
	Walk(n, func(c Node) bool {
		t, ok := c.(T)
		if !ok {
			return true
		}
		out = append(out, t)
		return all
	})
	return out
}

// OfType filters nodes down to those of type T, keeping their order.
func OfType[T Node](nodes []Node) []T {
	var out []T
	for _, n := range nodes {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
