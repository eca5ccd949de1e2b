// Package tree provides the parent/child capability shared by every node of
// the FlowHigh analysis model.
//
// A type becomes tree-capable by embedding Base and binding itself once at
// construction time:
//
//	n := &Attr{}
//	n.Bind(n)
//
// Children are kept in insertion order, which mirrors the order in which the
// builder saw the values. The child list is append-only.
//
// This package imports only the standard library.
package tree
