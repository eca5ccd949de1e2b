// Package model is the object model of a FlowHigh analysis result.
//
// Every element type of the analyser output has a Go type here and a
// builder that assembles it. A builder stores each field on the node and,
// when the value is itself a node, appends it to the node's children, so
// the tree view always mirrors the structural fields in assignment order:
//
//	attr := model.NewAttrBuilder().WithRefAtt("id").Build()
//	out := model.NewOutBuilder().WithExprs([]model.Element{attr}).Build()
//	// out.Exprs[0] == attr, out.Children()[0] == attr
//
// Collections may mix nodes and Raw values. The field keeps every element
// while only the nodes become children.
package model
