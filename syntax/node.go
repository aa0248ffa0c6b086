package syntax

import (
	"strconv"

	"vslc/report"
)

// Payload is the kind-dependent data carried by a node.  It is either a
// Number, a Text, or nil for no payload.
type Payload interface {
	payload()
}

// Number is the payload of a NUMBER_DATA node.
type Number int64

// Text is the payload of identifier, string and operator nodes.  For operator
// nodes it is the operator symbol.
type Text string

func (Number) payload() {}
func (Text) payload()   {}

// Node is a single element of the syntax tree.  Each node exclusively owns its
// children: no node is ever held by two live parents.
type Node struct {
	Kind    Kind
	Payload Payload

	// Children is the ordered child sequence.  A nil entry is an empty slot:
	// an elided optional grammar element such as the value of a bare return.
	Children []*Node

	// Span is the source text the node was read from.  It may be nil.
	Span *report.TextSpan

	// Entry is the symbol table entry attached by later passes.  The tree
	// core never reads or writes it.
	Entry interface{}
}

// Number returns the node's integer payload.
func (n *Node) Number() (int64, bool) {
	v, ok := n.Payload.(Number)
	return int64(v), ok
}

// Text returns the node's text payload.
func (n *Node) Text() (string, bool) {
	v, ok := n.Payload.(Text)
	return string(v), ok
}

// IsLiteralNumber returns whether the node is a NUMBER_DATA node carrying its
// value.
func (n *Node) IsLiteralNumber() bool {
	if n == nil || n.Kind != NumberData {
		return false
	}

	_, ok := n.Payload.(Number)
	return ok
}

// TakeChildren moves the child sequence out of the node and returns it.  The
// node is left with no children and the caller becomes the owner of every
// returned subtree.
func (n *Node) TakeChildren() []*Node {
	children := n.Children
	n.Children = nil
	return children
}

// Label returns the node as it appears on a dump line: its kind name followed
// by its payload in parentheses if it has one.
func (n *Node) Label() string {
	switch p := n.Payload.(type) {
	case Number:
		return n.Kind.String() + "(" + strconv.FormatInt(int64(p), 10) + ")"
	case Text:
		return n.Kind.String() + "(" + string(p) + ")"
	default:
		return n.Kind.String()
	}
}

// Walk calls fn for every node of the subtree rooted at n in preorder.  Empty
// slots are skipped.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}

	fn(n)
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func Count(n *Node) int {
	count := 0
	Walk(n, func(*Node) { count++ })
	return count
}
