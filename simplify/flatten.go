package simplify

import "vslc/syntax"

// flatten assimilates every direct child of the list node n which has the
// same kind as n: the child is replaced by its own children and released.
// Children are simplified before their parents, so an assimilated child never
// holds a list of its own kind and one level of assimilation is enough.
//
// The new child sequence is built in full before it replaces the old one.
// Its length is the old length less one plus the number of grandchildren for
// every assimilated child.
func (s *Simplifier) flatten(n *syntax.Node) {
	var assimilated []*syntax.Node
	for _, child := range n.Children {
		if child != nil && child.Kind == n.Kind {
			assimilated = append(assimilated, child)
		}
	}

	if len(assimilated) == 0 {
		return
	}

	var flat []*syntax.Node
	if s.opts.Order == OrderHoist {
		flat = hoist(n.TakeChildren(), n.Kind)
	} else {
		flat = splice(n.TakeChildren(), n.Kind)
	}

	n.Children = flat
	for _, child := range assimilated {
		s.store.ShallowRelease(child)
	}
}

// splice returns children with each node of the given kind replaced in place
// by its children.  The children are moved out of the replaced nodes.
func splice(children []*syntax.Node, kind syntax.Kind) []*syntax.Node {
	flat := make([]*syntax.Node, 0, flatLen(children, kind))
	for _, child := range children {
		if child != nil && child.Kind == kind {
			flat = append(flat, child.TakeChildren()...)
		} else {
			flat = append(flat, child)
		}
	}

	return flat
}

// hoist returns children with each node of the given kind removed and its
// children moved to the front of the sequence.  Nodes are assimilated in their
// original order, so the children of a later one end up ahead of those of an
// earlier one.  No node of the given kind is skipped, including one that
// directly follows an empty list.
func hoist(children []*syntax.Node, kind syntax.Kind) []*syntax.Node {
	flat := children
	for _, child := range children {
		if child == nil || child.Kind != kind {
			continue
		}

		grandchildren := child.TakeChildren()
		next := make([]*syntax.Node, 0, len(flat)-1+len(grandchildren))
		next = append(next, grandchildren...)
		for _, c := range flat {
			if c != child {
				next = append(next, c)
			}
		}

		flat = next
	}

	return flat
}

func flatLen(children []*syntax.Node, kind syntax.Kind) int {
	length := 0
	for _, child := range children {
		if child != nil && child.Kind == kind {
			length += len(child.Children)
		} else {
			length++
		}
	}

	return length
}
