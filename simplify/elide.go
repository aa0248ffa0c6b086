package simplify

import "vslc/syntax"

// elide replaces the node in slot by its only child if the node is pure
// grammar scaffolding: it carries no payload, has exactly one non-empty child
// slot and is not one of the kinds whose single-child shape is meaningful.
// The wrapper is released and its child is owned by the slot's holder.  It
// reports whether the node was elided.
func (s *Simplifier) elide(slot **syntax.Node) bool {
	n := *slot
	if n.Payload != nil || len(n.Children) != 1 || n.Children[0] == nil || n.Kind.IsExempt() {
		return false
	}

	*slot = n.TakeChildren()[0]
	s.store.ShallowRelease(n)
	return true
}
