// Package simplify normalizes a raw syntax tree between parsing and semantic
// analysis.  In a single post-order walk it removes payload-less wrapper
// nodes, flattens nested lists and folds constant operator applications.
package simplify

import (
	"vslc/syntax"
)

// FlattenOrder determines where the children of an assimilated list node are
// placed in its parent's child sequence.
type FlattenOrder int

const (
	// OrderSplice puts the children of an assimilated list node at the
	// position the node itself occupied.
	OrderSplice FlattenOrder = iota

	// OrderHoist moves the children of each assimilated list node ahead of
	// every other child of the parent.  It follows the ordering of older vslc
	// releases except that every same-kind child is assimilated: those
	// releases skipped the child following an assimilated empty list.
	OrderHoist
)

func (o FlattenOrder) String() string {
	if o == OrderHoist {
		return "hoist"
	}

	return "splice"
}

// FlattenOrderFromName returns the flatten order with the given name.
func FlattenOrderFromName(name string) (FlattenOrder, bool) {
	switch name {
	case "splice", "":
		return OrderSplice, true
	case "hoist":
		return OrderHoist, true
	}

	return OrderSplice, false
}

// Options selects which rewrites the simplifier performs.
type Options struct {
	Elide   bool
	Flatten bool
	Fold    bool

	// Order is the list flattening order.
	Order FlattenOrder
}

// DefaultOptions returns options enabling every rewrite with splice ordering.
func DefaultOptions() Options {
	return Options{Elide: true, Flatten: true, Fold: true, Order: OrderSplice}
}

// Simplifier rewrites trees whose nodes belong to a single store.  A
// Simplifier may be reused for several trees of the same store but must not
// be used from more than one goroutine at a time.
type Simplifier struct {
	store *syntax.Store
	opts  Options

	// errs accumulates the fold errors of the current walk.
	errs FoldErrors
}

// New creates a new simplifier releasing and constructing nodes through store.
func New(store *syntax.Store, opts Options) *Simplifier {
	return &Simplifier{store: store, opts: opts}
}

// Simplify simplifies the tree rooted at root with the default options and
// returns the new root.  See (*Simplifier).Simplify.
func Simplify(store *syntax.Store, root *syntax.Node) (*syntax.Node, error) {
	return New(store, DefaultOptions()).Simplify(root)
}

// Simplify rewrites the tree rooted at root in place and returns its root,
// which may be a different node than root.  Nodes removed from the tree are
// released through the simplifier's store.
//
// Nodes which cannot be folded are left as they are and the walk continues;
// the returned error is then a FoldErrors listing each of them.  If the tree
// is malformed, simplification stops at the offending node and a
// *ContractError is returned along with the partially simplified tree.
func (s *Simplifier) Simplify(root *syntax.Node) (result *syntax.Node, err error) {
	s.errs = nil

	defer func() {
		if x := recover(); x != nil {
			cerr, ok := x.(*ContractError)
			if !ok {
				panic(x)
			}

			result, err = root, cerr
		}
	}()

	s.simplifySlot(&root)

	if len(s.errs) > 0 {
		return root, s.errs
	}

	return root, nil
}

// simplifySlot simplifies the subtree held in slot, children first, and then
// applies each enabled rewrite to the node now in slot.  Once elision has
// replaced the node by its child, the walk stops at that slot: the child has
// already been through every rewrite.
func (s *Simplifier) simplifySlot(slot **syntax.Node) {
	n := *slot
	if n == nil {
		return
	}

	for i := range n.Children {
		s.simplifySlot(&n.Children[i])
	}

	checkShape(n)

	if s.opts.Elide && s.elide(slot) {
		return
	}

	if s.opts.Flatten && n.Kind.IsList() {
		s.flatten(n)

		// Flattening can leave a list with a single item.
		if s.opts.Elide && s.elide(slot) {
			return
		}
	}

	if s.opts.Fold && n.Kind.IsOperator() {
		s.fold(slot)
	}
}

// checkShape fails fast on nodes whose structure does not match what their
// kind promises to the passes that follow.
func checkShape(n *syntax.Node) {
	switch n.Payload.(type) {
	case syntax.Number:
		if n.Kind != syntax.NumberData {
			violation(n, "integer payload on a %s node", n.Kind)
		}
	case syntax.Text:
		if !n.Kind.HasTextPayload() {
			violation(n, "text payload on a %s node", n.Kind)
		}
	case nil:
		if n.Kind == syntax.NumberData {
			violation(n, "missing integer payload")
		}
	}

	if n.Kind.IsExempt() {
		if len(n.Children) != 1 {
			violation(n, "expected exactly one child slot, got %d", len(n.Children))
		}

		if n.Children[0] == nil && n.Kind != syntax.ReturnStatement {
			violation(n, "child slot cannot be empty")
		}
	}
}
