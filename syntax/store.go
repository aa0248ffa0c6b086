package syntax

import "fmt"

// Store constructs and releases nodes and keeps track of which nodes are live.
// Every node of a tree handled by the tree core must be constructed by the
// store that later releases it.  Misuse of the store (releasing a node twice,
// releasing a node it never constructed, or shallow releasing a node that
// still owns children) is a bug in the compiler and causes a panic.
//
// A Store is not safe for concurrent use.
type Store struct {
	live                  map[*Node]struct{}
	constructed, released int
}

// NewStore creates a new empty store.
func NewStore() *Store {
	return &Store{live: make(map[*Node]struct{})}
}

// Construct creates a new node of the given kind owning the given payload and
// children.  Children may include nil entries for empty slots.
func (s *Store) Construct(kind Kind, payload Payload, children ...*Node) *Node {
	n := &Node{Kind: kind, Payload: payload}
	if len(children) > 0 {
		n.Children = make([]*Node, len(children))
		copy(n.Children, children)
	}

	s.live[n] = struct{}{}
	s.constructed++
	return n
}

// ShallowRelease releases the node itself and its payload.  Its children must
// already have been moved out (see TakeChildren): they are owned elsewhere and
// are not touched.
func (s *Store) ShallowRelease(n *Node) {
	if n == nil {
		return
	}

	for _, child := range n.Children {
		if child != nil {
			panic(fmt.Sprintf("shallow release of %s which still owns children", n.Label()))
		}
	}

	s.release(n)
}

// DeepRelease releases every node of the subtree rooted at n.  It is a no-op
// on an empty slot.
func (s *Store) DeepRelease(n *Node) {
	if n == nil {
		return
	}

	for _, child := range n.TakeChildren() {
		s.DeepRelease(child)
	}

	s.release(n)
}

func (s *Store) release(n *Node) {
	if _, ok := s.live[n]; !ok {
		panic(fmt.Sprintf("release of %s which is not live in this store", n.Label()))
	}

	delete(s.live, n)
	s.released++

	n.Payload = nil
	n.Children = nil
	n.Entry = nil
}

// IsLive returns whether n was constructed by this store and has not yet been
// released.
func (s *Store) IsLive(n *Node) bool {
	_, ok := s.live[n]
	return ok
}

// Live returns the number of live nodes.
func (s *Store) Live() int {
	return len(s.live)
}

// Constructed returns the total number of nodes constructed by the store.
func (s *Store) Constructed() int {
	return s.constructed
}

// Released returns the total number of nodes released by the store.
func (s *Store) Released() int {
	return s.released
}
