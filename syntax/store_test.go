package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstruct(t *testing.T) {
	s := NewStore()
	x := s.Construct(IdentifierData, Text("x"))
	one := s.Construct(NumberData, Number(1))
	children := []*Node{x, nil, one}
	n := s.Construct(Expression, Text("+"), children...)

	if len(n.Children) != 3 || n.Children[0] != x || n.Children[1] != nil || n.Children[2] != one {
		t.Fatalf("unexpected children %v", n.Children)
	}

	// the node owns its own child sequence
	children[0] = nil
	if n.Children[0] != x {
		t.Errorf("child sequence aliases the caller's slice")
	}

	if s.Live() != 3 || s.Constructed() != 3 || s.Released() != 0 {
		t.Errorf("counters: live %d constructed %d released %d", s.Live(), s.Constructed(), s.Released())
	}

	for _, node := range []*Node{x, one, n} {
		if !s.IsLive(node) {
			t.Errorf("%s is not live", node.Label())
		}
	}
}

func TestDeepRelease(t *testing.T) {
	s := NewStore()
	n := s.Construct(Expression, Text("*"),
		s.Construct(NumberData, Number(2)),
		nil,
		s.Construct(Expression, Text("-"), s.Construct(IdentifierData, Text("y"))),
	)

	s.DeepRelease(n)

	if s.Live() != 0 || s.Released() != 4 {
		t.Errorf("live %d released %d, want 0 and 4", s.Live(), s.Released())
	}

	// releasing an empty slot does nothing
	s.DeepRelease(nil)
	if s.Released() != 4 {
		t.Errorf("releasing nil changed the store")
	}
}

func TestShallowRelease(t *testing.T) {
	s := NewStore()
	child := s.Construct(IdentifierData, Text("a"))
	wrapper := s.Construct(Statement, nil, child)

	moved := wrapper.TakeChildren()
	s.ShallowRelease(wrapper)

	if diff := cmp.Diff([]*Node{child}, moved); diff != "" {
		t.Errorf("TakeChildren mismatch (-want +got):\n%s", diff)
	}

	if s.IsLive(wrapper) || !s.IsLive(child) {
		t.Errorf("wrapper live %v, child live %v", s.IsLive(wrapper), s.IsLive(child))
	}
}

func TestShallowReleaseEmptySlots(t *testing.T) {
	s := NewStore()
	n := s.Construct(ReturnStatement, nil, nil)
	s.ShallowRelease(n)

	if s.Live() != 0 {
		t.Errorf("live %d, want 0", s.Live())
	}
}

func TestStoreMisuse(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Store)
	}{
		{"double release", func(s *Store) {
			n := s.Construct(NumberData, Number(1))
			s.DeepRelease(n)
			s.DeepRelease(n)
		}},
		{"foreign node", func(s *Store) {
			s.ShallowRelease(&Node{Kind: NullStatement})
		}},
		{"shallow release with children", func(s *Store) {
			s.ShallowRelease(s.Construct(Statement, nil, s.Construct(NullStatement, nil)))
		}},
		{"other store", func(s *Store) {
			NewStore().DeepRelease(s.Construct(NullStatement, nil))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic")
				}
			}()

			tt.run(NewStore())
		})
	}
}

func TestLabel(t *testing.T) {
	s := NewStore()
	tests := []struct {
		node *Node
		want string
	}{
		{s.Construct(NumberData, Number(-42)), "NUMBER_DATA(-42)"},
		{s.Construct(IdentifierData, Text("count")), "IDENTIFIER_DATA(count)"},
		{s.Construct(Relation, Text("<=")), "RELATION(<=)"},
		{s.Construct(Expression, nil), "EXPRESSION"},
		{s.Construct(StatementList, nil), "STATEMENT_LIST"},
		{&Node{Kind: Kind(1000)}, "UNKNOWN_KIND"},
	}

	for _, tt := range tests {
		if got := tt.node.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindFromName(t *testing.T) {
	for k := Program; k < numKinds; k++ {
		got, ok := KindFromName(k.String())
		if !ok || got != k {
			t.Errorf("KindFromName(%q) = %v, %v", k.String(), got, ok)
		}
	}

	aliases := map[string]Kind{"NUMBER": NumberData, "IDENTIFIER": IdentifierData, "STRING": StringData}
	for name, want := range aliases {
		if got, ok := KindFromName(name); !ok || got != want {
			t.Errorf("KindFromName(%q) = %v, %v", name, got, ok)
		}
	}

	if _, ok := KindFromName("statement_list"); ok {
		t.Errorf("kind names are case sensitive")
	}
}

func TestKindPredicates(t *testing.T) {
	var lists, exempt []Kind
	for k := Program; k < numKinds; k++ {
		if k.IsList() {
			lists = append(lists, k)
		}
		if k.IsExempt() {
			exempt = append(exempt, k)
		}
	}

	wantLists := []Kind{GlobalList, StatementList, PrintList, ExpressionList, VariableList, ArgumentList, ParameterList, DeclarationList}
	if diff := cmp.Diff(wantLists, lists); diff != "" {
		t.Errorf("list kinds mismatch (-want +got):\n%s", diff)
	}

	wantExempt := []Kind{ReturnStatement, PrintStatement, Declaration}
	if diff := cmp.Diff(wantExempt, exempt); diff != "" {
		t.Errorf("exempt kinds mismatch (-want +got):\n%s", diff)
	}

	if !Relation.HasTextPayload() || NumberData.HasTextPayload() || !Expression.IsOperator() {
		t.Errorf("payload predicates are wrong")
	}
}
