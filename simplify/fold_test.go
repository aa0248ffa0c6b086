package simplify

import (
	"errors"
	"math"
	"strings"
	"testing"

	"vslc/report"
	"vslc/syntax"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		kind     syntax.Kind
		op       string
		operands []int64
		want     int64
	}{
		{syntax.Expression, "+", []int64{2, 3}, 5},
		{syntax.Expression, "-", []int64{2, 3}, -1},
		{syntax.Expression, "*", []int64{-4, 3}, -12},
		{syntax.Expression, "/", []int64{7, 2}, 3},
		{syntax.Expression, "/", []int64{-7, 2}, -3},
		{syntax.Expression, "|", []int64{0xc, 0x3}, 0xf},
		{syntax.Expression, "^", []int64{0xf, 0x5}, 0xa},
		{syntax.Expression, "&", []int64{0xc, 0x6}, 0x4},
		{syntax.Expression, "<<", []int64{1, 10}, 1024},
		{syntax.Expression, ">>", []int64{-16, 2}, -4},
		{syntax.Expression, "<<", []int64{1, 64}, 0},
		{syntax.Expression, ">>", []int64{-1, 70}, -1},
		{syntax.Expression, "-", []int64{5}, -5},
		{syntax.Expression, "~", []int64{0}, -1},
		{syntax.Expression, "+", []int64{math.MaxInt64, 1}, math.MinInt64},
		{syntax.Expression, "-", []int64{math.MinInt64}, math.MinInt64},
		{syntax.Relation, "=", []int64{3, 3}, 1},
		{syntax.Relation, "!=", []int64{3, 3}, 0},
		{syntax.Relation, "<", []int64{-1, 0}, 1},
		{syntax.Relation, ">", []int64{-1, 0}, 0},
		{syntax.Relation, "<=", []int64{4, 4}, 1},
		{syntax.Relation, ">=", []int64{3, 4}, 0},
	}

	for _, tt := range tests {
		got, err := evaluate(tt.kind, tt.op, tt.operands)
		if err != nil {
			t.Errorf("%s %q %v: unexpected error: %v", tt.kind, tt.op, tt.operands, err)
			continue
		}

		if got != tt.want {
			t.Errorf("%s %q %v = %d, want %d", tt.kind, tt.op, tt.operands, got, tt.want)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		kind     syntax.Kind
		op       string
		operands []int64
		msg      string
	}{
		{syntax.Expression, "/", []int64{1, 0}, "division by zero"},
		{syntax.Expression, "<<", []int64{1, -1}, "negative shift count"},
		{syntax.Expression, ">>", []int64{1, -3}, "negative shift count"},
		{syntax.Expression, "", []int64{1, 2}, "missing operator symbol"},
		{syntax.Expression, "%", []int64{1, 2}, "unknown operator `%`"},
		{syntax.Expression, "-", []int64{1, 2, 3}, "operator `-` takes 1 or 2 operands, got 3"},
		{syntax.Expression, "~", []int64{1, 2}, "operator `~` takes 1 operand, got 2"},
		{syntax.Expression, "*", []int64{1}, "operator `*` takes 2 operands, got 1"},
		{syntax.Relation, "<", []int64{1}, "relation `<` takes 2 operands, got 1"},
		{syntax.Relation, "+", []int64{1, 2}, "unknown relation `+`"},
	}

	for _, tt := range tests {
		_, err := evaluate(tt.kind, tt.op, tt.operands)
		if err == nil {
			t.Errorf("%s %q %v: expected an error", tt.kind, tt.op, tt.operands)
			continue
		}

		if err.Error() != tt.msg {
			t.Errorf("%s %q %v: got %q, want %q", tt.kind, tt.op, tt.operands, err.Error(), tt.msg)
		}
	}
}

func TestFoldErrorsLeaveTreeIntact(t *testing.T) {
	src := `STATEMENT_LIST(
		PRINT_STATEMENT(EXPRESSION("/", NUMBER(1), NUMBER(0))),
		PRINT_STATEMENT(EXPRESSION("+", NUMBER(1), NUMBER(2))),
		PRINT_STATEMENT(EXPRESSION("%", NUMBER(5), NUMBER(2)))
	)`
	want := `STATEMENT_LIST(
		PRINT_STATEMENT(EXPRESSION("/", NUMBER(1), NUMBER(0))),
		PRINT_STATEMENT(NUMBER(3)),
		PRINT_STATEMENT(EXPRESSION("%", NUMBER(5), NUMBER(2)))
	)`

	store := syntax.NewStore()
	root, err := Simplify(store, readTree(t, store, src))

	var fes FoldErrors
	if !errors.As(err, &fes) {
		t.Fatalf("expected fold errors, got %v", err)
	}

	msgs := make([]string, len(fes))
	for i, fe := range fes {
		msgs[i] = fe.Error()
	}

	wantMsgs := []string{
		"cannot fold EXPRESSION(/): division by zero",
		"cannot fold EXPRESSION(%): unknown operator `%`",
	}
	if diff := cmp.Diff(wantMsgs, msgs); diff != "" {
		t.Errorf("fold errors mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(dump(t, want), syntax.Sprint(root, 1)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}

	checkOwnership(t, store, root)
}

func TestFoldErrorReportedOnce(t *testing.T) {
	srcs := []string{
		`STATEMENT(STATEMENT(EXPRESSION("/", NUMBER(1), NUMBER(0))))`,
		`EXPRESSION(EXPRESSION(EXPRESSION(">>", NUMBER(8), NUMBER(-1))))`,
		`STATEMENT_LIST(STATEMENT_LIST(), STATEMENT(EXPRESSION("~", NUMBER(1), NUMBER(2))))`,
		`BLOCK(STATEMENT_LIST(STATEMENT_LIST(STATEMENT(RELATION("<>", NUMBER(1), NUMBER(2))))))`,
	}

	for _, src := range srcs {
		store := syntax.NewStore()
		root, err := Simplify(store, readTree(t, store, src))

		var fes FoldErrors
		if !errors.As(err, &fes) {
			t.Errorf("%s: expected fold errors, got %v", src, err)
			continue
		}

		if len(fes) != 1 {
			t.Errorf("%s: got %d fold errors, want 1:\n%v", src, len(fes), fes)
		}

		if root != fes[0].Node {
			t.Errorf("%s: wrappers around %s were not elided", src, fes[0].Node.Label())
		}

		checkOwnership(t, store, root)
	}
}

func TestFoldErrorPosition(t *testing.T) {
	store := syntax.NewStore()
	root := readTree(t, store, `EXPRESSION("+", NUMBER(1), EXPRESSION("/", NUMBER(2), NUMBER(0)))`)

	_, err := Simplify(store, root)

	var lce *report.LocalCompileError
	if !errors.As(err, &lce) {
		t.Fatalf("fold error does not unwrap to a compile error: %v", err)
	}

	want := &report.TextSpan{StartLine: 0, StartCol: 27, EndLine: 0, EndCol: 64}
	if diff := cmp.Diff(want, lce.Span); diff != "" {
		t.Errorf("span mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(lce.Message, "division by zero") {
		t.Errorf("unexpected message %q", lce.Message)
	}
}

func TestFoldInheritsSpan(t *testing.T) {
	store := syntax.NewStore()
	root := readTree(t, store, `EXPRESSION("*", NUMBER(6), NUMBER(7))`)
	span := *root.Span

	root, err := Simplify(store, root)
	if err != nil {
		t.Fatal(err)
	}

	if n, _ := root.Number(); n != 42 {
		t.Fatalf("folded to %s, want NUMBER_DATA(42)", root.Label())
	}

	if diff := cmp.Diff(&span, root.Span); diff != "" {
		t.Errorf("span mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldOwnership(t *testing.T) {
	store := syntax.NewStore()
	root := readTree(t, store, `EXPRESSION("+", EXPRESSION("*", NUMBER(2), NUMBER(3)), NUMBER(1))`)

	root, err := Simplify(store, root)
	if err != nil {
		t.Fatal(err)
	}

	if store.Constructed() != 7 || store.Released() != 6 || store.Live() != 1 {
		t.Errorf("constructed %d, released %d, live %d; want 7, 6, 1",
			store.Constructed(), store.Released(), store.Live())
	}

	if root.Kind != syntax.NumberData || len(root.Children) != 0 {
		t.Errorf("got %s, want a childless literal", root.Label())
	}
}

func TestFoldSkipsOperatorsWithoutOperands(t *testing.T) {
	store := syntax.NewStore()
	root := store.Construct(syntax.Expression, syntax.Text("+"))

	got, err := Simplify(store, root)
	if err != nil {
		t.Fatal(err)
	}

	if got != root {
		t.Errorf("operator without operands was rewritten")
	}
}
