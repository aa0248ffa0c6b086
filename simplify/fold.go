package simplify

import (
	"errors"
	"fmt"

	"vslc/syntax"
)

var (
	errDivideByZero  = errors.New("division by zero")
	errNegativeShift = errors.New("negative shift count")
)

type unaryFunc func(a int64) (int64, error)
type binaryFunc func(a, b int64) (int64, error)

// unaryOperators are the operators of EXPRESSION nodes with one operand.
var unaryOperators = map[string]unaryFunc{
	"-": func(a int64) (int64, error) { return -a, nil },
	"~": func(a int64) (int64, error) { return ^a, nil },
}

// binaryOperators are the operators of EXPRESSION nodes with two operands.
// Division truncates toward zero.  Shift counts of 64 or more shift every bit
// out.
var binaryOperators = map[string]binaryFunc{
	"+": func(a, b int64) (int64, error) { return a + b, nil },
	"-": func(a, b int64) (int64, error) { return a - b, nil },
	"*": func(a, b int64) (int64, error) { return a * b, nil },
	"/": func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, errDivideByZero
		}

		return a / b, nil
	},
	"|": func(a, b int64) (int64, error) { return a | b, nil },
	"^": func(a, b int64) (int64, error) { return a ^ b, nil },
	"&": func(a, b int64) (int64, error) { return a & b, nil },
	"<<": func(a, b int64) (int64, error) {
		if b < 0 {
			return 0, errNegativeShift
		}

		return a << uint64(b), nil
	},
	">>": func(a, b int64) (int64, error) {
		if b < 0 {
			return 0, errNegativeShift
		}

		return a >> uint64(b), nil
	},
}

// relationOperators are the comparisons of RELATION nodes.  They evaluate to
// 1 when the relation holds and 0 otherwise.
var relationOperators = map[string]func(a, b int64) bool{
	"=":  func(a, b int64) bool { return a == b },
	"!=": func(a, b int64) bool { return a != b },
	"<":  func(a, b int64) bool { return a < b },
	">":  func(a, b int64) bool { return a > b },
	"<=": func(a, b int64) bool { return a <= b },
	">=": func(a, b int64) bool { return a >= b },
}

// fold replaces the operator node in slot by a literal holding its value if
// every operand is a literal number.  The operator subtree is released.  If
// the node cannot be evaluated, a fold error is recorded and the node is left
// in place.
func (s *Simplifier) fold(slot **syntax.Node) {
	n := *slot
	if len(n.Children) == 0 {
		return
	}

	operands := make([]int64, len(n.Children))
	for i, child := range n.Children {
		if !child.IsLiteralNumber() {
			return
		}

		operands[i], _ = child.Number()
	}

	op, _ := n.Text()
	value, err := evaluate(n.Kind, op, operands)
	if err != nil {
		s.errs = append(s.errs, &FoldError{Node: n, Op: op, Msg: err.Error()})
		return
	}

	lit := s.store.Construct(syntax.NumberData, syntax.Number(value))
	lit.Span = n.Span

	s.store.DeepRelease(n)
	*slot = lit
}

// evaluate applies the operator op of a node of the given kind to operands.
func evaluate(kind syntax.Kind, op string, operands []int64) (int64, error) {
	if op == "" {
		return 0, errors.New("missing operator symbol")
	}

	if kind == syntax.Relation {
		rel, ok := relationOperators[op]
		if !ok {
			return 0, fmt.Errorf("unknown relation `%s`", op)
		}

		if len(operands) != 2 {
			return 0, fmt.Errorf("relation `%s` takes 2 operands, got %d", op, len(operands))
		}

		if rel(operands[0], operands[1]) {
			return 1, nil
		}

		return 0, nil
	}

	unary, isUnary := unaryOperators[op]
	binary, isBinary := binaryOperators[op]

	switch {
	case len(operands) == 1 && isUnary:
		return unary(operands[0])
	case len(operands) == 2 && isBinary:
		return binary(operands[0], operands[1])
	case isUnary && isBinary:
		return 0, fmt.Errorf("operator `%s` takes 1 or 2 operands, got %d", op, len(operands))
	case isUnary:
		return 0, fmt.Errorf("operator `%s` takes 1 operand, got %d", op, len(operands))
	case isBinary:
		return 0, fmt.Errorf("operator `%s` takes 2 operands, got %d", op, len(operands))
	}

	return 0, fmt.Errorf("unknown operator `%s`", op)
}
