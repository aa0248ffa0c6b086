package simplify

import (
	"fmt"
	"strings"

	"vslc/report"
	"vslc/syntax"
)

// FoldError is an evaluation error raised while folding a constant operator
// node: an unknown operator, a wrong operand count, or an arithmetic fault.
// The node it refers to is left unfolded.
type FoldError struct {
	// Node is the operator node that could not be folded.
	Node *syntax.Node

	// Op is the operator symbol, empty if the node had none.
	Op string

	Msg string
}

func (fe *FoldError) Error() string {
	return fmt.Sprintf("cannot fold %s: %s", fe.Node.Label(), fe.Msg)
}

// Unwrap exposes the error as a local compile error positioned at the
// offending node.
func (fe *FoldError) Unwrap() error {
	return &report.LocalCompileError{Message: fe.Error(), Span: fe.Node.Span}
}

// FoldErrors is the list of every fold error raised by one simplification.
type FoldErrors []*FoldError

func (fes FoldErrors) Error() string {
	msgs := make([]string, len(fes))
	for i, fe := range fes {
		msgs[i] = fe.Error()
	}

	return strings.Join(msgs, "\n")
}

func (fes FoldErrors) Unwrap() []error {
	errs := make([]error, len(fes))
	for i, fe := range fes {
		errs[i] = fe
	}

	return errs
}

// ContractError is raised when the tree handed to the simplifier does not have
// the shape its node kinds promise.  It aborts the whole simplification.
type ContractError struct {
	Node *syntax.Node
	Msg  string
}

func (ce *ContractError) Error() string {
	return fmt.Sprintf("malformed %s: %s", ce.Node.Kind, ce.Msg)
}

func (ce *ContractError) Unwrap() error {
	return &report.LocalCompileError{Message: ce.Error(), Span: ce.Node.Span}
}

// violation aborts simplification with a contract error.
func violation(n *syntax.Node, msg string, args ...interface{}) {
	panic(&ContractError{Node: n, Msg: fmt.Sprintf(msg, args...)})
}
