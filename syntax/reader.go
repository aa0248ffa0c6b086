package syntax

import (
	"strconv"
	"strings"
	"text/scanner"

	"vslc/report"
)

// ReadTree reads a tree written in the text tree form:
//
//	node := "nil" | "_" | KIND [ "(" [ item { "," item } ] ")" ]
//	item := node | payload
//
// where only the first item may be a payload: a quoted string or an integer
// literal.  `nil` and `_` denote an empty slot.  Line comments begin with
// `//`.  For example:
//
//	EXPRESSION("+", EXPRESSION("*", NUMBER(2), NUMBER(3)), NUMBER(1))
//
// Every node is constructed through store.  On error, nothing read so far is
// left live in the store and the returned error is a
// *report.LocalCompileError.  The name is used in scanner positions only.
func ReadTree(store *Store, name, src string) (*Node, error) {
	r := &treeReader{store: store}
	r.sc.Init(strings.NewReader(src))
	r.sc.Filename = name
	r.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	r.sc.Error = func(sc *scanner.Scanner, msg string) {
		if r.scanErr == nil {
			r.scanErr = report.Raise(spanAt(sc.Position, 1), "%s", msg)
		}
	}

	r.next()
	if r.scanErr != nil {
		return nil, r.scanErr
	}

	if r.tok == scanner.EOF {
		return nil, report.Raise(r.span(), "expected a tree")
	}

	root, err := r.readNode()
	if err != nil {
		return nil, err
	}

	if root == nil {
		return nil, report.Raise(r.span(), "tree root cannot be an empty slot")
	}

	if r.tok != scanner.EOF {
		r.store.DeepRelease(root)
		return nil, r.unexpected("end of input")
	}

	return root, nil
}

// treeReader is a recursive descent reader for the text tree form.  All
// reading functions begin with the reader positioned on the first token of
// their production and leave it on the token after it.
type treeReader struct {
	store *Store
	sc    scanner.Scanner

	// tok is the current token, text its source text and pos its position.
	tok  rune
	text string
	pos  scanner.Position

	scanErr *report.LocalCompileError
}

func (r *treeReader) next() {
	r.tok = r.sc.Scan()
	r.text = r.sc.TokenText()
	r.pos = r.sc.Position
}

// span returns the span of the current token.
func (r *treeReader) span() *report.TextSpan {
	return spanAt(r.pos, len(r.text))
}

func spanAt(pos scanner.Position, length int) *report.TextSpan {
	line, col := pos.Line-1, pos.Column-1
	if line < 0 {
		line, col = 0, 0
	}

	return &report.TextSpan{StartLine: line, StartCol: col, EndLine: line, EndCol: col + length}
}

func (r *treeReader) unexpected(expected string) error {
	if r.scanErr != nil {
		return r.scanErr
	}

	if r.tok == scanner.EOF {
		return report.Raise(r.span(), "expected %s but got end of input", expected)
	}

	return report.Raise(r.span(), "expected %s but got `%s`", expected, r.text)
}

// readNode reads a node or an empty slot.  An empty slot returns a nil node.
func (r *treeReader) readNode() (*Node, error) {
	if r.tok != scanner.Ident {
		return nil, r.unexpected("node kind")
	}

	if r.text == "nil" || r.text == "_" {
		r.next()
		return nil, nil
	}

	kind, ok := KindFromName(r.text)
	if !ok {
		return nil, report.Raise(r.span(), "unknown node kind `%s`", r.text)
	}

	startSpan := r.span()
	r.next()

	n := r.store.Construct(kind, nil)
	n.Span = startSpan

	if r.tok == '(' {
		r.next()

		if err := r.readItems(n); err != nil {
			r.store.DeepRelease(n)
			return nil, err
		}

		if r.tok != ')' {
			err := r.unexpected("`,` or `)`")
			r.store.DeepRelease(n)
			return nil, err
		}

		n.Span = report.NewSpanOver(startSpan, r.span())
		r.next()
	}

	if err := checkPayload(n); err != nil {
		r.store.DeepRelease(n)
		return nil, err
	}

	return n, nil
}

// readItems reads the payload and children of n up to but not including the
// closing parenthesis.
func (r *treeReader) readItems(n *Node) error {
	if r.tok == ')' {
		return nil
	}

	for first := true; ; first = false {
		if first && r.tok != scanner.Ident {
			payload, err := r.readPayload()
			if err != nil {
				return err
			}

			n.Payload = payload
		} else {
			child, err := r.readNode()
			if err != nil {
				return err
			}

			n.Children = append(n.Children, child)
		}

		if r.tok != ',' {
			return nil
		}

		r.next()
	}
}

// readPayload reads a string or integer payload.
func (r *treeReader) readPayload() (Payload, error) {
	switch r.tok {
	case scanner.String:
		text, err := strconv.Unquote(r.text)
		if err != nil {
			return nil, report.Raise(r.span(), "malformed string literal")
		}

		r.next()
		return Text(text), nil
	case '-', scanner.Int:
		sign, span := "", r.span()
		if r.tok == '-' {
			sign = "-"
			r.next()

			if r.tok != scanner.Int {
				return nil, r.unexpected("integer literal")
			}

			span = report.NewSpanOver(span, r.span())
		}

		v, err := strconv.ParseInt(sign+r.text, 0, 64)
		if err != nil {
			return nil, report.Raise(span, "integer literal %s%s does not fit in 64 bits", sign, r.text)
		}

		r.next()
		return Number(v), nil
	}

	return nil, r.unexpected("node kind or payload")
}

// checkPayload checks that the payload read for a node agrees with its kind.
func checkPayload(n *Node) error {
	switch n.Payload.(type) {
	case Number:
		if n.Kind != NumberData {
			return report.Raise(n.Span, "%s cannot carry an integer payload", n.Kind)
		}

		if len(n.Children) > 0 {
			return report.Raise(n.Span, "%s cannot have children", n.Kind)
		}
	case Text:
		if !n.Kind.HasTextPayload() {
			return report.Raise(n.Span, "%s cannot carry a text payload", n.Kind)
		}
	default:
		switch n.Kind {
		case NumberData:
			return report.Raise(n.Span, "%s requires an integer payload", n.Kind)
		case IdentifierData, StringData:
			return report.Raise(n.Span, "%s requires a text payload", n.Kind)
		}
	}

	return nil
}
