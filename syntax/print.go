package syntax

import (
	"fmt"
	"io"
	"strings"
)

// EmptySlot is printed in place of an empty child slot.
const EmptySlot = "(nil)"

// Printer writes a preorder dump of a tree: one node per line, indented by
// depth.  It is a debugging aid and never modifies the tree.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w, indenting each level of
// depth by indent spaces.
func NewPrinter(w io.Writer, indent int) *Printer {
	if indent < 0 {
		indent = 0
	}

	return &Printer{w: w, indent: indent}
}

// Print writes the dump of the tree rooted at root.  A nil root prints as a
// single empty slot.
func (p *Printer) Print(root *Node) error {
	p.printNode(root, 0)
	return p.err
}

// Sprint returns the dump of the tree rooted at root using the given indent.
func Sprint(root *Node, indent int) string {
	sb := &strings.Builder{}
	NewPrinter(sb, indent).Print(root)
	return sb.String()
}

func (p *Printer) printNode(n *Node, depth int) {
	if p.err != nil {
		return
	}

	if n == nil {
		_, p.err = fmt.Fprintf(p.w, "%*s%s\n", depth*p.indent, "", EmptySlot)
		return
	}

	_, p.err = fmt.Fprintf(p.w, "%*s%s\n", depth*p.indent, "", n.Label())
	for _, child := range n.Children {
		p.printNode(child, depth+1)
	}
}
