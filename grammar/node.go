package grammar

import (
	"fmt"
	"strings"

	"github.com/dhamidi/pcomb/comb"
)

// Node is a node in the concrete syntax tree.
// Terminals carry Text; interior nodes have Children.
type Node struct {
	Kind     string          // production name, or the quoted literal for tokens
	Children []*Node         // child nodes (nil for terminals)
	Span     comb.Span[byte] // source span covering this node
	Text     string          // matched source text (terminals only)
	terminal bool
}

// IsTerminal reports whether n is a leaf node.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// AddChild appends a child node and updates the span.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Span.Start = child.Span.Start
	}
	n.Span.End = child.Span.End
}

// NewTerminal creates a terminal node covering span.
func NewTerminal(kind string, span comb.Span[byte]) *Node {
	return &Node{
		Kind:     kind,
		Span:     span,
		Text:     string(span.Slice()),
		terminal: true,
	}
}

// NewNonTerminal creates an interior node. span is used as is when no
// children are added.
func NewNonTerminal(kind string, span comb.Span[byte]) *Node {
	return &Node{
		Kind:     kind,
		Children: make([]*Node, 0),
		Span:     span,
	}
}

// Walk calls fn for n and its descendants in depth-first order. Children
// are skipped when fn returns false.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Find returns all nodes of the given kind below and including n.
func (n *Node) Find(kind string) []*Node {
	var out []*Node
	n.Walk(func(c *Node, _ int) bool {
		if c.Kind == kind {
			out = append(out, c)
		}
		return true
	})
	return out
}

// String renders the tree as an S-expression, e.g. (Sum (number "1") "+" (number "2")).
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	if n.terminal {
		if n.Kind == fmt.Sprintf("%q", n.Text) {
			b.WriteString(n.Kind)
			return
		}
		fmt.Fprintf(b, "(%s %q)", n.Kind, n.Text)
		return
	}
	b.WriteString("(")
	b.WriteString(n.Kind)
	for _, c := range n.Children {
		b.WriteString(" ")
		c.format(b)
	}
	b.WriteString(")")
}

// Dump renders the tree one node per line, indented by depth, with the
// location of every node.
func (n *Node) Dump() string {
	var b strings.Builder
	n.Walk(func(c *Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		if c.terminal {
			fmt.Fprintf(&b, "%s %q @ %s\n", c.Kind, c.Text, c.Span.StartLoc())
		} else {
			fmt.Fprintf(&b, "%s @ %s\n", c.Kind, c.Span.StartLoc())
		}
		return true
	})
	return b.String()
}
