package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/querysum"
	"golang.org/x/net/html"
)

// Ensure Node implements querysum.Node at compile time.
var _ querysum.Node = Node{}

// Node adapts a single-element goquery selection to querysum.Node.
type Node struct {
	sel *goquery.Selection
}

// NewNode wraps the first element of sel.
func NewNode(sel *goquery.Selection) Node {
	return Node{sel: sel.First()}
}

// Tag returns the element name, or "" for non-element nodes.
func (n Node) Tag() string {
	if len(n.sel.Nodes) == 0 || n.sel.Nodes[0].Type != html.ElementNode {
		return ""
	}
	return n.sel.Nodes[0].Data
}

// Text returns the combined text of the element and its descendants.
func (n Node) Text() string {
	return n.sel.Text()
}

// Children returns the child elements. Text nodes are omitted since they
// can never match an outline tag.
func (n Node) Children() []querysum.Node {
	children := n.sel.Children()
	nodes := make([]querysum.Node, 0, children.Length())
	children.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node{sel: s})
	})
	return nodes
}
