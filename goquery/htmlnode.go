package goquery

import (
	"strings"

	"github.com/fwojciec/querysum"
	"golang.org/x/net/html"
)

// Ensure HTMLNode implements querysum.Node at compile time.
var _ querysum.Node = HTMLNode{}

// HTMLNode adapts a parsed *html.Node to querysum.Node.
type HTMLNode struct {
	n *html.Node
}

// NewHTMLNode wraps n.
func NewHTMLNode(n *html.Node) HTMLNode {
	return HTMLNode{n: n}
}

// Tag returns the element name, or "" for non-element nodes.
func (h HTMLNode) Tag() string {
	if h.n == nil || h.n.Type != html.ElementNode {
		return ""
	}
	return h.n.Data
}

// Text returns the text of all descendant text nodes in document order.
func (h HTMLNode) Text() string {
	var b strings.Builder
	collectText(h.n, &b)
	return b.String()
}

// Children returns the child elements.
func (h HTMLNode) Children() []querysum.Node {
	if h.n == nil {
		return nil
	}
	var nodes []querysum.Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			nodes = append(nodes, HTMLNode{n: c})
		}
	}
	return nodes
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// findElement returns the first element named tag in pre-order, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
