package querysum

import (
	"strings"
)

// Tag identifies the kind of an outline element.
type Tag string

// Tags kept in an outline. Everything else is skipped.
const (
	TagH1 Tag = "H1"
	TagH2 Tag = "H2"
	TagH3 Tag = "H3"
	TagH4 Tag = "H4"
	TagP  Tag = "P"
)

var outlineTags = map[string]Tag{
	"h1": TagH1,
	"h2": TagH2,
	"h3": TagH3,
	"h4": TagH4,
	"p":  TagP,
}

// Element is one semantically significant piece of a document.
type Element struct {
	Tag  Tag    `json:"tag"`
	Text string `json:"text"`
}

// Outline is the ordered list of elements of a document body.
type Outline []Element

// Structure is the title and outline of one document.
type Structure struct {
	// Title is the trimmed text of the title element, prefixed with "TITLE: ".
	Title   string  `json:"title"`
	Outline Outline `json:"outline"`
}

// Node is a parsed HTML node. Any parser that exposes a tag name, the
// text of the node's subtree, and child elements can back an outline.
type Node interface {
	// Tag returns the lowercase element name, or "" for non-element nodes.
	Tag() string

	// Text returns the concatenated text of the node and its descendants.
	Text() string

	// Children returns the child nodes in document order.
	Children() []Node
}

// Walk calls visit for every descendant of root in depth-first pre-order.
// The root itself is not visited.
func Walk(root Node, visit func(Node)) {
	for _, child := range root.Children() {
		visit(child)
		Walk(child, visit)
	}
}

// BuildOutline collects H1-H4 and P descendants of root with non-empty text,
// in document order. Other nodes are skipped but their children are still
// visited, so a div wrapping a p contributes the p.
func BuildOutline(root Node) Outline {
	var outline Outline
	Walk(root, func(n Node) {
		tag, ok := outlineTags[strings.ToLower(n.Tag())]
		if !ok {
			return
		}
		text := strings.TrimSpace(n.Text())
		if text == "" {
			return
		}
		outline = append(outline, Element{Tag: tag, Text: text})
	})
	return outline
}

// FormatOutline renders an outline as "TAG:  text" lines.
func FormatOutline(outline Outline) string {
	var sb strings.Builder
	for _, el := range outline {
		sb.WriteString(string(el.Tag))
		sb.WriteString(":  ")
		sb.WriteString(el.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Outliner turns an HTML document into its title and outline.
type Outliner interface {
	// Outline parses the document.
	// Returns EINVALID if the document has no title element.
	Outline(html string) (*Structure, error)
}
