package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/querysum"
	"golang.org/x/net/html"
)

// TitlePrefix is prepended to the document title.
const TitlePrefix = "TITLE: "

// Ensure Outliner implements querysum.Outliner at compile time.
var _ querysum.Outliner = (*Outliner)(nil)

// Outliner builds document outlines from HTML using goquery.
type Outliner struct {
	extractor querysum.Extractor
}

// Option configures an Outliner.
type Option func(*Outliner)

// WithExtractor outlines only the main content returned by e instead of
// the whole body. The title is still read from the title element. When e
// fails or finds no content, the whole body is used.
func WithExtractor(e querysum.Extractor) Option {
	return func(o *Outliner) {
		o.extractor = e
	}
}

// NewOutliner creates a new Outliner.
func NewOutliner(opts ...Option) *Outliner {
	o := &Outliner{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Outline parses page and returns its title and outline.
func (o *Outliner) Outline(page string) (*querysum.Structure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, querysum.Errorf(querysum.EINVALID, "failed to parse HTML: %v", err)
	}

	title := doc.Find("title").First()
	if title.Length() == 0 {
		return nil, querysum.Errorf(querysum.EINVALID, "document title missing")
	}

	root := o.contentBody(page)
	if root == nil {
		body := doc.Find("body").First()
		if body.Length() == 0 {
			return nil, querysum.Errorf(querysum.EINVALID, "document body missing")
		}
		root = NewNode(body)
	}

	return &querysum.Structure{
		Title:   TitlePrefix + strings.TrimSpace(title.Text()),
		Outline: querysum.BuildOutline(root),
	}, nil
}

// contentBody returns the body of the extracted main content, or nil if no
// extractor is configured or it produced nothing usable.
func (o *Outliner) contentBody(page string) querysum.Node {
	if o.extractor == nil {
		return nil
	}

	result, err := o.extractor.Extract(page)
	if err != nil || strings.TrimSpace(result.ContentHTML) == "" {
		return nil
	}

	root, err := html.Parse(strings.NewReader(result.ContentHTML))
	if err != nil {
		return nil
	}

	body := findElement(root, "body")
	if body == nil {
		return nil
	}
	return NewHTMLNode(body)
}
