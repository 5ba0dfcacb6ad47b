// Package trafilatura narrows a page to its main content before outlining,
// using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/querysum"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements querysum.Extractor at compile time.
var _ querysum.Extractor = (*Extractor)(nil)

// Extractor removes navigation, footers and other boilerplate so that only
// the article body is outlined.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates an Extractor that falls back to readability and
// dom-distiller when trafilatura alone finds too little.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{EnableFallback: true},
	}
}

// Extract returns the main content of page as HTML. ContentHTML is empty
// when nothing could be identified as content.
func (e *Extractor) Extract(page string) (*querysum.ExtractResult, error) {
	if strings.TrimSpace(page) == "" {
		return nil, querysum.Errorf(querysum.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(page), e.opts)
	if err != nil {
		return nil, querysum.Errorf(querysum.EINVALID, "main content extraction failed: %v", err)
	}

	if result.ContentNode == nil {
		return &querysum.ExtractResult{}, nil
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, querysum.Errorf(querysum.EINTERNAL, "failed to render content: %v", err)
	}
	return &querysum.ExtractResult{ContentHTML: buf.String()}, nil
}
