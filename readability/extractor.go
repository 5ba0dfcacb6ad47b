// Package readability narrows a page to its main content before outlining,
// using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/querysum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements querysum.Extractor at compile time.
var _ querysum.Extractor = (*Extractor)(nil)

// Extractor keeps the readable article of a page and drops the rest.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article content of page as HTML.
func (e *Extractor) Extract(page string) (*querysum.ExtractResult, error) {
	if strings.TrimSpace(page) == "" {
		return nil, querysum.Errorf(querysum.EINVALID, "empty HTML input")
	}

	// Documents are read from disk, so there is no page URL to resolve
	// relative links against.
	article, err := readability.FromReader(strings.NewReader(page), nil)
	if err != nil {
		return nil, querysum.Errorf(querysum.EINVALID, "article extraction failed: %v", err)
	}

	return &querysum.ExtractResult{ContentHTML: article.Content}, nil
}
