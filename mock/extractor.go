package mock

import "github.com/fwojciec/querysum"

var _ querysum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of querysum.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*querysum.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*querysum.ExtractResult, error) {
	return e.ExtractFn(html)
}
