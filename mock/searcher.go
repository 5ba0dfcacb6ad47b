package mock

import (
	"context"

	"github.com/fwojciec/querysum"
)

var _ querysum.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of querysum.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]querysum.SearchResult, error)
	CloseFn  func() error
}

func (s *Searcher) Search(ctx context.Context, query string) ([]querysum.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *Searcher) Close() error {
	return s.CloseFn()
}
