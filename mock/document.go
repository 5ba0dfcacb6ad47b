package mock

import (
	"context"

	"github.com/fwojciec/querysum"
)

var _ querysum.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of querysum.DocumentStore.
type DocumentStore struct {
	ReadDocumentFn func(ctx context.Context, id string) (string, error)
}

func (s *DocumentStore) ReadDocument(ctx context.Context, id string) (string, error) {
	return s.ReadDocumentFn(ctx, id)
}

var _ querysum.Outliner = (*Outliner)(nil)

// Outliner is a mock implementation of querysum.Outliner.
type Outliner struct {
	OutlineFn func(html string) (*querysum.Structure, error)
}

func (o *Outliner) Outline(html string) (*querysum.Structure, error) {
	return o.OutlineFn(html)
}
