package mock

import (
	"context"

	"github.com/fwojciec/querysum"
)

var _ querysum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of querysum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, prompt string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	return s.SummarizeFn(ctx, prompt)
}

var _ querysum.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of querysum.Pacer.
type Pacer struct {
	PauseFn func(ctx context.Context) error
}

func (p *Pacer) Pause(ctx context.Context) error {
	return p.PauseFn(ctx)
}
