package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/querysum"
)

// Ensure LoggingSummarizer implements querysum.Summarizer.
var _ querysum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   querysum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next querysum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs sizes, not text.
func (s *LoggingSummarizer) Summarize(ctx context.Context, prompt string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"prompt_bytes", len(prompt),
			"summary_bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, prompt)
}
