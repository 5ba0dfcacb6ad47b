package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/querysum"
)

// Ensure LoggingDocumentStore implements querysum.DocumentStore.
var _ querysum.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with logging.
type LoggingDocumentStore struct {
	next   querysum.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next querysum.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) ReadDocument(ctx context.Context, id string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read document",
			"id", id,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadDocument(ctx, id)
}

// Ensure LoggingOutliner implements querysum.Outliner.
var _ querysum.Outliner = (*LoggingOutliner)(nil)

// LoggingOutliner wraps an Outliner with debug logging.
type LoggingOutliner struct {
	next   querysum.Outliner
	logger *slog.Logger
}

// NewLoggingOutliner creates a new LoggingOutliner.
func NewLoggingOutliner(next querysum.Outliner, logger *slog.Logger) *LoggingOutliner {
	return &LoggingOutliner{next: next, logger: logger}
}

// Outline delegates to the wrapped outliner and logs the element count.
func (o *LoggingOutliner) Outline(html string) (structure *querysum.Structure, err error) {
	defer func(begin time.Time) {
		var title string
		var elements int
		if structure != nil {
			title = structure.Title
			elements = len(structure.Outline)
		}
		o.logger.Debug("outline",
			"title", title,
			"elements", elements,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return o.next.Outline(html)
}
