package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsroom"
)

// Ensure LoggingDocumentStore implements newsroom.DocumentStore.
var _ newsroom.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with logging.
type LoggingDocumentStore struct {
	next   newsroom.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next newsroom.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// LoadDocuments delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) LoadDocuments(ctx context.Context) (docs []*newsroom.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("document store",
			"op", "load",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadDocuments(ctx)
}

// SaveDocuments delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) SaveDocuments(ctx context.Context, docs []*newsroom.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("document store",
			"op", "save",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDocuments(ctx, docs)
}
