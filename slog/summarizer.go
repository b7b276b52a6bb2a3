package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsroom"
)

// Ensure LoggingSummarizer implements newsroom.Summarizer.
var _ newsroom.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   newsroom.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next newsroom.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the call.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, query string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"chars", len(text),
			"query", query,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, query)
}
