package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/newsroom"
	"golang.org/x/sync/errgroup"
)

var _ newsroom.QueryService = (*Service)(nil)

// Service answers queries over the persisted corpus.
type Service struct {
	Documents  newsroom.DocumentStore
	Summarizer newsroom.Summarizer
	Engine     *Engine
	Logger     *slog.Logger
}

// Query searches the corpus and summarizes each top match concurrently.
// A blank query or an empty corpus yields the no-results sentinel.
// Summarizer failures never fail the query; the fallback text is used.
func (s *Service) Query(ctx context.Context, query string, category newsroom.Category) (*newsroom.QueryResult, error) {
	result := &newsroom.QueryResult{Query: query}
	if strings.TrimSpace(query) == "" {
		result.Message = newsroom.NoResultsMessage
		return result, nil
	}

	docs, err := s.Documents.LoadDocuments(ctx)
	if err != nil && newsroom.ErrorCode(err) != newsroom.ENOTFOUND {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	result.Terms = Tokenize(query)
	engine := s.Engine
	if engine == nil {
		engine = &Engine{}
	}
	matches := engine.Search(result.Terms, docs, category)
	s.logger().Debug("search complete", "terms", result.Terms, "matches", len(matches))
	if len(matches) == 0 {
		result.Message = newsroom.NoResultsMessage
		return result, nil
	}

	result.Results = make([]newsroom.SearchResult, len(matches))
	var g errgroup.Group
	for i, m := range matches {
		g.Go(func() error {
			result.Results[i] = s.buildResult(ctx, m, query)
			return nil
		})
	}
	_ = g.Wait()

	return result, nil
}

func (s *Service) buildResult(ctx context.Context, m Match, query string) newsroom.SearchResult {
	doc := m.Document
	r := newsroom.SearchResult{
		Identity:  doc.Filename,
		Source:    doc.Source,
		Category:  doc.Category,
		Date:      doc.Date,
		Pages:     doc.Pages,
		WordCount: doc.WordCount,
		Score:     m.Score,
		Context:   m.Context,
		Summary:   s.summarize(ctx, doc, query),
	}
	if doc.ContactInfo != nil && !doc.ContactInfo.Empty() {
		r.ContactInfo = doc.ContactInfo
	}
	return r
}

func (s *Service) summarize(ctx context.Context, doc *newsroom.Document, query string) string {
	if s.Summarizer == nil {
		return newsroom.SummaryFallback
	}
	summary, err := s.Summarizer.Summarize(ctx, doc.Content, query)
	if err != nil || strings.TrimSpace(summary) == "" {
		s.logger().Warn("summarization failed", "document", doc.Filename, "error", err)
		return newsroom.SummaryFallback
	}
	return summary
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
