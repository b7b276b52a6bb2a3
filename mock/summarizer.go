package mock

import (
	"context"

	"github.com/fwojciec/newsroom"
)

var _ newsroom.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsroom.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, query string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, query string) (string, error) {
	return s.SummarizeFn(ctx, text, query)
}

var _ newsroom.QueryService = (*QueryService)(nil)

// QueryService is a mock implementation of newsroom.QueryService.
type QueryService struct {
	QueryFn func(ctx context.Context, query string, category newsroom.Category) (*newsroom.QueryResult, error)
}

func (s *QueryService) Query(ctx context.Context, query string, category newsroom.Category) (*newsroom.QueryResult, error) {
	return s.QueryFn(ctx, query, category)
}
