package mock

import (
	"context"

	"github.com/fwojciec/newsroom"
)

var _ newsroom.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of newsroom.DocumentStore.
type DocumentStore struct {
	LoadDocumentsFn func(ctx context.Context) ([]*newsroom.Document, error)
	SaveDocumentsFn func(ctx context.Context, docs []*newsroom.Document) error
}

func (s *DocumentStore) LoadDocuments(ctx context.Context) ([]*newsroom.Document, error) {
	return s.LoadDocumentsFn(ctx)
}

func (s *DocumentStore) SaveDocuments(ctx context.Context, docs []*newsroom.Document) error {
	return s.SaveDocumentsFn(ctx, docs)
}

var _ newsroom.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of newsroom.PageStore.
type PageStore struct {
	LoadPagesFn func(ctx context.Context) ([]*newsroom.PageRecord, error)
	SavePagesFn func(ctx context.Context, pages []*newsroom.PageRecord) error
}

func (s *PageStore) LoadPages(ctx context.Context) ([]*newsroom.PageRecord, error) {
	return s.LoadPagesFn(ctx)
}

func (s *PageStore) SavePages(ctx context.Context, pages []*newsroom.PageRecord) error {
	return s.SavePagesFn(ctx, pages)
}

var _ newsroom.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of newsroom.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, path string) (*newsroom.ExtractedText, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, path string) (*newsroom.ExtractedText, error) {
	return e.ExtractTextFn(ctx, path)
}
