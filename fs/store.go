package fs

import (
	"context"

	"github.com/fwojciec/newsroom"
)

// Ensure DocumentStore implements newsroom.DocumentStore at compile time.
var _ newsroom.DocumentStore = (*DocumentStore)(nil)

// DocumentStore keeps the corpus in a single JSON file.
type DocumentStore struct {
	Path string
}

// NewDocumentStore creates a DocumentStore backed by the file at path.
func NewDocumentStore(path string) *DocumentStore {
	return &DocumentStore{Path: path}
}

func (s *DocumentStore) LoadDocuments(_ context.Context) ([]*newsroom.Document, error) {
	var docs []*newsroom.Document
	if err := ReadJSON(s.Path, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *DocumentStore) SaveDocuments(_ context.Context, docs []*newsroom.Document) error {
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
	}
	if docs == nil {
		docs = []*newsroom.Document{}
	}
	return WriteJSON(s.Path, docs)
}

// Ensure PageStore implements newsroom.PageStore at compile time.
var _ newsroom.PageStore = (*PageStore)(nil)

// PageStore keeps the records of the last crawl in a single JSON file.
type PageStore struct {
	Path string
}

// NewPageStore creates a PageStore backed by the file at path.
func NewPageStore(path string) *PageStore {
	return &PageStore{Path: path}
}

func (s *PageStore) LoadPages(_ context.Context) ([]*newsroom.PageRecord, error) {
	var pages []*newsroom.PageRecord
	if err := ReadJSON(s.Path, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *PageStore) SavePages(_ context.Context, pages []*newsroom.PageRecord) error {
	if pages == nil {
		pages = []*newsroom.PageRecord{}
	}
	return WriteJSON(s.Path, pages)
}
