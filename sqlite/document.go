package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/newsroom"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsroom.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements newsroom.DocumentStore using SQLite.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// LoadDocuments returns the corpus ordered by position.
func (s *DocumentStore) LoadDocuments(ctx context.Context) ([]*newsroom.Document, error) {
	if err := requireSnapshot(ctx, s.db, "documents"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT filename, source, type, category, content, date, pages, word_count, content_hash, ingested_at, contact_info
		FROM documents
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*newsroom.Document{}
	for rows.Next() {
		var doc newsroom.Document
		var docType, category, date, ingestedAt, contactInfo string

		if err := rows.Scan(&doc.Filename, &doc.Source, &docType, &category, &doc.Content, &date,
			&doc.Pages, &doc.WordCount, &doc.ContentHash, &ingestedAt, &contactInfo); err != nil {
			return nil, err
		}

		doc.Type = newsroom.DocumentType(docType)
		doc.Category = newsroom.Category(category)
		doc.Date = newsroom.ParseFilenameDate(date)
		if doc.IngestedAt, err = parseRFC3339(ingestedAt, "ingested_at"); err != nil {
			return nil, err
		}
		if contactInfo != "" {
			doc.ContactInfo = &newsroom.ContactInfo{}
			if err := json.Unmarshal([]byte(contactInfo), doc.ContactInfo); err != nil {
				return nil, fmt.Errorf("failed to parse contact_info: %w", err)
			}
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// SaveDocuments replaces the corpus in a single transaction.
func (s *DocumentStore) SaveDocuments(ctx context.Context, docs []*newsroom.Document) error {
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	return replaceAll(ctx, s.db, "documents", time.Now(), func(tx *sql.Tx) error {
		for i, doc := range docs {
			var contactInfo string
			if doc.ContactInfo != nil {
				b, err := json.Marshal(doc.ContactInfo)
				if err != nil {
					return err
				}
				contactInfo = string(b)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO documents (id, position, filename, source, type, category, content, date, pages, word_count, content_hash, ingested_at, contact_info)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, uuid.New().String(), i, doc.Filename, doc.Source, string(doc.Type), string(doc.Category),
				doc.Content, doc.Date.String(), doc.Pages, doc.WordCount, doc.ContentHash,
				formatTime(doc.IngestedAt), contactInfo); err != nil {
				return err
			}
		}
		return nil
	})
}
