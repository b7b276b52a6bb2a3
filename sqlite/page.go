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
var _ newsroom.PageStore = (*PageStore)(nil)

// PageStore implements newsroom.PageStore using SQLite. Extracted page
// content is stored as a JSON column.
type PageStore struct {
	db *DB
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// LoadPages returns the last crawl's records in crawl order.
func (s *PageStore) LoadPages(ctx context.Context) ([]*newsroom.PageRecord, error) {
	if err := requireSnapshot(ctx, s.db, "pages"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, category, scraped_at, error, content
		FROM pages
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*newsroom.PageRecord{}
	for rows.Next() {
		var p newsroom.PageRecord
		var category, scrapedAt, content string

		if err := rows.Scan(&p.URL, &p.Title, &category, &scrapedAt, &p.Error, &content); err != nil {
			return nil, err
		}

		p.Category = newsroom.Category(category)
		if p.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(content), &p.Content); err != nil {
			return nil, fmt.Errorf("failed to parse content: %w", err)
		}

		pages = append(pages, &p)
	}

	return pages, rows.Err()
}

// SavePages replaces the stored crawl results in a single transaction.
func (s *PageStore) SavePages(ctx context.Context, pages []*newsroom.PageRecord) error {
	return replaceAll(ctx, s.db, "pages", time.Now(), func(tx *sql.Tx) error {
		for i, p := range pages {
			content, err := json.Marshal(p.Content)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO pages (id, position, url, title, category, scraped_at, error, content)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, uuid.New().String(), i, p.URL, p.Title, string(p.Category),
				formatTime(p.ScrapedAt), p.Error, string(content)); err != nil {
				return err
			}
		}
		return nil
	})
}
