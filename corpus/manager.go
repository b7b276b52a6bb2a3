package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/fs"
)

// DefaultFreshness is how long crawl results stay current.
const DefaultFreshness = 24 * time.Hour

// Manager runs ingestion passes over the persisted corpus. Each pass loads
// the corpus, changes it, and persists it whole.
type Manager struct {
	Documents newsroom.DocumentStore
	Pages     newsroom.PageStore
	Text      newsroom.TextExtractor

	// AgendaDir holds the agenda PDFs to ingest.
	AgendaDir string

	// Freshness is the maximum age of crawl results before a re-crawl is
	// due. Defaults to DefaultFreshness.
	Freshness time.Duration

	// Dedup replaces documents with matching keys instead of appending.
	Dedup bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Load returns the persisted corpus, or an empty one if none exists yet.
func (m *Manager) Load(ctx context.Context) (*Corpus, error) {
	docs, err := m.Documents.LoadDocuments(ctx)
	if newsroom.ErrorCode(err) == newsroom.ENOTFOUND {
		return New(), nil
	} else if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return New(docs...), nil
}

// LoadOrIngest returns the persisted corpus, ingesting agenda documents
// first when no corpus exists or it contains placeholder documents.
func (m *Manager) LoadOrIngest(ctx context.Context) (*Corpus, error) {
	docs, err := m.Documents.LoadDocuments(ctx)
	switch {
	case newsroom.ErrorCode(err) == newsroom.ENOTFOUND:
		m.logger().Info("no corpus found, ingesting agenda documents")
		return m.IngestDocuments(ctx)
	case err != nil:
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	c := New(docs...)
	if c.HasPlaceholders() {
		m.logger().Info("corpus has placeholder content, re-ingesting agenda documents")
		return m.IngestDocuments(ctx)
	}
	m.logger().Info("corpus loaded", "documents", c.Len())
	return c, nil
}

// IngestDocuments extracts text from every PDF in AgendaDir and persists
// the corpus with those documents replacing any earlier agenda documents.
// Crawled pages already in the corpus are kept. A file that fails to
// extract becomes a placeholder document. A missing AgendaDir is logged
// and the corpus is returned unchanged.
func (m *Manager) IngestDocuments(ctx context.Context) (*Corpus, error) {
	existing, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}

	paths, err := fs.ListFiles(m.AgendaDir, ".pdf")
	if newsroom.ErrorCode(err) == newsroom.ENOTFOUND {
		m.logger().Warn("agenda directory not found, skipping document ingestion", "dir", m.AgendaDir)
		return existing, nil
	} else if err != nil {
		return nil, fmt.Errorf("list agendas: %w", err)
	}

	c := New()
	for i, path := range paths {
		doc := m.ingestFile(ctx, path)
		m.logger().Info("processed document",
			"n", i+1, "of", len(paths), "file", doc.Filename,
			"pages", doc.Pages, "words", doc.WordCount)
		c.Add(doc, m.Dedup)
	}
	for _, d := range existing.Documents() {
		if d.Type != newsroom.DocumentTypePDF && d.Type != "" {
			c.Add(d, m.Dedup)
		}
	}

	if err := m.Documents.SaveDocuments(ctx, c.Documents()); err != nil {
		return nil, fmt.Errorf("save corpus: %w", err)
	}
	m.logger().Info("document ingestion complete", "documents", c.Len())
	return c, nil
}

func (m *Manager) ingestFile(ctx context.Context, path string) *newsroom.Document {
	name := filepath.Base(path)
	doc := &newsroom.Document{
		Filename:   name,
		Source:     path,
		Type:       newsroom.DocumentTypePDF,
		Date:       newsroom.ParseFilenameDate(name),
		IngestedAt: m.now(),
	}

	text, err := m.Text.ExtractText(ctx, path)
	if err != nil {
		m.logger().Error("document extraction failed", "file", name, "error", err)
		doc.Content = newsroom.PDFErrorContentPrefix + newsroom.ErrorMessage(err)
		return doc
	}

	doc.Content = text.Text
	doc.Pages = text.Pages
	doc.WordCount = newsroom.CountWords(text.Text)
	doc.ContentHash = ContentHash(text.Text)
	return doc
}

// CrawlIsStale reports whether the site should be crawled again: there are
// no persisted crawl results, or the newest is older than Freshness.
func (m *Manager) CrawlIsStale(ctx context.Context) (bool, error) {
	pages, err := m.Pages.LoadPages(ctx)
	if newsroom.ErrorCode(err) == newsroom.ENOTFOUND {
		return true, nil
	} else if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		m.logger().Warn("unreadable crawl results; treating crawl as stale", "error", err)
		return true, nil
	}
	if len(pages) == 0 {
		return true, nil
	}

	var newest time.Time
	for _, p := range pages {
		if p.ScrapedAt.After(newest) {
			newest = p.ScrapedAt
		}
	}

	freshness := m.Freshness
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return m.now().Sub(newest) > freshness, nil
}

// MergePages converts successful crawl records into documents, merges them
// into the persisted corpus, and persists the result. It returns the
// merged corpus and the number of pages converted.
func (m *Manager) MergePages(ctx context.Context, pages []*newsroom.PageRecord) (*Corpus, int, error) {
	c, err := m.Load(ctx)
	if err != nil {
		return nil, 0, err
	}

	converted := ConvertPages(pages, m.now())
	for _, doc := range converted {
		c.Add(doc, m.Dedup)
	}

	if err := m.Documents.SaveDocuments(ctx, c.Documents()); err != nil {
		return nil, 0, fmt.Errorf("save corpus: %w", err)
	}
	m.logger().Info("merged crawl results", "converted", len(converted), "documents", c.Len())
	return c, len(converted), nil
}

// ConvertPages turns crawl records into corpus documents. Error records are
// skipped; numbering follows each record's position in pages.
func ConvertPages(pages []*newsroom.PageRecord, now time.Time) []*newsroom.Document {
	var docs []*newsroom.Document
	for i, p := range pages {
		if p.Failed() {
			continue
		}
		content := newsroom.FormatPage(p)
		words := p.Content.WordCount
		if words == 0 {
			words = newsroom.CountWords(content)
		}
		doc := &newsroom.Document{
			Filename:    fmt.Sprintf("web_%s_page_%d.txt", p.Category, i+1),
			Source:      p.URL,
			Type:        newsroom.DocumentTypeWeb,
			Category:    p.Category,
			Content:     content,
			Date:        newsroom.DateFromTime(now),
			Pages:       1,
			WordCount:   words,
			ContentHash: ContentHash(content),
			IngestedAt:  now,
		}
		if !p.Content.ContactInfo.Empty() {
			info := p.Content.ContactInfo
			doc.ContactInfo = &info
		}
		docs = append(docs, doc)
	}
	return docs
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.New(slog.DiscardHandler)
}
