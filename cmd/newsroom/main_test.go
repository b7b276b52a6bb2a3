package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsroom"
	main "github.com/fwojciec/newsroom/cmd/newsroom"
	"github.com/fwojciec/newsroom/corpus"
	"github.com/fwojciec/newsroom/crawl"
	"github.com/fwojciec/newsroom/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

// stores holds an in-memory corpus and crawl result set.
type stores struct {
	docs  []*newsroom.Document
	pages []*newsroom.PageRecord
	saved bool
}

func (s *stores) documents() *mock.DocumentStore {
	return &mock.DocumentStore{
		LoadDocumentsFn: func(context.Context) ([]*newsroom.Document, error) {
			if s.docs == nil {
				return nil, newsroom.Errorf(newsroom.ENOTFOUND, "no corpus")
			}
			return s.docs, nil
		},
		SaveDocumentsFn: func(_ context.Context, docs []*newsroom.Document) error {
			s.docs = docs
			return nil
		},
	}
}

func (s *stores) pageStore() *mock.PageStore {
	return &mock.PageStore{
		LoadPagesFn: func(context.Context) ([]*newsroom.PageRecord, error) {
			if !s.saved {
				return nil, newsroom.Errorf(newsroom.ENOTFOUND, "no crawl")
			}
			return s.pages, nil
		},
		SavePagesFn: func(_ context.Context, pages []*newsroom.PageRecord) error {
			s.pages = pages
			s.saved = true
			return nil
		},
	}
}

// newDeps returns dependencies over in-memory stores with a fixed clock.
func newDeps(t *testing.T, s *stores) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	docs, pages := s.documents(), s.pageStore()
	deps := &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     stdout,
		Stderr:     stderr,
		Documents:  docs,
		Pages:      pages,
		ReportPath: filepath.Join(t.TempDir(), "report.json"),
		Now:        func() time.Time { return fixedNow },
		Corpus: &corpus.Manager{
			Documents: docs,
			Pages:     pages,
			Text: &mock.TextExtractor{
				ExtractTextFn: func(context.Context, string) (*newsroom.ExtractedText, error) {
					return &newsroom.ExtractedText{Text: "council approved budget", Pages: 2}, nil
				},
			},
			AgendaDir: t.TempDir(),
			Dedup:     true,
		},
	}

	n, err := crawl.NewURLNormalizer("https://www.example.com")
	require.NoError(t, err)
	deps.Crawler = &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string, pageURL string) (*newsroom.ExtractResult, error) {
				return &newsroom.ExtractResult{
					Title:   "Page",
					Content: newsroom.PageContent{FullText: "public works schedule", WordCount: 3},
				}, nil
			},
		},
		Links: &mock.LinkSelector{
			ExtractLinksFn: func(string) ([]newsroom.DiscoveredLink, error) {
				return []newsroom.DiscoveredLink{{URL: "/news", Source: newsroom.LinkSourceNavigation}}, nil
			},
		},
		Pacer:        &mock.Pacer{WaitFn: func(context.Context) error { return nil }},
		Normalizer:   n,
		SectionPaths: []string{"/departments/public-works"},
	}

	return deps, stdout, stderr
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	for _, cmd := range []string{"crawl", "ingest", "search", "docs", "report", "page"} {
		assert.Contains(t, stdout.String(), cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "newsroom.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
		return path
	}

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "search")
	})

	t.Run("no command is an error", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("rejects unknown storage backend", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "storage:\n  backend: postgres\n")

		err := main.NewMain().Run(context.Background(), []string{"--config", path, "docs"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("ingests from a configured json corpus", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
storage:
  documents_path: "./corpus.json"
  pages_path: "./pages.json"
ingest:
  agenda_dir: "./agendas"
`)
		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--config", path, "ingest"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Ingested 0 agenda documents")
	})

	t.Run("lists documents from a sqlite corpus", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
storage:
  backend: sqlite
  database_path: "./newsroom.db"
`)
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--config", path, "docs"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, newsroom.ENOTFOUND, newsroom.ErrorCode(err))
		assert.Contains(t, stderr.String(), "corpus is empty")
	})
}
