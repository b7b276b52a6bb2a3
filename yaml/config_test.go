package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newsroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, yaml.Default(), cfg)
		assert.Equal(t, "https://www.longbeachny.gov", cfg.Crawl.BaseURL)
		assert.Equal(t, 500, cfg.Crawl.MaxPages)
		assert.Equal(t, 2*time.Second, cfg.Crawl.Delay)
		assert.Equal(t, yaml.BackendJSON, cfg.Storage.Backend)
		assert.Equal(t, "2025_city_council_agendas", cfg.Ingest.AgendaDir)
		assert.True(t, cfg.Ingest.DedupOrDefault())
		assert.Equal(t, 3, cfg.Search.Limit)
		assert.Equal(t, 100, cfg.Search.ContextRadius)
		assert.Equal(t, 10, cfg.Summarizer.RequestsPerMinute)
		assert.Contains(t, cfg.Crawl.SectionPaths, "/departments/public-works")
		assert.Equal(t, "/", cfg.Crawl.SectionPaths[0])
	})

	t.Run("overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
crawl:
  base_url: "https://example.org"
  section_paths: ["/", "/news"]
  max_pages: 10
  delay: 500ms
storage:
  backend: sqlite
ingest:
  dedup: false
  freshness: 1h
search:
  limit: 5
summarizer:
  requests_per_minute: -1
`)

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "https://example.org", cfg.Crawl.BaseURL)
		assert.Equal(t, []string{"/", "/news"}, cfg.Crawl.SectionPaths)
		assert.Equal(t, 10, cfg.Crawl.MaxPages)
		assert.Equal(t, 500*time.Millisecond, cfg.Crawl.Delay)
		assert.Equal(t, 30*time.Second, cfg.Crawl.Timeout)
		assert.Equal(t, yaml.BackendSQLite, cfg.Storage.Backend)
		assert.False(t, cfg.Ingest.DedupOrDefault())
		assert.Equal(t, time.Hour, cfg.Ingest.Freshness)
		assert.Equal(t, 5, cfg.Search.Limit)
		assert.Equal(t, 100, cfg.Search.ContextRadius)
		assert.Equal(t, -1, cfg.Summarizer.RequestsPerMinute)
	})

	t.Run("resolves dot-slash paths against config dir", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
storage:
  documents_path: "./data/corpus.json"
  pages_path: "pages.json"
`)

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "data", "corpus.json"), cfg.Storage.DocumentsPath)
		assert.Equal(t, "pages.json", cfg.Storage.PagesPath)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "storage:\n  backend: postgres\n")

		_, err := yaml.Load(path)

		assert.Equal(t, newsroom.EINVALID, newsroom.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "crawl: [unterminated\n")

		_, err := yaml.Load(path)

		assert.Equal(t, newsroom.EINVALID, newsroom.ErrorCode(err))
	})
}
