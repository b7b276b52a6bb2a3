// Package yaml loads newsroom configuration from YAML files.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/newsroom"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	Crawl      CrawlConfig      `yaml:"crawl"`
	Storage    StorageConfig    `yaml:"storage"`
	Ingest     IngestConfig     `yaml:"ingest"`
	Search     SearchConfig     `yaml:"search"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
}

// CrawlConfig holds crawler settings.
type CrawlConfig struct {
	BaseURL      string        `yaml:"base_url"`
	SectionPaths []string      `yaml:"section_paths"`
	MaxPages     int           `yaml:"max_pages"`
	Delay        time.Duration `yaml:"delay"`
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
}

// StorageConfig selects the persistence backend and its paths.
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	DocumentsPath string `yaml:"documents_path"`
	PagesPath     string `yaml:"pages_path"`
	ReportPath    string `yaml:"report_path"`
	DatabasePath  string `yaml:"database_path"`
}

// IngestConfig holds agenda ingestion and corpus maintenance settings.
type IngestConfig struct {
	AgendaDir string        `yaml:"agenda_dir"`
	Freshness time.Duration `yaml:"freshness"`
	Dedup     *bool         `yaml:"dedup"`
}

// DedupOrDefault returns whether to dedupe corpus documents; defaults to
// true when unset.
func (c *IngestConfig) DedupOrDefault() bool {
	if c.Dedup != nil {
		return *c.Dedup
	}
	return true
}

// SearchConfig holds ranking settings.
type SearchConfig struct {
	Limit         int `yaml:"limit"`
	ContextRadius int `yaml:"context_radius"`
}

// SummarizerConfig holds LLM settings.
type SummarizerConfig struct {
	Model             string `yaml:"model"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

// Default returns a config with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Load reads and parses the config file at path and applies defaults.
// A missing file yields the defaults. Paths starting with "./" are
// resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newsroom.Errorf(newsroom.EINVALID, "failed to parse config: %v", err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configDir := filepath.Dir(path)
	cfg.Storage.DocumentsPath = expandPath(cfg.Storage.DocumentsPath, configDir)
	cfg.Storage.PagesPath = expandPath(cfg.Storage.PagesPath, configDir)
	cfg.Storage.ReportPath = expandPath(cfg.Storage.ReportPath, configDir)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Ingest.AgendaDir = expandPath(cfg.Ingest.AgendaDir, configDir)

	return &cfg, nil
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return newsroom.Errorf(newsroom.EINVALID, "unknown storage backend %q", c.Storage.Backend)
	}
	if c.Crawl.MaxPages < 0 {
		return newsroom.Errorf(newsroom.EINVALID, "crawl.max_pages must not be negative")
	}
	if c.Crawl.Delay < 0 {
		return newsroom.Errorf(newsroom.EINVALID, "crawl.delay must not be negative")
	}
	return nil
}

// expandPath resolves paths starting with "./" against configDir. Other
// relative paths stay relative to the working directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	return path
}
