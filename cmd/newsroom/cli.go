package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/corpus"
	"github.com/fwojciec/newsroom/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Documents newsroom.DocumentStore
	Pages     newsroom.PageStore
	Corpus    *corpus.Manager
	Crawler   *crawl.Crawler
	Queries   newsroom.QueryService

	// Fetcher, Extractor, Articles, and Converter serve the page command.
	Fetcher   newsroom.Fetcher
	Extractor newsroom.Extractor
	Articles  newsroom.ArticleExtractor
	Converter newsroom.Converter

	// ReportPath is where crawl reports are written.
	ReportPath string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" default:"newsroom.yaml" env:"NEWSROOM_CONFIG" help:"Path to config file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl the city website and merge pages into the corpus"`
	Ingest IngestCmd `cmd:"" help:"Extract text from agenda PDFs into the corpus"`
	Search SearchCmd `cmd:"" help:"Search the corpus and summarize the top matches"`
	Docs   DocsCmd   `cmd:"" help:"List documents in the corpus"`
	Report ReportCmd `cmd:"" help:"Show the last crawl report"`
	Page   PageCmd   `cmd:"" help:"Fetch a single page and print its extracted content"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Force    bool          `short:"f" help:"Crawl even if the last crawl is still fresh"`
	Preview  bool          `short:"p" help:"Show discovered URLs without fetching them"`
	MaxPages int           `short:"m" help:"Maximum pages to fetch (overrides config)"`
	Delay    time.Duration `short:"d" help:"Delay between requests (overrides config)"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Category string   `short:"t" help:"Only search pages of this category"`
	JSON     bool     `help:"Print results as JSON"`
	Query    []string `arg:"" help:"Search terms"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Category string `short:"t" help:"Only list pages of this category"`
	Full     bool   `help:"Show full document content"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct{}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Markdown bool   `short:"m" help:"Print the page's main article as Markdown"`
}
