package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/corpus"
	"github.com/fwojciec/newsroom/crawl"
	"github.com/fwojciec/newsroom/fs"
	"github.com/fwojciec/newsroom/gemini"
	"github.com/fwojciec/newsroom/goquery"
	"github.com/fwojciec/newsroom/htmltomarkdown"
	nhttp "github.com/fwojciec/newsroom/http"
	"github.com/fwojciec/newsroom/pdf"
	"github.com/fwojciec/newsroom/search"
	nslog "github.com/fwojciec/newsroom/slog"
	"github.com/fwojciec/newsroom/sqlite"
	"github.com/fwojciec/newsroom/trafilatura"
	"github.com/fwojciec/newsroom/yaml"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is loaded from the --config path during Run.
	Config *yaml.Config

	// SQLite database, set when the sqlite storage backend is configured.
	DB *sqlite.DB

	// Fetcher is closed with the program.
	Fetcher newsroom.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		_ = m.Fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsroom"),
		kong.Description("Search the Long Beach city website and council agendas."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsroom --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = kongCtx.Command()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	m.Config, err = yaml.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
	}
	cfg := m.Config
	defer m.Close()

	if err := m.openStorage(deps); err != nil {
		return err
	}
	deps.Documents = nslog.NewLoggingDocumentStore(deps.Documents, logger)
	deps.ReportPath = cfg.Storage.ReportPath

	deps.Corpus = &corpus.Manager{
		Documents: deps.Documents,
		Pages:     deps.Pages,
		Text:      pdf.NewTextExtractor(),
		AgendaDir: cfg.Ingest.AgendaDir,
		Freshness: cfg.Ingest.Freshness,
		Dedup:     cfg.Ingest.DedupOrDefault(),
		Logger:    logger,
	}

	switch cmd {
	case "crawl", "page <url>":
		var fetcher newsroom.Fetcher = nhttp.NewFetcher(
			nhttp.WithTimeout(cfg.Crawl.Timeout),
			nhttp.WithUserAgent(cfg.Crawl.UserAgent),
		)
		if cli.Verbose {
			fetcher = nslog.NewLoggingFetcher(fetcher, logger)
		}
		m.Fetcher = fetcher
		deps.Fetcher = fetcher
		deps.Extractor = goquery.NewExtractor()
		deps.Articles = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()

		normalizer, err := crawl.NewURLNormalizer(cfg.Crawl.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid crawl.base_url: %w", err)
		}
		deps.Crawler = &crawl.Crawler{
			Fetcher:      fetcher,
			Extractor:    deps.Extractor,
			Links:        goquery.NewLinkSelector(),
			Normalizer:   normalizer,
			SectionPaths: cfg.Crawl.SectionPaths,
			MaxPages:     cfg.Crawl.MaxPages,
			Delay:        cfg.Crawl.Delay,
			Logger:       logger,
		}

	case "search <query>":
		summarizer, err := newSummarizer(ctx, cfg.Summarizer, stderr)
		if err != nil {
			return err
		}
		svc := &search.Service{
			Documents: deps.Documents,
			Engine: &search.Engine{
				Limit:         cfg.Search.Limit,
				ContextRadius: cfg.Search.ContextRadius,
			},
			Logger: logger,
		}
		if summarizer != nil {
			svc.Summarizer = nslog.NewLoggingSummarizer(summarizer, logger)
		}
		deps.Queries = svc
	}

	return kongCtx.Run(deps)
}

// openStorage wires the configured persistence backend into deps.
func (m *Main) openStorage(deps *Dependencies) error {
	cfg := m.Config
	switch cfg.Storage.Backend {
	case yaml.BackendSQLite:
		m.DB = sqlite.NewDB(cfg.Storage.DatabasePath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cfg.Storage.DatabasePath, err)
		}
		deps.Documents = sqlite.NewDocumentStore(m.DB)
		deps.Pages = sqlite.NewPageStore(m.DB)
	default:
		deps.Documents = fs.NewDocumentStore(cfg.Storage.DocumentsPath)
		deps.Pages = fs.NewPageStore(cfg.Storage.PagesPath)
	}
	return nil
}

// newSummarizer returns a Gemini summarizer, or nil when no API key is set.
// Without a summarizer every result shows the fallback summary.
func newSummarizer(ctx context.Context, cfg yaml.SummarizerConfig, stderr io.Writer) (newsroom.Summarizer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY not set; summaries are disabled. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewSummarizer(client, cfg.Model, gemini.WithRequestsPerMinute(cfg.RequestsPerMinute)), nil
}
