// Package crawl provides polite, bounded crawling of a single website.
// It coordinates link discovery from the site root, sequential fetching
// with a fixed delay, and content extraction into page records.
package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsroom"
)

// Crawler orchestrates a crawl of one site.
type Crawler struct {
	Fetcher    newsroom.Fetcher
	Extractor  newsroom.Extractor
	Links      newsroom.LinkSelector
	Normalizer *URLNormalizer

	// Pacer spaces out fetches. When nil, a Pacer with Delay is used.
	Pacer newsroom.Pacer

	// SectionPaths are site paths seeded before link discovery, in order.
	SectionPaths []string

	// MaxPages bounds the number of fetches. Non-positive means no limit.
	MaxPages int
	Delay    time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run discovers the site's pages and crawls them.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) ([]*newsroom.PageRecord, *State, error) {
	state := c.Discover(ctx)
	records, err := c.Crawl(ctx, state, progress)
	return records, state, err
}

// Discover builds the initial crawl state. It seeds the base URL and every
// section path, then fetches the root page once and adds each valid link
// found in its navigation and main-content regions. A failed root fetch is
// logged and the seeds alone are returned.
func (c *Crawler) Discover(ctx context.Context) *State {
	log := c.logger()
	state := NewState(c.MaxPages, c.Delay)

	base := c.Normalizer.BaseURL()
	state.Discover(base)
	for _, path := range c.SectionPaths {
		if u, ok := c.Normalizer.Normalize(path); ok {
			state.Discover(u)
		}
	}

	html, err := c.Fetcher.Fetch(ctx, base)
	if err != nil {
		log.Warn("root page discovery failed", "url", base, "error", err)
		return state
	}

	links, err := c.Links.ExtractLinks(html)
	if err != nil {
		log.Warn("link extraction failed", "url", base, "selector", c.Links.Name(), "error", err)
		return state
	}

	var added int
	for _, link := range links {
		u, ok := c.Normalizer.Normalize(link.URL)
		if !ok || !c.Normalizer.Validate(u) {
			continue
		}
		if state.Discover(u) {
			added++
		}
	}
	log.Info("discovery complete", "links", len(links), "added", added, "discovered", state.Discovered.Len())

	return state
}

// Crawl fetches discovered URLs in discovery order until every one has been
// visited or MaxPages fetches have been made. Between fetches the
// crawler waits on the pacer, starting once the previous fetch returns, so
// the pause is the same after fast, slow, and failed fetches. Failed fetches and extractions produce error records
// and are not retried. The only error returned is a context error from the
// pacer; records gathered so far are returned with it.
func (c *Crawler) Crawl(ctx context.Context, state *State, progress ProgressFunc) ([]*newsroom.PageRecord, error) {
	pacer := c.Pacer
	if pacer == nil {
		pacer = NewPacer(state.Delay)
	}

	total := state.Target()
	records := make([]*newsroom.PageRecord, 0, total)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	fetched := 0
	for _, u := range state.Discovered.URLs() {
		if state.MaxPages > 0 && fetched >= state.MaxPages {
			break
		}
		if state.Visited(u) {
			continue
		}

		if fetched > 0 {
			if err := pacer.Wait(ctx); err != nil {
				return records, err
			}
		}
		fetched++

		record, err := c.crawlPage(ctx, u)
		state.MarkVisited(u)
		records = append(records, record)

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: fetched,
				Total:     total,
				URL:       u,
			}
			if err != nil {
				event.Type = ProgressFailed
				event.Error = err
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: fetched,
			Total:     total,
		})
	}

	return records, nil
}

// crawlPage fetches and extracts a single URL. The record is never nil:
// on failure it is an error record and the cause is returned alongside it.
func (c *Crawler) crawlPage(ctx context.Context, url string) (*newsroom.PageRecord, error) {
	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		c.logger().Debug("fetch failed", "url", url, "error", err)
		return newsroom.NewErrorRecord(url, err, c.now()), err
	}

	extracted, err := c.Extractor.Extract(html, url)
	if err != nil {
		c.logger().Debug("extract failed", "url", url, "error", err)
		return newsroom.NewErrorRecord(url, err, c.now()), err
	}

	return &newsroom.PageRecord{
		URL:       url,
		Title:     extracted.Title,
		Category:  newsroom.ClassifyCategory(url),
		ScrapedAt: c.now(),
		Content:   extracted.Content,
	}, nil
}

func (c *Crawler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
