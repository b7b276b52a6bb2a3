package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/crawl"
	"github.com/fwojciec/newsroom/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.MaxPages > 0 {
		deps.Crawler.MaxPages = c.MaxPages
	}
	if c.Delay > 0 {
		deps.Crawler.Delay = c.Delay
	}

	if c.Preview {
		state := deps.Crawler.Discover(deps.Ctx)
		for _, u := range state.Discovered.URLs() {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if !c.Force {
		stale, err := deps.Corpus.CrawlIsStale(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
			return err
		}
		if !stale {
			fmt.Fprintln(deps.Stdout, "Crawl results are fresh; use --force to crawl again.")
			return nil
		}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling up to %d pages\n", event.Total)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, crawl.TruncateURL(event.URL, 60))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	deps.Crawler.Now = deps.Now
	deps.Corpus.Now = deps.Now
	records, _, err := deps.Crawler.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "crawl interrupted: %v\n", err)
	}

	// Results gathered before an interrupt are still persisted.
	saveCtx := context.WithoutCancel(deps.Ctx)

	if saveErr := deps.Pages.SavePages(saveCtx, records); saveErr != nil {
		fmt.Fprintf(deps.Stderr, "error saving pages: %s\n", newsroom.ErrorMessage(saveErr))
		return saveErr
	}

	report := crawl.Summarize(records, deps.now())
	if deps.ReportPath != "" {
		if err := fs.WriteJSON(deps.ReportPath, report); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving report: %v\n", err)
			return err
		}
	}

	corp, converted, mergeErr := deps.Corpus.MergePages(saveCtx, records)
	if mergeErr != nil {
		fmt.Fprintf(deps.Stderr, "error merging pages: %s\n", newsroom.ErrorMessage(mergeErr))
		return mergeErr
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d errors, %d words)\n",
		report.TotalPages, report.PagesWithErrors, report.TotalWords)
	fmt.Fprintf(deps.Stdout, "Added %d pages; corpus has %d documents\n", converted, corp.Len())

	return err
}
