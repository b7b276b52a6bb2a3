package main

import (
	"fmt"

	"github.com/fwojciec/newsroom"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	category, err := newsroom.ParseCategory(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	corp, err := deps.Corpus.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	var docs []*newsroom.Document
	for _, d := range corp.Documents() {
		if category == "" || d.Category == category {
			docs = append(docs, d)
		}
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stderr, "error: corpus is empty. Run 'newsroom ingest' or 'newsroom crawl' first.")
		return newsroom.Errorf(newsroom.ENOTFOUND, "no documents")
	}

	if c.Full {
		for _, d := range docs {
			fmt.Fprintf(deps.Stdout, "=== %s ===\n%s\n\n", d.Filename, d.Content)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents (%d total):\n\n", len(docs))
	for i, d := range docs {
		fmt.Fprintf(deps.Stdout, "  %d. %s (%s, %d pages, %d words)\n", i+1, d.Filename, d.Date, d.Pages, d.WordCount)
		if d.Source != "" {
			fmt.Fprintf(deps.Stdout, "     %s\n", d.Source)
		}
	}

	return nil
}
