package main

import (
	"fmt"

	"github.com/fwojciec/newsroom"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	deps.Corpus.Now = deps.Now
	corp, err := deps.Corpus.IngestDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	var pdfs, failed int
	for _, d := range corp.Documents() {
		if d.Type != newsroom.DocumentTypePDF {
			continue
		}
		pdfs++
		if d.IsPlaceholder() {
			failed++
		}
	}

	fmt.Fprintf(deps.Stdout, "Ingested %d agenda documents (%d failed); corpus has %d documents\n",
		pdfs, failed, corp.Len())
	return nil
}
