package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/newsroom"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	category, err := newsroom.ParseCategory(c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	if _, err := deps.Corpus.LoadOrIngest(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	result, err := deps.Queries.Query(deps.Ctx, strings.Join(c.Query, " "), category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(deps.Stdout, newsroom.FormatQueryResult(result))
	return nil
}
