package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/crawl"
	"github.com/fwojciec/newsroom/fs"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	var report crawl.Report
	if err := fs.ReadJSON(deps.ReportPath, &report); err != nil {
		if newsroom.ErrorCode(err) == newsroom.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: no crawl report found. Run 'newsroom crawl' first.")
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsroom.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawl completed: %s\n", report.CompletedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(deps.Stdout, "Total pages:     %d\n", report.TotalPages)
	fmt.Fprintf(deps.Stdout, "Pages w/ errors: %d\n", report.PagesWithErrors)
	fmt.Fprintf(deps.Stdout, "Total words:     %d\n", report.TotalWords)

	categories := make([]newsroom.Category, 0, len(report.PagesByType))
	for cat := range report.PagesByType {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	if len(categories) > 0 {
		fmt.Fprintln(deps.Stdout, "\nPages by category:")
		for _, cat := range categories {
			fmt.Fprintf(deps.Stdout, "  %-14s %d\n", cat, report.PagesByType[cat])
		}
	}

	cov := report.Coverage
	fmt.Fprintf(deps.Stdout, "\nCoverage: government %d, departments %d, community %d, business %d, other %d\n",
		cov.Government, cov.Departments, cov.Community, cov.Business, cov.Other)

	return nil
}
