package crawl

import (
	"time"

	"github.com/fwojciec/newsroom"
)

// Report summarizes the outcome of a crawl run.
type Report struct {
	TotalPages      int                       `json:"totalPages"`
	PagesByType     map[newsroom.Category]int `json:"pagesByType"`
	TotalWords      int                       `json:"totalWords"`
	PagesWithErrors int                       `json:"pagesWithErrors"`
	CompletedAt     time.Time                 `json:"scrapingCompleted"`
	Coverage        Coverage                  `json:"coverage"`
}

// Coverage counts successful pages in the site's main sections. Pages in
// any other category count as Other.
type Coverage struct {
	Government  int `json:"government"`
	Departments int `json:"departments"`
	Community   int `json:"community"`
	Business    int `json:"business"`
	Other       int `json:"other"`
}

func (c *Coverage) add(category newsroom.Category) {
	switch category {
	case newsroom.CategoryGovernment:
		c.Government++
	case newsroom.CategoryDepartment:
		c.Departments++
	case newsroom.CategoryCommunity:
		c.Community++
	case newsroom.CategoryBusiness:
		c.Business++
	default:
		c.Other++
	}
}

// Summarize builds a report over crawl records. Error records count toward
// TotalPages and PagesWithErrors only.
func Summarize(records []*newsroom.PageRecord, completedAt time.Time) *Report {
	r := &Report{
		TotalPages:  len(records),
		PagesByType: make(map[newsroom.Category]int),
		CompletedAt: completedAt,
	}
	for _, p := range records {
		if p.Failed() {
			r.PagesWithErrors++
			continue
		}
		r.PagesByType[p.Category]++
		r.TotalWords += p.Content.WordCount
		r.Coverage.add(p.Category)
	}
	return r
}
