package crawl_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/newsroom"
	"github.com/fwojciec/newsroom/crawl"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	records := []*newsroom.PageRecord{
		{URL: "https://example.com/departments/fire", Category: newsroom.CategoryDepartment, Content: newsroom.PageContent{WordCount: 100}},
		{URL: "https://example.com/departments/police", Category: newsroom.CategoryDepartment, Content: newsroom.PageContent{WordCount: 50}},
		{URL: "https://example.com/news", Category: newsroom.CategoryGeneral, Content: newsroom.PageContent{WordCount: 7}},
		newsroom.NewErrorRecord("https://example.com/community/beach", errors.New("timeout"), fixedNow),
	}

	r := crawl.Summarize(records, fixedNow)

	assert.Equal(t, 4, r.TotalPages)
	assert.Equal(t, 1, r.PagesWithErrors)
	assert.Equal(t, 157, r.TotalWords)
	assert.Equal(t, map[newsroom.Category]int{
		newsroom.CategoryDepartment: 2,
		newsroom.CategoryGeneral:    1,
	}, r.PagesByType)
	assert.Equal(t, fixedNow, r.CompletedAt)
	assert.Equal(t, crawl.Coverage{Departments: 2, Other: 1}, r.Coverage)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	r := crawl.Summarize(nil, fixedNow)

	assert.Zero(t, r.TotalPages)
	assert.Empty(t, r.PagesByType)
}
