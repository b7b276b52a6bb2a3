package newsroom_test

import (
	"testing"

	"github.com/fwojciec/newsroom"
	"github.com/stretchr/testify/assert"
)

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("includes every populated section in order", func(t *testing.T) {
		t.Parallel()

		page := &newsroom.PageRecord{
			URL:   "https://example.com/departments/fire",
			Title: "Fire Department",
			Content: newsroom.PageContent{
				Headings:   []newsroom.Heading{{Level: 1, Text: "Fire"}},
				Paragraphs: []string{"The fire department serves the whole city."},
				Lists:      []newsroom.List{{Kind: "ul", Items: []string{"Inspections", "Permits"}}},
				ContactInfo: newsroom.ContactInfo{
					Phones: []string{"516-431-1000"},
					Emails: []string{"fire@example.com"},
				},
				FullText: "Fire The fire department serves the whole city.",
			},
		}

		got := newsroom.FormatPage(page)

		assert.Contains(t, got, "Title: Fire Department\n\n")
		assert.Contains(t, got, "Headings:\nH1: Fire\n")
		assert.Contains(t, got, "Content:\nThe fire department serves the whole city.")
		assert.Contains(t, got, "Lists:\n• Inspections\n• Permits")
		assert.Contains(t, got, "Phone Numbers: 516-431-1000\n")
		assert.Contains(t, got, "Email Addresses: fire@example.com\n")
		assert.Contains(t, got, "Full Page Text:\nFire The fire department")
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()

		got := newsroom.FormatPage(&newsroom.PageRecord{Title: "Empty"})

		assert.Equal(t, "Title: Empty\n\n", got)
	})
}

func TestFormatQueryResult(t *testing.T) {
	t.Parallel()

	t.Run("returns sentinel for empty result", func(t *testing.T) {
		t.Parallel()

		got := newsroom.FormatQueryResult(&newsroom.QueryResult{Message: newsroom.NoResultsMessage})

		assert.Equal(t, newsroom.NoResultsMessage, got)
	})

	t.Run("renders results with context and contact info", func(t *testing.T) {
		t.Parallel()

		r := &newsroom.QueryResult{
			Results: []newsroom.SearchResult{{
				Identity:    "web_department_page_1.txt",
				Source:      "https://example.com/departments/fire",
				Category:    newsroom.CategoryDepartment,
				Date:        newsroom.FullDate(1, 2, 2025),
				Pages:       1,
				WordCount:   10,
				Summary:     "The fire department.",
				Context:     "serves the whole city",
				ContactInfo: &newsroom.ContactInfo{Phones: []string{"516-431-1000"}},
			}},
		}

		got := newsroom.FormatQueryResult(r)

		assert.Contains(t, got, "RESULT 1: web_department_page_1.txt")
		assert.Contains(t, got, "Category: department | Date: 01-02-2025 | Pages: 1 | Words: 10")
		assert.Contains(t, got, "Source: https://example.com/departments/fire")
		assert.Contains(t, got, "AI Summary:\nThe fire department.")
		assert.Contains(t, got, "\"...serves the whole city...\"")
		assert.Contains(t, got, "Phones: 516-431-1000")
	})
}
