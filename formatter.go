package newsroom

import (
	"fmt"
	"strings"
)

// FormatPage flattens a page record into the searchable text stored in the
// corpus. Sections with nothing extracted are omitted.
func FormatPage(page *PageRecord) string {
	var b strings.Builder
	c := page.Content

	fmt.Fprintf(&b, "Title: %s\n\n", page.Title)

	if len(c.Headings) > 0 {
		b.WriteString("Headings:\n")
		for _, h := range c.Headings {
			fmt.Fprintf(&b, "H%d: %s\n", h.Level, h.Text)
		}
		b.WriteString("\n")
	}

	if len(c.Paragraphs) > 0 {
		b.WriteString("Content:\n")
		b.WriteString(strings.Join(c.Paragraphs, "\n\n"))
		b.WriteString("\n\n")
	}

	if len(c.Lists) > 0 {
		lists := make([]string, 0, len(c.Lists))
		for _, l := range c.Lists {
			items := make([]string, 0, len(l.Items))
			for _, item := range l.Items {
				items = append(items, "• "+item)
			}
			lists = append(lists, strings.Join(items, "\n"))
		}
		b.WriteString("Lists:\n")
		b.WriteString(strings.Join(lists, "\n\n"))
		b.WriteString("\n\n")
	}

	if len(c.ContactInfo.Phones) > 0 {
		fmt.Fprintf(&b, "Phone Numbers: %s\n", strings.Join(c.ContactInfo.Phones, ", "))
	}
	if len(c.ContactInfo.Emails) > 0 {
		fmt.Fprintf(&b, "Email Addresses: %s\n", strings.Join(c.ContactInfo.Emails, ", "))
	}

	if c.FullText != "" {
		b.WriteString("\n\nFull Page Text:\n")
		b.WriteString(c.FullText)
	}

	return b.String()
}

// FormatQueryResult renders a query result for terminal display.
func FormatQueryResult(r *QueryResult) string {
	if r.NoResults() {
		if r.Message != "" {
			return r.Message
		}
		return NoResultsMessage
	}

	rule := strings.Repeat("=", 50)
	var b strings.Builder
	for i, res := range r.Results {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "RESULT %d: %s\n", i+1, res.Identity)
		if res.Category != "" {
			fmt.Fprintf(&b, "Category: %s | ", res.Category)
		}
		fmt.Fprintf(&b, "Date: %s | Pages: %d | Words: %d\n", res.Date, res.Pages, res.WordCount)
		if res.Source != "" && res.Source != res.Identity {
			fmt.Fprintf(&b, "Source: %s\n", res.Source)
		}
		b.WriteString("\nAI Summary:\n")
		b.WriteString(res.Summary)
		b.WriteString("\n")
		if res.Context != "" {
			fmt.Fprintf(&b, "\nContext:\n\"...%s...\"\n", res.Context)
		}
		if res.ContactInfo != nil && !res.ContactInfo.Empty() {
			b.WriteString("\nContact:\n")
			if len(res.ContactInfo.Phones) > 0 {
				fmt.Fprintf(&b, "  Phones: %s\n", strings.Join(res.ContactInfo.Phones, ", "))
			}
			if len(res.ContactInfo.Emails) > 0 {
				fmt.Fprintf(&b, "  Emails: %s\n", strings.Join(res.ContactInfo.Emails, ", "))
			}
		}
	}
	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
