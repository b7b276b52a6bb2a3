package newsroom

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Category classifies a crawled page by the site section it belongs to.
type Category string

// Site section categories.
const (
	CategoryGovernment   Category = "government"
	CategoryDepartment   Category = "department"
	CategoryCommunity    Category = "community"
	CategoryBusiness     Category = "business"
	CategoryHowTo        Category = "how-to"
	CategoryExplore      Category = "explore"
	CategoryQuickConnect Category = "quick-connect"
	CategoryGeneral      Category = "general"
)

// categoryRules maps path segments to categories. Order matters: the first
// matching segment wins.
var categoryRules = []struct {
	segment  string
	category Category
}{
	{"/government/", CategoryGovernment},
	{"/departments/", CategoryDepartment},
	{"/community/", CategoryCommunity},
	{"/business/", CategoryBusiness},
	{"/how-do-i/", CategoryHowTo},
	{"/explore/", CategoryExplore},
	{"/quick-connect/", CategoryQuickConnect},
}

// Categories returns every known category in classification order,
// with CategoryGeneral last.
func Categories() []Category {
	categories := make([]Category, 0, len(categoryRules)+1)
	for _, r := range categoryRules {
		categories = append(categories, r.category)
	}
	return append(categories, CategoryGeneral)
}

// ClassifyCategory returns the category of a page URL using the first
// section segment contained in the lowercased URL.
// Section roots without a trailing slash (e.g. "/government") are general.
func ClassifyCategory(rawURL string) Category {
	lower := strings.ToLower(rawURL)
	for _, r := range categoryRules {
		if strings.Contains(lower, r.segment) {
			return r.category
		}
	}
	return CategoryGeneral
}

// ParseCategory validates a category filter token.
// An empty token is valid and means "no filter".
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", Errorf(EINVALID, "unknown category %q", s)
}

// PageRecord is the structured result of crawling a single URL.
// A failed fetch produces a placeholder record: Error is set and Content
// holds only an explanatory FullText.
type PageRecord struct {
	URL       string      `json:"url"`
	Title     string      `json:"title,omitempty"`
	Category  Category    `json:"type,omitempty"`
	ScrapedAt time.Time   `json:"scrapedAt"`
	Error     string      `json:"error,omitempty"`
	Content   PageContent `json:"content"`
}

// Failed reports whether the record is an error placeholder.
func (p *PageRecord) Failed() bool {
	return p.Error != ""
}

// NewErrorRecord returns a placeholder record for a URL that could not be
// fetched or extracted.
func NewErrorRecord(url string, err error, scrapedAt time.Time) *PageRecord {
	msg := ErrorMessage(err)
	return &PageRecord{
		URL:       url,
		Category:  ClassifyCategory(url),
		ScrapedAt: scrapedAt,
		Error:     msg,
		Content:   PageContent{FullText: fmt.Sprintf("Error accessing page: %s", msg)},
	}
}

// PageContent holds everything extracted from a page's markup.
// Collections are empty, not nil, when the extractor found nothing.
type PageContent struct {
	MetaDescription string         `json:"metaDescription,omitempty"`
	MetaKeywords    string         `json:"metaKeywords,omitempty"`
	Headings        []Heading      `json:"headings"`
	Paragraphs      []string       `json:"paragraphs"`
	Lists           []List         `json:"lists"`
	Tables          []Table        `json:"tables"`
	Forms           []Form         `json:"forms"`
	Images          []Image        `json:"images"`
	NavigationLinks []Link         `json:"navigationLinks"`
	ContentLinks    []Link         `json:"contentLinks"`
	ContactInfo     ContactInfo    `json:"contactInfo"`
	Addresses       []string       `json:"addresses"`
	DocumentLinks   []DocumentLink `json:"documentLinks"`
	FullText        string         `json:"fullText"`
	WordCount       int            `json:"wordCount"`
	LinkCount       int            `json:"linkCount"`
	ImageCount      int            `json:"imageCount"`
}

// Heading is an h1-h6 element.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// UnmarshalJSON decodes a heading whose level is either a number or a tag
// name such as "h2", the form older crawl files use.
func (h *Heading) UnmarshalJSON(data []byte) error {
	var raw struct {
		Level json.RawMessage `json:"level"`
		Text  string          `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	h.Text = raw.Text
	h.Level = 0
	if len(raw.Level) == 0 || string(raw.Level) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.Level, &h.Level); err == nil {
		return nil
	}
	var tag string
	if err := json.Unmarshal(raw.Level, &tag); err != nil {
		return fmt.Errorf("heading level: %w", err)
	}
	level, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(tag), "h"))
	if err != nil {
		return fmt.Errorf("heading level %q: %w", tag, err)
	}
	h.Level = level
	return nil
}

// List is an ordered ("ol") or unordered ("ul") list.
type List struct {
	Kind  string   `json:"type"`
	Items []string `json:"items"`
}

// Table holds header cells and body rows separately.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Form describes an HTML form and its input fields.
type Form struct {
	Action string      `json:"action,omitempty"`
	Method string      `json:"method,omitempty"`
	Fields []FormField `json:"fields"`
}

// FormField describes a single input, select, or textarea.
type FormField struct {
	Name     string `json:"name,omitempty"`
	Type     string `json:"type"`
	Label    string `json:"label,omitempty"`
	Required bool   `json:"required"`
}

// Image is an img element with an absolute source.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Link is an anchor with non-empty text.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// DocumentLink is an anchor pointing at a downloadable document.
// Type is the file extension, e.g. "pdf".
type DocumentLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// ContactInfo holds de-duplicated phone numbers and email addresses.
type ContactInfo struct {
	Phones []string `json:"phones"`
	Emails []string `json:"emails"`
}

// Empty reports whether no contact details were found.
func (c ContactInfo) Empty() bool {
	return len(c.Phones) == 0 && len(c.Emails) == 0
}
