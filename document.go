package newsroom

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DocumentType identifies how a document entered the corpus.
type DocumentType string

// Document types.
const (
	DocumentTypePDF DocumentType = "pdf"
	DocumentTypeWeb DocumentType = "web_scraped"
)

// Placeholder markers. Documents whose content contains one of these are
// stand-ins for files that failed to process.
const (
	PlaceholderMarker      = "Placeholder content"
	PDFErrorContentPrefix  = "Error processing PDF: "
	PageErrorContentPrefix = "Error accessing page: "
)

// Document is a searchable corpus entry derived from an agenda file or a
// crawled page.
type Document struct {
	Filename    string       `json:"filename"`
	Source      string       `json:"source,omitempty"`
	Type        DocumentType `json:"type,omitempty"`
	Category    Category     `json:"category,omitempty"`
	Content     string       `json:"content"`
	Date        DocumentDate `json:"date"`
	Pages       int          `json:"pages"`
	WordCount   int          `json:"wordCount"`
	ContentHash string       `json:"contentHash,omitempty"`
	IngestedAt  time.Time    `json:"ingestedAt"`

	// ContactInfo is carried over from web pages for result display.
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Filename == "" {
		return Errorf(EINVALID, "document filename required")
	}
	return nil
}

// Key identifies the document within the corpus: the source URL for
// crawled pages, whose generated filenames are not stable across crawls,
// and the filename otherwise.
func (d *Document) Key() string {
	if d.Type == DocumentTypeWeb && d.Source != "" {
		return d.Source
	}
	return d.Filename
}

// IsPlaceholder reports whether the document stands in for a file or page
// that failed to process.
func (d *Document) IsPlaceholder() bool {
	return strings.Contains(d.Content, PlaceholderMarker) ||
		strings.HasPrefix(d.Content, PDFErrorContentPrefix)
}

// CountWords returns the whitespace-tokenized length of text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// DocumentStore persists the searchable corpus as a whole.
type DocumentStore interface {
	// LoadDocuments returns the persisted corpus in insertion order.
	// Returns ENOTFOUND if no corpus has been persisted yet.
	LoadDocuments(ctx context.Context) ([]*Document, error)

	// SaveDocuments replaces the persisted corpus.
	SaveDocuments(ctx context.Context, docs []*Document) error
}

// PageStore persists raw crawl results.
type PageStore interface {
	// LoadPages returns the records of the last crawl.
	// Returns ENOTFOUND if no crawl has been persisted yet.
	LoadPages(ctx context.Context) ([]*PageRecord, error)

	// SavePages replaces the persisted crawl results.
	SavePages(ctx context.Context, pages []*PageRecord) error
}

// ExtractedText is the plain text of a document file.
type ExtractedText struct {
	Text  string
	Pages int
}

// TextExtractor reads plain text out of document files such as PDFs.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (*ExtractedText, error)
}

// DateKind tags the precision of a DocumentDate.
type DateKind int

// Date precisions, from most to least specific.
const (
	DateUnknown DateKind = iota
	DateYear
	DateFull
)

// DocumentDate is a best-effort date recovered from a filename.
type DocumentDate struct {
	Kind  DateKind
	Year  int
	Month int
	Day   int
}

// FullDate returns a DocumentDate with day precision.
func FullDate(month, day, year int) DocumentDate {
	return DocumentDate{Kind: DateFull, Year: year, Month: month, Day: day}
}

// DateFromTime returns a day-precision DocumentDate for t.
func DateFromTime(t time.Time) DocumentDate {
	return FullDate(int(t.Month()), t.Day(), t.Year())
}

// String formats the date as MM-DD-YYYY, YYYY, or "unknown".
func (d DocumentDate) String() string {
	switch d.Kind {
	case DateFull:
		return fmt.Sprintf("%02d-%02d-%04d", d.Month, d.Day, d.Year)
	case DateYear:
		return strconv.Itoa(d.Year)
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the date in its string form.
func (d DocumentDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a date string. ISO dates (YYYY-MM-DD) are accepted
// as well; anything unrecognized becomes DateUnknown rather than an error.
func (d *DocumentDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		*d = DateFromTime(t)
		return nil
	}
	*d = ParseFilenameDate(s)
	return nil
}

var (
	dashDateRe = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
	dotDateRe  = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{2,4})`)
	yearRe     = regexp.MustCompile(`20\d\d`)
)

// ParseFilenameDate extracts a date from a filename. It never fails:
// unmatched names yield DateUnknown.
//
// Recognized forms, in order: M-D-YYYY, M.D.YY or M.D.YYYY (two-digit years
// are in the 2000s), and a bare 20xx year anywhere in the name.
func ParseFilenameDate(filename string) DocumentDate {
	if m := dashDateRe.FindStringSubmatch(filename); m != nil {
		return FullDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := dotDateRe.FindStringSubmatch(filename); m != nil {
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return FullDate(atoi(m[1]), atoi(m[2]), atoi(year))
	}
	if y := yearRe.FindString(filename); y != "" {
		return DocumentDate{Kind: DateYear, Year: atoi(y)}
	}
	return DocumentDate{}
}

// atoi converts a string of digits matched by a regexp.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
