// Package goquery extracts structured content and crawl links from HTML
// using CSS selectors.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsroom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ newsroom.Extractor = (*Extractor)(nil)

// minParagraphLen is the length a paragraph's trimmed text must exceed to
// be kept. Shorter paragraphs are mostly captions and boilerplate.
const minParagraphLen = 20

// Whitespace classes include U+00A0, which pages emit for &nbsp;.
var (
	phoneRe   = regexp.MustCompile(`\(?\d{3}\)?[-.\s\x{00A0}]?\d{3}[-.\s\x{00A0}]?\d{4}`)
	emailRe   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	addressRe = regexp.MustCompile(`\d+[\s\x{00A0}]+[A-Za-z\s\x{00A0}]+(?:Street|St|Avenue|Ave|Boulevard|Blvd|Drive|Dr|Road|Rd|Lane|Ln|Way|Court|Ct)[^,\n]*,?[\s\x{00A0}]*[A-Za-z\s\x{00A0}]+,?[\s\x{00A0}]*[A-Z]{2}[\s\x{00A0}]*\d{5}`)
	spaceRe   = regexp.MustCompile(`[\s\x{00A0}]+`)
)

// documentExtensions mark anchors that point at downloadable documents.
var documentExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"}

// Link regions shared by the extractor and the link selector.
const (
	navigationSelector = "nav a, .menu a, .navigation a"
	contentSelector    = "main a, .content a, article a"
)

// Extractor extracts structured page content with goquery.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns its title and structured content.
// Extraction never modifies the parsed document, and every collection in
// the result is non-nil. Only empty input is an error.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*newsroom.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, newsroom.Errorf(newsroom.EINVALID, "empty document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, newsroom.Errorf(newsroom.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, newsroom.Errorf(newsroom.EINVALID, "invalid page URL: %v", err)
	}

	pageText := visibleText(doc.Selection, atom.Script, atom.Style)
	fullText := collapseSpace(visibleText(doc.Find("body"), atom.Script, atom.Style, atom.Nav, atom.Header, atom.Footer))

	content := newsroom.PageContent{
		MetaDescription: metaContent(doc, "description"),
		MetaKeywords:    metaContent(doc, "keywords"),
		Headings:        extractHeadings(doc),
		Paragraphs:      extractParagraphs(doc),
		Lists:           extractLists(doc),
		Tables:          extractTables(doc),
		Forms:           extractForms(doc),
		Images:          extractImages(doc, base),
		NavigationLinks: extractLinks(doc.Find(navigationSelector), base),
		ContentLinks:    extractLinks(doc.Find(contentSelector).Not(".menu a, nav a"), base),
		ContactInfo: newsroom.ContactInfo{
			Phones: uniqueMatches(phoneRe, pageText),
			Emails: uniqueMatches(emailRe, pageText),
		},
		Addresses:     uniqueMatches(addressRe, pageText),
		DocumentLinks: extractDocumentLinks(doc, base),
		FullText:      fullText,
		WordCount:     newsroom.CountWords(fullText),
		LinkCount:     doc.Find("a").Length(),
		ImageCount:    doc.Find("img").Length(),
	}

	return &newsroom.ExtractResult{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Content: content,
	}, nil
}

func metaContent(doc *goquery.Document, name string) string {
	v, _ := doc.Find(`meta[name="` + name + `"]`).First().Attr("content")
	return v
}

func extractHeadings(doc *goquery.Document) []newsroom.Heading {
	headings := []newsroom.Heading{}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		headings = append(headings, newsroom.Heading{
			Level: headingLevel(sel.Nodes[0]),
			Text:  text,
		})
	})
	return headings
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	default:
		return 6
	}
}

func extractParagraphs(doc *goquery.Document) []string {
	paragraphs := []string{}
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) > minParagraphLen {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

func extractLists(doc *goquery.Document) []newsroom.List {
	lists := []newsroom.List{}
	doc.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		items := texts(sel.Find("li"))
		if len(items) == 0 {
			return
		}
		lists = append(lists, newsroom.List{
			Kind:  goquery.NodeName(sel),
			Items: items,
		})
	})
	return lists
}

func extractTables(doc *goquery.Document) []newsroom.Table {
	tables := []newsroom.Table{}
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		headers := []string{}
		sel.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers = append(headers, strings.TrimSpace(th.Text()))
		})

		rows := [][]string{}
		sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("td").Each(func(_ int, td *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(td.Text()))
			})
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		})

		if len(headers) == 0 && len(rows) == 0 {
			return
		}
		tables = append(tables, newsroom.Table{Headers: headers, Rows: rows})
	})
	return tables
}

func extractForms(doc *goquery.Document) []newsroom.Form {
	forms := []newsroom.Form{}
	doc.Find("form").Each(func(_ int, sel *goquery.Selection) {
		fields := []newsroom.FormField{}
		sel.Find("input, select, textarea").Each(func(_ int, field *goquery.Selection) {
			name, _ := field.Attr("name")
			typ, ok := field.Attr("type")
			if !ok || typ == "" {
				typ = goquery.NodeName(field)
			}
			label := strings.TrimSpace(field.PrevFiltered("label").Text())
			if label == "" {
				label, _ = field.Attr("placeholder")
			}
			_, required := field.Attr("required")
			fields = append(fields, newsroom.FormField{
				Name:     name,
				Type:     typ,
				Label:    label,
				Required: required,
			})
		})
		if len(fields) == 0 {
			return
		}

		action, _ := sel.Attr("action")
		method, _ := sel.Attr("method")
		forms = append(forms, newsroom.Form{
			Action: action,
			Method: method,
			Fields: fields,
		})
	})
	return forms
}

func extractImages(doc *goquery.Document, base *url.URL) []newsroom.Image {
	images := []newsroom.Image{}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			return
		}
		alt, _ := sel.Attr("alt")
		images = append(images, newsroom.Image{
			Src: resolve(base, src),
			Alt: alt,
		})
	})
	return images
}

// extractLinks returns anchors in sel that have both an href and text.
func extractLinks(sel *goquery.Selection, base *url.URL) []newsroom.Link {
	links := []newsroom.Link{}
	sel.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := strings.TrimSpace(a.Text())
		if href == "" || text == "" {
			return
		}
		links = append(links, newsroom.Link{URL: resolve(base, href), Text: text})
	})
	return links
}

func extractDocumentLinks(doc *goquery.Document, base *url.URL) []newsroom.DocumentLink {
	docs := []newsroom.DocumentLink{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !isDocumentHref(href) {
			return
		}
		docs = append(docs, newsroom.DocumentLink{
			URL:  resolve(base, href),
			Text: strings.TrimSpace(sel.Text()),
			Type: strings.ToLower(href[strings.LastIndex(href, ".")+1:]),
		})
	})
	return docs
}

func isDocumentHref(href string) bool {
	lower := strings.ToLower(href)
	for _, ext := range documentExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// resolve makes href absolute against base. Unparsable hrefs are returned
// as written.
func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// texts returns the non-empty trimmed text of each element in sel.
func texts(sel *goquery.Selection) []string {
	out := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// visibleText concatenates the text nodes under sel, skipping the subtrees
// of elements whose tag is in skip. The tree is walked read-only.
func visibleText(sel *goquery.Selection, skip ...atom.Atom) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			for _, a := range skip {
				if n.DataAtom == a {
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// uniqueMatches returns the matches of re in text, de-duplicated in order
// of first occurrence.
func uniqueMatches(re *regexp.Regexp, text string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, m := range re.FindAllString(text, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
