// Package search ranks corpus documents against free-text queries by raw
// term frequency and assembles summarized results.
package search

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/newsroom"
)

// Engine defaults.
const (
	DefaultLimit         = 3
	DefaultContextRadius = 100
)

// stopWords are dropped from queries before searching.
var stopWords = map[string]bool{
	"tell": true, "me": true, "about": true, "what": true, "is": true,
	"are": true, "the": true, "a": true, "an": true, "and": true,
	"or": true, "but": true, "in": true, "on": true, "at": true,
	"to": true, "for": true, "of": true, "with": true, "by": true,
	"how": true, "when": true, "where": true, "why": true, "who": true,
}

// Tokenize turns a query into search terms: lowercased, punctuation
// stripped, stop-words and tokens of two characters or fewer dropped.
// If nothing survives, the lowercased raw query is the only term.
func Tokenize(query string) []string {
	lower := strings.ToLower(query)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lower)

	var terms []string
	for _, tok := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(tok) <= 2 || stopWords[tok] {
			continue
		}
		terms = append(terms, tok)
	}
	if len(terms) == 0 {
		return []string{lower}
	}
	return terms
}

// Match is a ranked document with its preview context.
type Match struct {
	Document *newsroom.Document
	Score    int
	Context  string
}

// Engine ranks documents by summed term counts.
type Engine struct {
	// Limit caps the number of matches returned. Defaults to DefaultLimit.
	Limit int

	// ContextRadius is the number of characters kept on each side of the
	// first match. Defaults to DefaultContextRadius.
	ContextRadius int
}

// Search returns the top-ranked documents for terms. A document is a
// candidate when it passes the category filter (empty means any) and its
// content, filename, or source contains a term as a substring. Candidates
// are ordered by total non-overlapping term count, ties keeping corpus
// order.
func (e *Engine) Search(terms []string, docs []*newsroom.Document, category newsroom.Category) []Match {
	var matches []Match
	for _, doc := range docs {
		if category != "" && doc.Category != category {
			continue
		}
		content := strings.ToLower(doc.Content)
		if !containsAny(terms, content, strings.ToLower(doc.Filename), strings.ToLower(doc.Source)) {
			continue
		}
		matches = append(matches, Match{Document: doc, Score: score(terms, content)})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return b.Score - a.Score
	})

	limit := e.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	radius := e.ContextRadius
	if radius <= 0 {
		radius = DefaultContextRadius
	}
	for i := range matches {
		matches[i].Context = Context(matches[i].Document.Content, terms, radius)
	}
	return matches
}

// containsAny reports whether any non-empty term is a substring of any of
// the fields.
func containsAny(terms []string, fields ...string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		for _, f := range fields {
			if strings.Contains(f, term) {
				return true
			}
		}
	}
	return false
}

func score(terms []string, lowerContent string) int {
	var total int
	for _, term := range terms {
		if term == "" {
			continue
		}
		total += strings.Count(lowerContent, term)
	}
	return total
}

// Context returns the text within radius characters of the first
// occurrence of the first term found in content, case-insensitively.
// Offsets are counted in runes so the window is always a substring of
// content. Returns "" if no term occurs.
func Context(content string, terms []string, radius int) string {
	lower := strings.ToLower(content)
	for _, term := range terms {
		if term == "" {
			continue
		}
		i := strings.Index(lower, term)
		if i < 0 {
			continue
		}
		// Lowercasing maps rune to rune, so rune offsets agree between
		// content and lower even when byte offsets do not.
		pos := utf8.RuneCountInString(lower[:i])
		runes := []rune(content)
		start := max(0, pos-radius)
		end := min(len(runes), pos+radius)
		return strings.TrimSpace(string(runes[start:end]))
	}
	return ""
}
