package newsroom

import "context"

// NoResultsMessage is returned in place of results when no document matches.
const NoResultsMessage = "No documents found matching your query."

// SearchResult is one ranked match with its summary and context snippet.
type SearchResult struct {
	Identity  string       `json:"identity"`
	Source    string       `json:"source,omitempty"`
	Category  Category     `json:"category,omitempty"`
	Date      DocumentDate `json:"date"`
	Pages     int          `json:"pages"`
	WordCount int          `json:"wordCount"`
	Score     int          `json:"score"`
	Summary   string       `json:"summary"`
	Context   string       `json:"context"`

	// ContactInfo is set only for web pages with contact details.
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}

// QueryResult is the answer to a free-text query: either ranked results
// or the NoResultsMessage sentinel.
type QueryResult struct {
	Query   string         `json:"query"`
	Terms   []string       `json:"terms"`
	Results []SearchResult `json:"results"`
	Message string         `json:"message,omitempty"`
}

// NoResults reports whether the query matched nothing.
func (r *QueryResult) NoResults() bool {
	return len(r.Results) == 0
}

// QueryService answers free-text queries over the corpus.
type QueryService interface {
	// Query searches the corpus. An empty category matches every document.
	Query(ctx context.Context, query string, category Category) (*QueryResult, error)
}
