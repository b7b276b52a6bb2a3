package newsroom

import "context"

// SummaryFallback is shown in place of a summary when the summarization
// service fails.
const SummaryFallback = "AI processing unavailable - check your API key"

// Summarizer produces a short natural-language summary of a document.
type Summarizer interface {
	// Summarize summarizes text. When query is non-empty the summary
	// answers the query from the text instead.
	Summarize(ctx context.Context, text string, query string) (string, error)
}
