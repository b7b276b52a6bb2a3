// Package gemini summarizes corpus documents with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newsroom"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// MaxInputChars caps how much document text is sent per request.
const MaxInputChars = 4000

const (
	temperature     = 0.7
	maxOutputTokens = 250
)

// Ensure Summarizer implements newsroom.Summarizer at compile time.
var _ newsroom.Summarizer = (*Summarizer)(nil)

// Summarizer implements newsroom.Summarizer using Google Gemini.
type Summarizer struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithRequestsPerMinute caps Gemini requests to the API quota.
// A non-positive value leaves requests unlimited.
func WithRequestsPerMinute(n int) Option {
	return func(s *Summarizer) {
		s.limiter = NewLimiter(n)
	}
}

// NewLimiter returns a limiter allowing n requests per minute with a burst
// of n, or nil for a non-positive n.
func NewLimiter(n int) *rate.Limiter {
	if n <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string, opts ...Option) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	s := &Summarizer{client: client, model: model}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize summarizes text, or answers query from it when query is set.
func (s *Summarizer) Summarize(ctx context.Context, text string, query string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newsroom.Errorf(newsroom.EINVALID, "text required")
	}
	if s.client == nil {
		return "", newsroom.Errorf(newsroom.EINTERNAL, "gemini client not configured")
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(text, query)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", newsroom.Errorf(newsroom.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxOutputTokens,
	}
}

// BuildPrompt builds the request prompt from the first MaxInputChars
// characters of text.
func BuildPrompt(text, query string) string {
	text = truncate(text, MaxInputChars)
	if query != "" {
		return fmt.Sprintf("Based on this city council document, answer the query: %q\n\nDocument content: %s", query, text)
	}
	return "Summarize this city council document in 2-3 sentences, focusing on key decisions and actions:\n\n" + text
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
