package mock

import "github.com/fwojciec/newsroom"

var _ newsroom.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsroom.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string, pageURL string) (*newsroom.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string, pageURL string) (*newsroom.ExtractResult, error) {
	return e.ExtractFn(rawHTML, pageURL)
}
