package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/newsroom"
)

var _ newsroom.Pacer = (*Pacer)(nil)

// Pacer holds the crawler idle for a fixed delay. The crawler waits on it
// after each fetch completes, so the pause does not shrink when a fetch is
// slow.
type Pacer struct {
	delay time.Duration
}

// NewPacer creates a Pacer that idles for delay on every Wait.
// A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Wait blocks for the pacing delay.
// Returns the context error if ctx is done before the delay elapses.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
