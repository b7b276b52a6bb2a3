package mock

import (
	"context"

	"github.com/fwojciec/newsroom"
)

var _ newsroom.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of newsroom.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}
