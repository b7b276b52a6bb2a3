package newsroom

import "context"

// Pacer spaces out requests to the origin server.
type Pacer interface {
	// Wait blocks for the pause between two requests. It is called after
	// the previous request has completed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
