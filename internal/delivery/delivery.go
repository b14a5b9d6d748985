// Package delivery defines the contract between the entrypoint and the
// transport implementations.
package delivery

import "context"

// Delivery is a transport that serves the application until the context
// is canceled or the listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
