// Package delivery defines the contract every transport front-end implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker, ...) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}
