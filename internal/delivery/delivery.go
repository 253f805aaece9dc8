// Package delivery defines the contract every transport (HTTP, worker, ...) fulfils.
package delivery

import "context"

// Delivery is a servable transport managed by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
