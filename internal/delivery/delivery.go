// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application (HTTP, worker, ...).
// Implementations block in Serve until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
