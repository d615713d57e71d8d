// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Implementations block
// in Serve until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
