package websockets

import "context"

// Publisher defines an interface for broadcasting a message to all connected clients.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}

// ConnectionManager defines an interface for adding and removing connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}
