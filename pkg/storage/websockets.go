package storage

import "context"

// ConnectionManager defines the interface for tracking websocket connections.
type ConnectionManager interface {
	// AddConnection saves a new websocket connection ID.
	AddConnection(ctx context.Context, connectionID string) error

	// RemoveConnection deletes a websocket connection ID.
	RemoveConnection(ctx context.Context, connectionID string) error

	// GetAllConnections retrieves all active websocket connection IDs.
	GetAllConnections(ctx context.Context) ([]string, error)
}
