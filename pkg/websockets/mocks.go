package websockets

import "context"

// NoOpPublisher is a publisher that drops every message. The lambdas use it
// since they have no connected clients to broadcast to.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}
