package storage

import (
	"context"
)

// GiftReader defines read access to the gift records owned by the streaming
// backend. Reconciliation uses them as a source of truth for earned coins.
type GiftReader interface {
	// SumGiftsByRecipient aggregates gift coin amounts per recipient user ID.
	// The second return value is the total number of gift records scanned.
	SumGiftsByRecipient(ctx context.Context) (map[string]int64, int, error)
}
