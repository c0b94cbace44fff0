package storage

import (
	"context"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
)

// LedgerWriter defines the interface for balance mutations. Every mutation
// appends an audit transaction record and updates the account atomically.
type LedgerWriter interface {
	// Credit adds amount to the account's total and to the bucket named in
	// opts, appending a credit transaction record in the same write.
	Credit(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error)

	// Debit removes amount from the account, draining purchased coins first
	// and the remainder from free coins. Fails with ErrInsufficientCoins when
	// the total balance is below amount.
	Debit(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error)
}

// LedgerReader defines the interface for reading the audit trail.
type LedgerReader interface {
	// ListTransactionsByUserID retrieves all transactions for a specific user.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)

	// ListTransactionsByReference retrieves transactions carrying the given
	// external reference (e.g. a payment reference).
	ListTransactionsByReference(ctx context.Context, reference string) ([]models.Transaction, error)

	// ListRecentTransactions retrieves the most recent transactions.
	ListRecentTransactions(ctx context.Context, limit int32) ([]models.Transaction, error)
}

// LedgerStore combines the writer and reader interfaces.
type LedgerStore interface {
	LedgerWriter
	LedgerReader
}
