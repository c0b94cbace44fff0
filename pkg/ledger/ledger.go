// Package ledger wraps the storage layer's balance mutations with the input
// validation the API contract promises: invalid requests are rejected before
// any remote call is made.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// ErrMissingUser is returned when a ledger operation names no user.
var ErrMissingUser = errors.New("user id is required")

// ErrNonPositiveAmount is returned when a ledger operation's amount is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be a positive number")

// Operation is the shared signature of Credit and Debit.
type Operation func(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error)

// Service performs validated credit and debit operations.
type Service struct {
	Store storage.LedgerStore
}

// NewService creates a new ledger Service.
func NewService(store storage.LedgerStore) *Service {
	return &Service{Store: store}
}

func validateOperation(userID string, amount int64) error {
	if userID == "" {
		return ErrMissingUser
	}
	if amount <= 0 {
		return fmt.Errorf("got %d: %w", amount, ErrNonPositiveAmount)
	}
	return nil
}

// Credit adds amount to the user's balance. The bucket defaults to free
// coins when opts does not name one.
func (s *Service) Credit(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error) {
	if err := validateOperation(userID, amount); err != nil {
		return nil, err
	}
	if opts.Bucket == "" {
		opts.Bucket = models.FreeCoins
	}
	return s.Store.Credit(ctx, userID, amount, opts)
}

// Debit removes amount from the user's balance, purchased coins first.
func (s *Service) Debit(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error) {
	if err := validateOperation(userID, amount); err != nil {
		return nil, err
	}
	return s.Store.Debit(ctx, userID, amount, opts)
}

// IsValidationError reports whether err is an input validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingUser) || errors.Is(err, ErrNonPositiveAmount)
}
