package storage

import (
	"context"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
)

// AccountStore defines the interface for managing coin accounts.
type AccountStore interface {
	// GetAccount retrieves a user's account by their user ID.
	GetAccount(ctx context.Context, userID string) (*models.Account, error)

	// CreateAccount creates a new account with zero balances.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// SoftDeleteAccount anonymizes the account's handle and marks it deleted.
	// Balances are preserved; the record is never hard-deleted.
	SoftDeleteAccount(ctx context.Context, userID string) error

	// ListAccounts retrieves all accounts from the storage.
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
