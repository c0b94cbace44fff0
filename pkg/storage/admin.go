package storage

import (
	"context"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
)

// AdminStore defines privileged balance operations used for support and
// compliance. They still append audit transaction records; admin mutations
// are not allowed to bypass the ledger.
type AdminStore interface {
	// ConvertPurchasedToFree moves the account's entire purchased balance to
	// the free bucket. The total balance is unchanged. Irreversible.
	ConvertPurchasedToFree(ctx context.Context, userID string) (*models.BalanceUpdate, error)

	// EraseAllCoins zeroes every balance field on every account and returns
	// the number of accounts that held a non-zero balance. Irreversible.
	EraseAllCoins(ctx context.Context) (int, error)

	// SetEarnedCoins corrects an account's earned-coin counter, crediting the
	// shortfall to the free bucket. Used by the reconciliation sweep.
	SetEarnedCoins(ctx context.Context, userID string, earned int64) (*models.BalanceUpdate, error)
}
