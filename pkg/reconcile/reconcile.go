// Package reconcile recomputes account balances from source-of-truth records
// (gifts received, purchases completed) and corrects drift. The sweep is an
// operator-triggered repair tool: it tolerates per-record failures and
// reports them instead of aborting.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/purchases"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// Store defines the storage operations the sweep needs.
type Store interface {
	storage.AccountStore
	storage.GiftReader
	storage.PurchaseStore
	storage.LedgerStore
	storage.AdminStore
}

// Sweeper runs reconciliation sweeps.
type Sweeper struct {
	Store Store
}

// NewSweeper creates a new Sweeper.
func NewSweeper(store Store) *Sweeper {
	return &Sweeper{Store: store}
}

// Sweep corrects every account whose earned-coin counter trails the gift
// records, then credits any completed purchase missing from the audit trail.
// Running it twice in a row produces zero additional changes.
func (s *Sweeper) Sweep(ctx context.Context) (*models.ReconcileReport, error) {
	report := &models.ReconcileReport{Errors: []string{}}
	updatedUsers := make(map[string]bool)

	giftTotals, giftCount, err := s.Store.SumGiftsByRecipient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate gift records: %w", err)
	}
	report.GiftsProcessed = giftCount

	accounts, err := s.Store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	for _, account := range accounts {
		expected := giftTotals[account.UserId]
		if expected <= account.EarnedCoins {
			continue
		}
		delta := expected - account.EarnedCoins
		if _, err := s.Store.SetEarnedCoins(ctx, account.UserId, expected); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("earned coins for user %s: %v", account.UserId, err))
			continue
		}
		slog.Info("corrected earned coins", "userId", account.UserId, "delta", delta)
		report.CoinsAdded += delta
		updatedUsers[account.UserId] = true
	}

	completed, err := s.Store.ListCompletedPurchases(ctx)
	if err != nil {
		// Gift corrections already applied; report what we have.
		report.Errors = append(report.Errors, fmt.Sprintf("list completed purchases: %v", err))
		report.UsersUpdated = len(updatedUsers)
		return report, nil
	}

	for _, purchase := range completed {
		report.PurchasesVerified++

		credited, err := s.purchaseCredited(ctx, &purchase)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("verify purchase %s: %v", purchase.PaymentReference, err))
			continue
		}
		if credited {
			continue
		}

		_, err = s.Store.Credit(ctx, purchase.UserId, purchase.CoinAmount, models.LedgerOptions{
			Bucket:    models.PurchasedCoins,
			Reason:    purchases.ReasonPurchase,
			Source:    "reconcile",
			Reference: purchase.PaymentReference,
		})
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("credit purchase %s: %v", purchase.PaymentReference, err))
			continue
		}
		slog.Info("credited unreflected purchase", "paymentReference", purchase.PaymentReference, "coins", purchase.CoinAmount)
		report.CoinsAdded += purchase.CoinAmount
		updatedUsers[purchase.UserId] = true
	}

	report.UsersUpdated = len(updatedUsers)
	return report, nil
}

// purchaseCredited reports whether the audit trail already contains a credit
// for the purchase's payment reference.
func (s *Sweeper) purchaseCredited(ctx context.Context, purchase *models.Purchase) (bool, error) {
	txs, err := s.Store.ListTransactionsByReference(ctx, purchase.PaymentReference)
	if err != nil {
		return false, err
	}
	for _, tx := range txs {
		if tx.Direction == models.CREDIT && tx.UserId == purchase.UserId {
			return true, nil
		}
	}
	return false, nil
}
