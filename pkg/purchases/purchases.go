// Package purchases translates external payment confirmations into ledger
// credits, exactly once per payment reference.
package purchases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/pricing"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// ReasonPurchase tags ledger credits that originate from a coin purchase.
const ReasonPurchase = "purchase"

// Confirmation is a payment provider's notice that a checkout completed.
type Confirmation struct {
	PaymentReference string
	UserId           string
	CoinAmount       int64
	USDCents         int64
}

// Result reports the outcome of processing one confirmation.
type Result struct {
	CoinAmount       int64
	AlreadyProcessed bool
}

// Service manages the purchase lifecycle.
type Service struct {
	Purchases storage.PurchaseStore
	Ledger    storage.LedgerWriter
}

// NewService creates a new purchases Service.
func NewService(purchases storage.PurchaseStore, ledger storage.LedgerWriter) *Service {
	return &Service{Purchases: purchases, Ledger: ledger}
}

// Initiate records a pending purchase at checkout start. Either a known
// package ID or an explicit coin amount with USD cents must be supplied.
func (s *Service) Initiate(ctx context.Context, userID, paymentReference, packageID string, coinAmount, usdCents int64) (*models.Purchase, error) {
	if packageID != "" {
		pkg, ok := pricing.FindPackage(packageID)
		if !ok {
			return nil, fmt.Errorf("unknown coin package %q", packageID)
		}
		coinAmount = pkg.Coins
		usdCents = pkg.USDCents
	}
	if coinAmount <= 0 {
		return nil, fmt.Errorf("coin amount must be positive, got %d", coinAmount)
	}

	purchase := &models.Purchase{
		PaymentReference: paymentReference,
		UserId:           userID,
		CoinAmount:       coinAmount,
		USDCents:         usdCents,
	}
	return s.Purchases.CreatePurchase(ctx, purchase)
}

// Confirm credits a completed payment to the buyer's purchased balance.
// The claim on the purchase record is atomic, so a duplicate confirmation,
// concurrent or not, credits at most once: the loser sees AlreadyProcessed.
//
// If the claim succeeds but the credit fails, the purchase is left completed
// without a matching ledger record; the reconciliation sweep detects and
// repairs exactly that state.
func (s *Service) Confirm(ctx context.Context, conf Confirmation) (*Result, error) {
	if conf.PaymentReference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}

	purchase, err := s.Purchases.ClaimPurchase(ctx, conf.PaymentReference)
	if err != nil {
		if errors.Is(err, storage.ErrPurchaseAlreadyProcessed) {
			slog.Info("duplicate payment confirmation ignored", "paymentReference", conf.PaymentReference)
			return &Result{AlreadyProcessed: true}, nil
		}
		return nil, err
	}

	coins := purchase.CoinAmount
	if coins <= 0 {
		coins = conf.CoinAmount
	}

	_, err = s.Ledger.Credit(ctx, purchase.UserId, coins, models.LedgerOptions{
		Bucket:    models.PurchasedCoins,
		Reason:    ReasonPurchase,
		Source:    "payment_provider",
		Reference: purchase.PaymentReference,
	})
	if err != nil {
		return nil, fmt.Errorf("purchase %s claimed but credit failed: %w", purchase.PaymentReference, err)
	}

	return &Result{CoinAmount: coins}, nil
}

// ListStuck returns purchases pending for longer than maxAge.
func (s *Service) ListStuck(ctx context.Context, maxAge time.Duration) ([]models.Purchase, error) {
	return s.Purchases.ListStuckPurchases(ctx, maxAge)
}
