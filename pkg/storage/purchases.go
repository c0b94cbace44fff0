package storage

import (
	"context"
	"time"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
)

// PurchaseStore defines the interface for managing coin purchases.
type PurchaseStore interface {
	// CreatePurchase records a new pending purchase. A purchase with the same
	// payment reference must not already exist.
	CreatePurchase(ctx context.Context, purchase *models.Purchase) (*models.Purchase, error)

	// GetPurchase retrieves a purchase by its payment reference.
	GetPurchase(ctx context.Context, paymentReference string) (*models.Purchase, error)

	// ClaimPurchase atomically transitions a purchase from pending to
	// completed and returns the claimed record. Returns
	// ErrPurchaseAlreadyProcessed if it was completed earlier,
	// ErrPurchaseNotFound if no record exists for the reference, and
	// ErrPurchaseNotClaimable if it is cancelled or failed.
	ClaimPurchase(ctx context.Context, paymentReference string) (*models.Purchase, error)

	// MarkPurchaseFailed transitions a pending purchase to cancelled or failed.
	MarkPurchaseFailed(ctx context.Context, paymentReference string, status models.PurchaseStatus) error

	// ListStuckPurchases retrieves purchases that have been pending for longer
	// than maxAge. Cleanup of abandoned checkouts is operator-driven.
	ListStuckPurchases(ctx context.Context, maxAge time.Duration) ([]models.Purchase, error)

	// ListCompletedPurchases retrieves all completed purchases.
	ListCompletedPurchases(ctx context.Context) ([]models.Purchase, error)
}
