package models

import (
	"time"
)

// TransactionDirection defines whether a ledger transaction adds or removes coins.
type TransactionDirection string

const (
	CREDIT TransactionDirection = "credit"
	DEBIT  TransactionDirection = "debit"
)

// CoinBucket identifies which balance bucket a ledger operation targets.
// Purchased coins are the only balance eligible for broadcaster cash-out.
type CoinBucket string

const (
	FreeCoins      CoinBucket = "free"
	PurchasedCoins CoinBucket = "purchased"
)

// PurchaseStatus defines the possible states of a coin purchase.
type PurchaseStatus string

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseCancelled PurchaseStatus = "cancelled"
	PurchaseFailed    PurchaseStatus = "failed"
)

// Account represents a user's coin balances.
// TotalCoins is always FreeCoins + PurchasedCoins. Version is an
// optimistic-lock counter bumped on every balance mutation.
type Account struct {
	UserId         string     `json:"user_id" dynamodbav:"user_id"`
	Handle         string     `json:"handle" dynamodbav:"handle"`
	TotalCoins     int64      `json:"total_coins" dynamodbav:"total_coins"`
	FreeCoins      int64      `json:"free_coins" dynamodbav:"free_coins"`
	PurchasedCoins int64      `json:"purchased_coins" dynamodbav:"purchased_coins"`
	EarnedCoins    int64      `json:"earned_coins" dynamodbav:"earned_coins"`
	Version        int64      `json:"version" dynamodbav:"version"`
	CreatedAt      time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" dynamodbav:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at,omitempty"`
}

// Transaction is one append-only audit record for a balance mutation.
// Every balance change, admin-initiated ones included, goes through here.
type Transaction struct {
	Id        string               `dynamodbav:"id"`
	UserId    string               `dynamodbav:"user_id"`
	Amount    int64                `dynamodbav:"amount"`
	Direction TransactionDirection `dynamodbav:"direction"`
	// Bucket names the bucket the mutation primarily hit. A debit can span
	// both buckets; FreeAmount and PurchasedAmount carry the exact split and
	// always sum to Amount.
	Bucket          CoinBucket `dynamodbav:"bucket"`
	FreeAmount      int64      `dynamodbav:"free_amount"`
	PurchasedAmount int64      `dynamodbav:"purchased_amount"`
	Reason          string     `dynamodbav:"reason"`
	Source          string     `dynamodbav:"source,omitempty"`
	Reference       string     `dynamodbav:"reference,omitempty"`
	CreatedAt       time.Time  `dynamodbav:"created_at"`
	GSI1PK          string     `dynamodbav:"gsi1pk"`
}

// Purchase tracks the lifecycle of one external payment, keyed by the
// payment processor's reference. A reference credits the ledger at most once.
type Purchase struct {
	PaymentReference string         `dynamodbav:"payment_reference"`
	UserId           string         `dynamodbav:"user_id"`
	CoinAmount       int64          `dynamodbav:"coin_amount"`
	USDCents         int64          `dynamodbav:"usd_cents"`
	Status           PurchaseStatus `dynamodbav:"status"`
	CreatedAt        time.Time      `dynamodbav:"created_at"`
	UpdatedAt        time.Time      `dynamodbav:"updated_at"`
}

// Gift represents coins earned by a broadcaster from a viewer action.
// Gift records are written by the streaming backend; this service only
// reads them as a source-of-truth input during reconciliation.
type Gift struct {
	GiftId     string    `dynamodbav:"gift_id"`
	FromUserId string    `dynamodbav:"from_user_id"`
	ToUserId   string    `dynamodbav:"to_user_id"`
	CoinAmount int64     `dynamodbav:"coin_amount"`
	CreatedAt  time.Time `dynamodbav:"created_at"`
}

// BalanceUpdate is the balance state of an account after a ledger operation.
type BalanceUpdate struct {
	UserId         string `json:"user_id"`
	TotalCoins     int64  `json:"total_coins"`
	FreeCoins      int64  `json:"free_coins"`
	PurchasedCoins int64  `json:"purchased_coins"`
}

// ReconcileReport summarizes one reconciliation sweep. Per-record failures
// are collected in Errors; the sweep does not abort on them.
type ReconcileReport struct {
	UsersUpdated      int      `json:"users_updated"`
	GiftsProcessed    int      `json:"gifts_processed"`
	PurchasesVerified int      `json:"purchases_verified"`
	CoinsAdded        int64    `json:"coins_added"`
	Errors            []string `json:"errors"`
}

// LedgerOptions carries audit metadata for a credit or debit.
type LedgerOptions struct {
	Bucket    CoinBucket
	Reason    string
	Source    string
	Reference string
}
