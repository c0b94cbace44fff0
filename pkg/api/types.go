package api

import (
	"time"
)

// NewAccount is the request body for creating an account.
type NewAccount struct {
	UserId string `json:"user_id" validate:"required"`
	Handle string `json:"handle" validate:"required,min=3,max=32"`
}

// Account is the API representation of a coin account.
type Account struct {
	UserId         string    `json:"user_id"`
	Handle         string    `json:"handle"`
	TotalCoins     int64     `json:"total_coins"`
	FreeCoins      int64     `json:"free_coins"`
	PurchasedCoins int64     `json:"purchased_coins"`
	EarnedCoins    int64     `json:"earned_coins"`
	CreatedAt      time.Time `json:"created_at"`
}

// LedgerRequest is the request body for a credit or debit operation.
type LedgerRequest struct {
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Bucket    string `json:"bucket,omitempty" validate:"omitempty,oneof=free purchased"`
	Reason    string `json:"reason,omitempty"`
	Source    string `json:"source,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// Balance is the response body of a balance mutation.
type Balance struct {
	UserId         string `json:"user_id"`
	TotalCoins     int64  `json:"total_coins"`
	FreeCoins      int64  `json:"free_coins"`
	PurchasedCoins int64  `json:"purchased_coins"`
}

// Transaction is the API representation of an audit record.
type Transaction struct {
	Id              string    `json:"id"`
	UserId          string    `json:"user_id"`
	Amount          int64     `json:"amount"`
	Direction       string    `json:"direction"`
	Bucket          string    `json:"bucket"`
	FreeAmount      int64     `json:"free_amount"`
	PurchasedAmount int64     `json:"purchased_amount"`
	Reason          string    `json:"reason,omitempty"`
	Source          string    `json:"source,omitempty"`
	Reference       string    `json:"reference,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewPurchase is the request body for initiating a coin purchase.
type NewPurchase struct {
	UserId           string `json:"user_id" validate:"required"`
	PaymentReference string `json:"payment_reference" validate:"required"`
	PackageId        string `json:"package_id,omitempty"`
	CoinAmount       int64  `json:"coin_amount,omitempty" validate:"omitempty,gt=0"`
	USD              string `json:"usd,omitempty"`
}

// Purchase is the API representation of a purchase record.
type Purchase struct {
	PaymentReference string    `json:"payment_reference"`
	UserId           string    `json:"user_id"`
	CoinAmount       int64     `json:"coin_amount"`
	USD              string    `json:"usd"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PaymentConfirmation is the payload delivered by the payment provider's
// confirmation callback, directly or via the confirmation queue.
type PaymentConfirmation struct {
	PaymentReference string `json:"payment_reference" validate:"required"`
	UserId           string `json:"user_id" validate:"required"`
	CoinAmount       int64  `json:"coin_amount" validate:"required,gt=0"`
	USD              string `json:"usd,omitempty"`
}

// ConfirmationResult is the response body for a processed confirmation.
type ConfirmationResult struct {
	Success          bool  `json:"success"`
	CoinAmount       int64 `json:"coin_amount,omitempty"`
	AlreadyProcessed bool  `json:"already_processed,omitempty"`
}

// AddCoinsRequest is the admin request body for granting coins.
type AddCoinsRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	CoinType string `json:"coin_type" validate:"required,oneof=free paid"`
}

// EraseRequest is the admin request body for zeroing all balances.
// Confirm must carry the literal phrase "ERASE ALL COINS".
type EraseRequest struct {
	Confirm string `json:"confirm" validate:"required"`
}

// EraseResult reports how many accounts held coins before the erase.
type EraseResult struct {
	AccountsErased int `json:"accounts_erased"`
}

// ReconcileResult is the response body for a reconciliation sweep.
type ReconcileResult struct {
	Success bool             `json:"success"`
	Results ReconcileSummary `json:"results"`
}

// ReconcileSummary mirrors the sweep's report counters.
type ReconcileSummary struct {
	UsersUpdated      int      `json:"usersUpdated"`
	GiftsProcessed    int      `json:"giftsProcessed"`
	CoinsAdded        int64    `json:"coinsAdded"`
	PurchasesVerified int      `json:"purchasesVerified"`
	Errors            []string `json:"errors"`
}
