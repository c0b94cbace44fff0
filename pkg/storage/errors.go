package storage

import "errors"

// ErrInsufficientCoins is returned when an account's total balance is below the debit amount.
var ErrInsufficientCoins = errors.New("insufficient coins")

// ErrAccountNotFound is returned when no account exists for the given user ID.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account for a user that already has one.
var ErrAccountExists = errors.New("account already exists")

// ErrPurchaseNotFound is returned when no purchase record exists for a payment reference.
var ErrPurchaseNotFound = errors.New("purchase not found")

// ErrPurchaseExists is returned when a purchase with the same payment reference already exists.
var ErrPurchaseExists = errors.New("purchase already exists")

// ErrPurchaseAlreadyProcessed is returned when a payment reference has already been credited.
var ErrPurchaseAlreadyProcessed = errors.New("purchase already processed")

// ErrPurchaseNotClaimable is returned when a purchase is cancelled or failed and cannot be credited.
var ErrPurchaseNotClaimable = errors.New("purchase not in a claimable state")

// ErrVersionConflict is returned when an optimistic-lock condition fails due to a concurrent update.
var ErrVersionConflict = errors.New("account modified concurrently")
