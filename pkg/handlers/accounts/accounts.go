package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/mapping"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	domainAccount := mapping.ToDomainNewAccount(&newAccount)

	createdAccount, err := h.Store.CreateAccount(r.Context(), domainAccount)
	if err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			http.Error(w, "Account for this user already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAccount := mapping.ToApiAccount(createdAccount)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetAccountByUserId handles the logic for retrieving a user's account.
func (h *AccountsHandler) GetAccountByUserId(w http.ResponseWriter, r *http.Request, userId string) {
	domainAccount, err := h.Store.GetAccount(r.Context(), userId)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			http.Error(w, fmt.Sprintf("Account not found: %v", err), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAccount := mapping.ToApiAccount(domainAccount)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteAccount handles the logic for soft-deleting a user's account.
func (h *AccountsHandler) DeleteAccount(w http.ResponseWriter, r *http.Request, userId string) {
	if err := h.Store.SoftDeleteAccount(r.Context(), userId); err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			http.Error(w, fmt.Sprintf("Account not found: %v", err), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAccounts handles the logic for retrieving all accounts.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	domainAccounts, err := h.Store.ListAccounts(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve accounts: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort accounts by CreatedAt in descending order.
	sort.Slice(domainAccounts, func(i, j int) bool {
		return domainAccounts[i].CreatedAt.After(domainAccounts[j].CreatedAt)
	})

	apiAccounts := make([]*api.Account, len(domainAccounts))
	for i, account := range domainAccounts {
		apiAccounts[i] = mapping.ToApiAccount(&account)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccounts); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
