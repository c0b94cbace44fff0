package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/ledger"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/mapping"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// LedgerHandler holds the dependencies for ledger-related handlers.
type LedgerHandler struct {
	Service *ledger.Service
	Store   storage.LedgerReader
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(service *ledger.Service, store storage.LedgerReader) *LedgerHandler {
	return &LedgerHandler{Service: service, Store: store}
}

// Credit handles the logic for crediting a user's balance.
func (h *LedgerHandler) Credit(w http.ResponseWriter, r *http.Request, userId string) {
	h.applyOperation(w, r, userId, h.Service.Credit)
}

// Debit handles the logic for debiting a user's balance.
func (h *LedgerHandler) Debit(w http.ResponseWriter, r *http.Request, userId string) {
	h.applyOperation(w, r, userId, h.Service.Debit)
}

func (h *LedgerHandler) applyOperation(w http.ResponseWriter, r *http.Request, userId string, op ledger.Operation) {
	var req api.LedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	update, err := op(r.Context(), userId, req.Amount, mapping.ToLedgerOptions(&req))
	if err != nil {
		switch {
		case ledger.IsValidationError(err):
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		case errors.Is(err, storage.ErrInsufficientCoins):
			http.Error(w, "Insufficient coins", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, fmt.Sprintf("Account not found: %v", err), http.StatusNotFound)
		case errors.Is(err, storage.ErrVersionConflict):
			http.Error(w, "Account was modified concurrently, retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to apply ledger operation: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiBalance := mapping.ToApiBalance(update)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiBalance); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListTransactionsByUserId handles the logic for retrieving a user's transactions.
func (h *LedgerHandler) ListTransactionsByUserId(w http.ResponseWriter, r *http.Request, userId string) {
	domainTxs, err := h.Store.ListTransactionsByUserID(r.Context(), userId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTxs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListRecentTransactions handles the logic for retrieving the most recent
// ledger entries across all users.
func (h *LedgerHandler) ListRecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit := int32(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			http.Error(w, fmt.Sprintf("Invalid limit: %q", raw), http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	domainTxs, err := h.Store.ListRecentTransactions(r.Context(), limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve ledger entries: %v", err), http.StatusInternalServerError)
		return
	}

	apiTxs := make([]*api.Transaction, len(domainTxs))
	for i, tx := range domainTxs {
		apiTxs[i] = mapping.ToApiTransaction(&tx)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTxs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
