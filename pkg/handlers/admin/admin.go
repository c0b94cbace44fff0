package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/ledger"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/mapping"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/purchases"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/reconcile"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// ErasePhrase is the literal confirmation phrase required to zero all
// balances. The UI asks the operator to type it twice.
const ErasePhrase = "ERASE ALL COINS"

// AdminHandler holds the dependencies for privileged handlers.
type AdminHandler struct {
	Ledger    *ledger.Service
	Purchases *purchases.Service
	Sweeper   *reconcile.Sweeper
	Store     storage.AdminStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledgerSvc *ledger.Service, purchasesSvc *purchases.Service, sweeper *reconcile.Sweeper, store storage.AdminStore) *AdminHandler {
	return &AdminHandler{Ledger: ledgerSvc, Purchases: purchasesSvc, Sweeper: sweeper, Store: store}
}

// AddCoins handles the logic for granting coins to one account. The grant
// goes through the regular credit path so it appears on the audit trail.
func (h *AdminHandler) AddCoins(w http.ResponseWriter, r *http.Request, userId string) {
	var req api.AddCoinsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	bucket := models.FreeCoins
	if req.CoinType == "paid" {
		bucket = models.PurchasedCoins
	}

	update, err := h.Ledger.Credit(r.Context(), userId, req.Amount, models.LedgerOptions{
		Bucket: bucket,
		Reason: "admin_grant",
		Source: "admin",
	})
	if err != nil {
		switch {
		case ledger.IsValidationError(err):
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, fmt.Sprintf("Account not found: %v", err), http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to add coins: %v", err), http.StatusInternalServerError)
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

// ConvertPurchasedToFree handles the logic for moving an account's purchased
// coins into its free balance. Irreversible.
func (h *AdminHandler) ConvertPurchasedToFree(w http.ResponseWriter, r *http.Request, userId string) {
	update, err := h.Store.ConvertPurchasedToFree(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAccountNotFound):
			http.Error(w, fmt.Sprintf("Account not found: %v", err), http.StatusNotFound)
		case errors.Is(err, storage.ErrVersionConflict):
			http.Error(w, "Account was modified concurrently, retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to convert coins: %v", err), http.StatusInternalServerError)
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

// EraseAllCoins handles the logic for zeroing every account's balances.
// The request must carry the exact confirmation phrase.
func (h *AdminHandler) EraseAllCoins(w http.ResponseWriter, r *http.Request) {
	var req api.EraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.Confirm != ErasePhrase {
		http.Error(w, fmt.Sprintf("Confirmation phrase mismatch: expected %q", ErasePhrase), http.StatusBadRequest)
		return
	}

	erased, err := h.Store.EraseAllCoins(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to erase coins: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(api.EraseResult{AccountsErased: erased}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Reconcile handles the logic for running a reconciliation sweep.
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.Sweeper.Sweep(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Reconciliation failed: %v", err), http.StatusInternalServerError)
		return
	}

	result := mapping.ToApiReconcileResult(report)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CapturePurchase handles the logic for manually confirming a stuck purchase.
// Unlike the webhook path this credits synchronously.
func (h *AdminHandler) CapturePurchase(w http.ResponseWriter, r *http.Request, paymentReference string) {
	result, err := h.Purchases.Confirm(r.Context(), purchases.Confirmation{PaymentReference: paymentReference})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrPurchaseNotFound):
			http.Error(w, fmt.Sprintf("Purchase not found: %v", err), http.StatusNotFound)
		case errors.Is(err, storage.ErrPurchaseNotClaimable):
			http.Error(w, fmt.Sprintf("Purchase not claimable: %v", err), http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to capture purchase: %v", err), http.StatusInternalServerError)
		}
		return
	}

	resp := api.ConfirmationResult{
		Success:          true,
		CoinAmount:       result.CoinAmount,
		AlreadyProcessed: result.AlreadyProcessed,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
