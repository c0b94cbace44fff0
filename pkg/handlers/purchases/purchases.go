package purchases

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/mapping"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/pricing"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/purchases"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/queue"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// Checkouts abandoned by users stay pending forever; anything older than
// this is surfaced to operators as stuck.
const defaultStuckThreshold = 24 * time.Hour

// PurchasesHandler holds the dependencies for purchase-related handlers.
type PurchasesHandler struct {
	Service *purchases.Service
	Store   storage.PurchaseStore
	Queue   queue.ConfirmationQueue
}

// NewPurchasesHandler creates a new PurchasesHandler.
func NewPurchasesHandler(service *purchases.Service, store storage.PurchaseStore, q queue.ConfirmationQueue) *PurchasesHandler {
	return &PurchasesHandler{Service: service, Store: store, Queue: q}
}

// CreatePurchase handles the logic for initiating a coin purchase.
func (h *PurchasesHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var newPurchase api.NewPurchase
	if err := json.NewDecoder(r.Body).Decode(&newPurchase); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&newPurchase); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	var usdCents int64
	if newPurchase.USD != "" {
		parsed, err := pricing.ParseUSD(newPurchase.USD)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
			return
		}
		usdCents = parsed
	}

	created, err := h.Service.Initiate(r.Context(), newPurchase.UserId, newPurchase.PaymentReference, newPurchase.PackageId, newPurchase.CoinAmount, usdCents)
	if err != nil {
		if errors.Is(err, storage.ErrPurchaseExists) {
			http.Error(w, "Purchase with this payment reference already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create purchase: %v", err), http.StatusBadRequest)
		}
		return
	}

	apiPurchase := mapping.ToApiPurchase(created)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiPurchase); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetPurchase handles the logic for retrieving a purchase by its payment reference.
func (h *PurchasesHandler) GetPurchase(w http.ResponseWriter, r *http.Request, paymentReference string) {
	purchase, err := h.Store.GetPurchase(r.Context(), paymentReference)
	if err != nil {
		if errors.Is(err, storage.ErrPurchaseNotFound) {
			http.Error(w, fmt.Sprintf("Purchase not found: %v", err), http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve purchase: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiPurchase := mapping.ToApiPurchase(purchase)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiPurchase); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ConfirmPurchase receives the payment provider's confirmation callback and
// enqueues it for asynchronous crediting. The provider gets an immediate 202;
// the purchase lambda performs the credit.
func (h *PurchasesHandler) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	var conf api.PaymentConfirmation
	if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := api.Validate(&conf); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Queue.EnqueueConfirmation(r.Context(), &conf); err != nil {
		http.Error(w, fmt.Sprintf("Failed to enqueue confirmation: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// ListStuckPurchases handles the logic for retrieving purchases that have
// been pending for longer than the stuck threshold.
func (h *PurchasesHandler) ListStuckPurchases(w http.ResponseWriter, r *http.Request) {
	maxAge := defaultStuckThreshold
	if raw := r.URL.Query().Get("max_age"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, fmt.Sprintf("Invalid max_age: %q", raw), http.StatusBadRequest)
			return
		}
		maxAge = parsed
	}

	stuck, err := h.Service.ListStuck(r.Context(), maxAge)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve stuck purchases: %v", err), http.StatusInternalServerError)
		return
	}

	apiPurchases := make([]*api.Purchase, len(stuck))
	for i, purchase := range stuck {
		apiPurchases[i] = mapping.ToApiPurchase(&purchase)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiPurchases); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
