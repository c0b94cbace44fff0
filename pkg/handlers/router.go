package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/accounts"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/admin"
	ledgerhandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/ledger"
	purchaseshandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/purchases"
	wshandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/websockets"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/middleware"
)

// Handlers bundles the per-resource handlers mounted on the router.
type Handlers struct {
	Accounts   *accounts.AccountsHandler
	Ledger     *ledgerhandler.LedgerHandler
	Purchases  *purchaseshandler.PurchasesHandler
	Admin      *admin.AdminHandler
	WebSockets *wshandler.Handler
}

// NewRouter mounts all handlers on a chi router with structured request logging.
func NewRouter(logger *slog.Logger, h Handlers) chi.Router {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.RequestLogger(logger))

	router.Route("/accounts", func(r chi.Router) {
		r.Post("/", h.Accounts.CreateAccount)
		r.Get("/", h.Accounts.ListAccounts)
		r.Get("/{userId}", withUserId(h.Accounts.GetAccountByUserId))
		r.Delete("/{userId}", withUserId(h.Accounts.DeleteAccount))
		r.Post("/{userId}/credit", withUserId(h.Ledger.Credit))
		r.Post("/{userId}/debit", withUserId(h.Ledger.Debit))
		r.Get("/{userId}/transactions", withUserId(h.Ledger.ListTransactionsByUserId))
	})

	router.Get("/ledger", h.Ledger.ListRecentTransactions)

	router.Route("/purchases", func(r chi.Router) {
		r.Post("/", h.Purchases.CreatePurchase)
		r.Post("/confirm", h.Purchases.ConfirmPurchase)
		r.Get("/stuck", h.Purchases.ListStuckPurchases)
		r.Get("/{paymentReference}", withParam("paymentReference", h.Purchases.GetPurchase))
	})

	router.Route("/admin", func(r chi.Router) {
		r.Post("/accounts/{userId}/coins", withUserId(h.Admin.AddCoins))
		r.Post("/accounts/{userId}/convert", withUserId(h.Admin.ConvertPurchasedToFree))
		r.Post("/erase", h.Admin.EraseAllCoins)
		r.Post("/reconcile", h.Admin.Reconcile)
		r.Post("/purchases/{paymentReference}/capture", withParam("paymentReference", h.Admin.CapturePurchase))
	})

	if h.WebSockets != nil {
		router.Handle("/ws", h.WebSockets)
	}

	return router
}

func withUserId(fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return withParam("userId", fn)
}

func withParam(name string, fn func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, chi.URLParam(r, name))
	}
}
