package mapping

import (
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/pricing"
)

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		UserId:         account.UserId,
		Handle:         account.Handle,
		TotalCoins:     account.TotalCoins,
		FreeCoins:      account.FreeCoins,
		PurchasedCoins: account.PurchasedCoins,
		EarnedCoins:    account.EarnedCoins,
		CreatedAt:      account.CreatedAt,
	}
}

// ToDomainNewAccount converts an API NewAccount model to a domain Account model.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		UserId: newAccount.UserId,
		Handle: newAccount.Handle,
	}
}

// ToApiBalance converts a domain BalanceUpdate to an API Balance model.
func ToApiBalance(update *models.BalanceUpdate) *api.Balance {
	return &api.Balance{
		UserId:         update.UserId,
		TotalCoins:     update.TotalCoins,
		FreeCoins:      update.FreeCoins,
		PurchasedCoins: update.PurchasedCoins,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:              tx.Id,
		UserId:          tx.UserId,
		Amount:          tx.Amount,
		Direction:       string(tx.Direction),
		Bucket:          string(tx.Bucket),
		FreeAmount:      tx.FreeAmount,
		PurchasedAmount: tx.PurchasedAmount,
		Reason:          tx.Reason,
		Source:          tx.Source,
		Reference:       tx.Reference,
		CreatedAt:       tx.CreatedAt,
	}
}

// ToApiPurchase converts a domain Purchase model to an API Purchase model.
func ToApiPurchase(purchase *models.Purchase) *api.Purchase {
	return &api.Purchase{
		PaymentReference: purchase.PaymentReference,
		UserId:           purchase.UserId,
		CoinAmount:       purchase.CoinAmount,
		USD:              pricing.FormatUSD(purchase.USDCents),
		Status:           string(purchase.Status),
		CreatedAt:        purchase.CreatedAt,
		UpdatedAt:        purchase.UpdatedAt,
	}
}

// ToLedgerOptions converts API ledger metadata to domain LedgerOptions.
func ToLedgerOptions(req *api.LedgerRequest) models.LedgerOptions {
	bucket := models.FreeCoins
	if req.Bucket == string(models.PurchasedCoins) {
		bucket = models.PurchasedCoins
	}
	return models.LedgerOptions{
		Bucket:    bucket,
		Reason:    req.Reason,
		Source:    req.Source,
		Reference: req.Reference,
	}
}

// ToApiReconcileResult converts a domain ReconcileReport to the API shape.
func ToApiReconcileResult(report *models.ReconcileReport) *api.ReconcileResult {
	errs := report.Errors
	if errs == nil {
		errs = []string{}
	}
	return &api.ReconcileResult{
		Success: true,
		Results: api.ReconcileSummary{
			UsersUpdated:      report.UsersUpdated,
			GiftsProcessed:    report.GiftsProcessed,
			CoinsAdded:        report.CoinsAdded,
			PurchasesVerified: report.PurchasesVerified,
			Errors:            errs,
		},
	}
}
