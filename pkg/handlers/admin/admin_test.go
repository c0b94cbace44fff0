package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	adminhandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/admin"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/ledger"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/purchases"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/reconcile"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/mocks"
)

func newHandler(mockStorage *mocks.Storage) *adminhandler.AdminHandler {
	ledgerSvc := ledger.NewService(mockStorage)
	purchasesSvc := purchases.NewService(mockStorage, mockStorage)
	sweeper := reconcile.NewSweeper(mockStorage)
	return adminhandler.NewAdminHandler(ledgerSvc, purchasesSvc, sweeper, mockStorage)
}

func TestAddCoins(t *testing.T) {
	t.Run("Free Coins", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		expectedOpts := models.LedgerOptions{Bucket: models.FreeCoins, Reason: "admin_grant", Source: "admin"}
		update := &models.BalanceUpdate{UserId: "user1", TotalCoins: 100, FreeCoins: 100}
		mockStorage.On("Credit", mock.Anything, "user1", int64(100), expectedOpts).Return(update, nil)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.AddCoinsRequest{Amount: 100, CoinType: "free"})
		req := httptest.NewRequest(http.MethodPost, "/admin/users/user1/coins", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.AddCoins(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Paid Coins", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		expectedOpts := models.LedgerOptions{Bucket: models.PurchasedCoins, Reason: "admin_grant", Source: "admin"}
		update := &models.BalanceUpdate{UserId: "user1", TotalCoins: 100, PurchasedCoins: 100}
		mockStorage.On("Credit", mock.Anything, "user1", int64(100), expectedOpts).Return(update, nil)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.AddCoinsRequest{Amount: 100, CoinType: "paid"})
		req := httptest.NewRequest(http.MethodPost, "/admin/users/user1/coins", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.AddCoins(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Coin Type", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.AddCoinsRequest{Amount: 100, CoinType: "imaginary"})
		req := httptest.NewRequest(http.MethodPost, "/admin/users/user1/coins", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.AddCoins(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("Credit", mock.Anything, "missing", int64(100), mock.Anything).
			Return(nil, storage.ErrAccountNotFound)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.AddCoinsRequest{Amount: 100, CoinType: "free"})
		req := httptest.NewRequest(http.MethodPost, "/admin/users/missing/coins", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.AddCoins(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestConvertPurchasedToFree(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		update := &models.BalanceUpdate{UserId: "user1", TotalCoins: 500, FreeCoins: 500}
		mockStorage.On("ConvertPurchasedToFree", mock.Anything, "user1").Return(update, nil)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/user1/convert", nil)
		rr := httptest.NewRecorder()

		h.ConvertPurchasedToFree(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Balance
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(500), got.FreeCoins)
		assert.Equal(t, int64(0), got.PurchasedCoins)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ConvertPurchasedToFree", mock.Anything, "user1").Return(nil, storage.ErrVersionConflict)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/admin/users/user1/convert", nil)
		rr := httptest.NewRecorder()

		h.ConvertPurchasedToFree(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestEraseAllCoins(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("EraseAllCoins", mock.Anything).Return(3, nil)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.EraseRequest{Confirm: adminhandler.ErasePhrase})
		req := httptest.NewRequest(http.MethodPost, "/admin/erase", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.EraseAllCoins(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.EraseResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, 3, got.AccountsErased)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Wrong Confirmation Phrase", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.EraseRequest{Confirm: "erase all coins"})
		req := httptest.NewRequest(http.MethodPost, "/admin/erase", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.EraseAllCoins(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "EraseAllCoins", mock.Anything)
	})
}

func TestReconcile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("SumGiftsByRecipient", mock.Anything).Return(map[string]int64{}, 0, nil)
		mockStorage.On("ListAccounts", mock.Anything).Return([]models.Account{}, nil)
		mockStorage.On("ListCompletedPurchases", mock.Anything).Return([]models.Purchase{}, nil)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/admin/reconcile", nil)
		rr := httptest.NewRecorder()

		h.Reconcile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.ReconcileResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.True(t, got.Success)
		mockStorage.AssertExpectations(t)
	})
}

func TestCapturePurchase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		claimed := &models.Purchase{PaymentReference: "pay_123", UserId: "user1", CoinAmount: 500, Status: models.PurchaseCompleted}
		mockStorage.On("ClaimPurchase", mock.Anything, "pay_123").Return(claimed, nil)
		mockStorage.On("Credit", mock.Anything, "user1", int64(500), mock.Anything).
			Return(&models.BalanceUpdate{UserId: "user1", TotalCoins: 500, PurchasedCoins: 500}, nil)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/admin/purchases/pay_123/capture", nil)
		rr := httptest.NewRecorder()

		h.CapturePurchase(rr, req, "pay_123")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.ConfirmationResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.True(t, got.Success)
		assert.Equal(t, int64(500), got.CoinAmount)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Already Processed", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ClaimPurchase", mock.Anything, "pay_123").Return(nil, storage.ErrPurchaseAlreadyProcessed)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/admin/purchases/pay_123/capture", nil)
		rr := httptest.NewRecorder()

		h.CapturePurchase(rr, req, "pay_123")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.ConfirmationResult
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.True(t, got.AlreadyProcessed)
		mockStorage.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Not Claimable", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ClaimPurchase", mock.Anything, "pay_123").Return(nil, storage.ErrPurchaseNotClaimable)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodPost, "/admin/purchases/pay_123/capture", nil)
		rr := httptest.NewRecorder()

		h.CapturePurchase(rr, req, "pay_123")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}
