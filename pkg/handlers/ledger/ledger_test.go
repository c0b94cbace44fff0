package ledger_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	ledgerhandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/ledger"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/ledger"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/mocks"
)

func newHandler(mockStorage *mocks.Storage) *ledgerhandler.LedgerHandler {
	return ledgerhandler.NewLedgerHandler(ledger.NewService(mockStorage), mockStorage)
}

func TestCredit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		update := &models.BalanceUpdate{UserId: "user1", TotalCoins: 500, FreeCoins: 500}
		mockStorage.On("Credit", mock.Anything, "user1", int64(500), mock.Anything).Return(update, nil)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 500, Reason: "signup_bonus"})
		req := httptest.NewRequest(http.MethodPost, "/accounts/user1/credit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Credit(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Balance
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(500), got.TotalCoins)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Rejects Zero Amount", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 0})
		req := httptest.NewRequest(http.MethodPost, "/accounts/user1/credit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Credit(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects Unknown Bucket", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 100, Bucket: "imaginary"})
		req := httptest.NewRequest(http.MethodPost, "/accounts/user1/credit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Credit(rr, req, "user1")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("Credit", mock.Anything, "missing", int64(100), mock.Anything).
			Return(nil, storage.ErrAccountNotFound)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 100})
		req := httptest.NewRequest(http.MethodPost, "/accounts/missing/credit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Credit(rr, req, "missing")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestDebit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		update := &models.BalanceUpdate{UserId: "user1", TotalCoins: 300, PurchasedCoins: 300}
		mockStorage.On("Debit", mock.Anything, "user1", int64(200), mock.Anything).Return(update, nil)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 200, Reason: "gift_send"})
		req := httptest.NewRequest(http.MethodPost, "/accounts/user1/debit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Debit(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got api.Balance
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(300), got.TotalCoins)
		assert.Equal(t, int64(0), got.FreeCoins)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Insufficient Coins", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("Debit", mock.Anything, "user1", int64(999), mock.Anything).
			Return(nil, storage.ErrInsufficientCoins)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 999})
		req := httptest.NewRequest(http.MethodPost, "/accounts/user1/debit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Debit(rr, req, "user1")

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("Debit", mock.Anything, "user1", int64(200), mock.Anything).
			Return(nil, storage.ErrVersionConflict)

		h := newHandler(mockStorage)

		body, _ := json.Marshal(api.LedgerRequest{Amount: 200})
		req := httptest.NewRequest(http.MethodPost, "/accounts/user1/debit", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Debit(rr, req, "user1")

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestListTransactionsByUserId(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		txs := []models.Transaction{
			{Id: "tx1", UserId: "user1", Amount: 100, Direction: models.CREDIT},
		}
		mockStorage.On("ListTransactionsByUserID", mock.Anything, "user1").Return(txs, nil)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/accounts/user1/transactions", nil)
		rr := httptest.NewRecorder()

		h.ListTransactionsByUserId(rr, req, "user1")

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []api.Transaction
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 1)
		mockStorage.AssertExpectations(t)
	})
}

func TestListRecentTransactions(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListRecentTransactions", mock.Anything, int32(20)).Return([]models.Transaction{}, nil)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger", nil)
		rr := httptest.NewRecorder()

		h.ListRecentTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Custom Limit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListRecentTransactions", mock.Anything, int32(5)).Return([]models.Transaction{}, nil)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger?limit=5", nil)
		rr := httptest.NewRecorder()

		h.ListRecentTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		mockStorage := new(mocks.Storage)

		h := newHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/ledger?limit=-1", nil)
		rr := httptest.NewRecorder()

		h.ListRecentTransactions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "ListRecentTransactions", mock.Anything, mock.Anything)
	})
}
