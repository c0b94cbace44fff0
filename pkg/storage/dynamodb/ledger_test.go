package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/dynamodb/mocks"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/websockets"
)

// capturePublisher records broadcast messages for assertions.
type capturePublisher struct {
	messages []websockets.Message
}

func (p *capturePublisher) Publish(ctx context.Context, message websockets.Message) error {
	p.messages = append(p.messages, message)
	return nil
}

// conditionCanceled simulates a TransactWriteItems rejection caused by a
// failed condition expression.
func conditionCanceled() *types.TransactionCanceledException {
	return &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		},
	}
}

func TestCredit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var capturedInput *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				capturedInput = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		// Read-back after the write reflects the new balances.
		account := &models.Account{UserId: "user1", TotalCoins: 500, FreeCoins: 0, PurchasedCoins: 500, Version: 2}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		update, err := store.Credit(context.Background(), "user1", 500, models.LedgerOptions{
			Bucket: models.PurchasedCoins,
			Reason: "purchase",
			Source: "stripe",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(500), update.TotalCoins)
		assert.Equal(t, int64(0), update.FreeCoins)
		assert.Equal(t, int64(500), update.PurchasedCoins)

		// The write must be a single transaction pairing the balance
		// increment with the audit record put.
		assert.Len(t, capturedInput.TransactItems, 2)
		updateItem := capturedInput.TransactItems[0].Update
		assert.Contains(t, *updateItem.UpdateExpression, "total_coins = total_coins + :amount")
		assert.Contains(t, *updateItem.UpdateExpression, "purchased_coins = purchased_coins + :amount")
		assert.NotNil(t, capturedInput.TransactItems[1].Put)
		mockClient.AssertExpectations(t)
	})

	t.Run("Publishes Balance Update", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		account := &models.Account{UserId: "user1", TotalCoins: 500, FreeCoins: 0, PurchasedCoins: 500, Version: 2}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		publisher := &capturePublisher{}
		store := New(mockClient, publisher, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Credit(context.Background(), "user1", 500, models.LedgerOptions{
			Bucket: models.PurchasedCoins,
			Reason: "purchase",
		})

		assert.NoError(t, err)
		assert.Len(t, publisher.messages, 1)
		assert.Equal(t, websockets.MessageTypeBalanceUpdate, publisher.messages[0].Type)
		payload := publisher.messages[0].Payload.(websockets.BalanceUpdatePayload)
		assert.Equal(t, "user1", payload.UserID)
		assert.Equal(t, int64(500), payload.Change)
		assert.Equal(t, int64(500), payload.TotalCoins)
		assert.Equal(t, int64(500), payload.PurchasedCoins)
		mockClient.AssertExpectations(t)
	})

	t.Run("Defaults To Free Bucket", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		var capturedInput *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				capturedInput = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		account := &models.Account{UserId: "user1", TotalCoins: 100, FreeCoins: 100}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		store := New(mockClient, &websockets.NoOpPublisher{}, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Credit(context.Background(), "user1", 100, models.LedgerOptions{Reason: "signup_bonus"})

		assert.NoError(t, err)
		updateItem := capturedInput.TransactItems[0].Update
		assert.Contains(t, *updateItem.UpdateExpression, "free_coins = free_coins + :amount")
		mockClient.AssertExpectations(t)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionCanceled())

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Credit(context.Background(), "missing", 100, models.LedgerOptions{Reason: "gift"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Credit(context.Background(), "user1", 100, models.LedgerOptions{Reason: "gift"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to execute credit transaction")
		mockClient.AssertExpectations(t)
	})
}

func TestDebit(t *testing.T) {
	t.Run("Drains Purchased Coins First", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		account := &models.Account{UserId: "user1", TotalCoins: 500, FreeCoins: 0, PurchasedCoins: 500, Version: 2}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		var capturedInput *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				capturedInput = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		update, err := store.Debit(context.Background(), "user1", 200, models.LedgerOptions{Reason: "gift_send"})

		assert.NoError(t, err)
		assert.Equal(t, int64(300), update.TotalCoins)
		assert.Equal(t, int64(0), update.FreeCoins)
		assert.Equal(t, int64(300), update.PurchasedCoins)

		// The conditional write is gated on the version read beforehand.
		updateItem := capturedInput.TransactItems[0].Update
		assert.Contains(t, *updateItem.ConditionExpression, "version = :version")
		version := updateItem.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN)
		assert.Equal(t, "2", version.Value)

		var record models.Transaction
		assert.NoError(t, attributevalue.UnmarshalMap(capturedInput.TransactItems[1].Put.Item, &record))
		assert.Equal(t, int64(200), record.PurchasedAmount)
		assert.Equal(t, int64(0), record.FreeAmount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Overflows Into Free Coins", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		account := &models.Account{UserId: "user1", TotalCoins: 500, FreeCoins: 200, PurchasedCoins: 300, Version: 1}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		var capturedInput *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				capturedInput = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		update, err := store.Debit(context.Background(), "user1", 400, models.LedgerOptions{Reason: "gift_send"})

		assert.NoError(t, err)
		assert.Equal(t, int64(100), update.TotalCoins)
		assert.Equal(t, int64(100), update.FreeCoins)
		assert.Equal(t, int64(0), update.PurchasedCoins)

		// The audit record carries the exact per-bucket split.
		var record models.Transaction
		assert.NoError(t, attributevalue.UnmarshalMap(capturedInput.TransactItems[1].Put.Item, &record))
		assert.Equal(t, int64(400), record.Amount)
		assert.Equal(t, int64(300), record.PurchasedAmount)
		assert.Equal(t, int64(100), record.FreeAmount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Insufficient Coins", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		account := &models.Account{UserId: "user1", TotalCoins: 100, FreeCoins: 100, Version: 1}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Debit(context.Background(), "user1", 200, models.LedgerOptions{Reason: "gift_send"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrInsufficientCoins)
		mockClient.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Version Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		account := &models.Account{UserId: "user1", TotalCoins: 500, FreeCoins: 500, Version: 1}
		accountAV, _ := attributevalue.MarshalMap(account)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: accountAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, conditionCanceled())

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Debit(context.Background(), "user1", 200, models.LedgerOptions{Reason: "gift_send"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrVersionConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Account Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		_, err := store.Debit(context.Background(), "missing", 200, models.LedgerOptions{Reason: "gift_send"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
		mockClient.AssertExpectations(t)
	})
}
