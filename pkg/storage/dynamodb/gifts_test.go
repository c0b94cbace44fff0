package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/dynamodb/mocks"
)

func marshalGifts(t *testing.T, gifts []models.Gift) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, len(gifts))
	for i, g := range gifts {
		av, err := attributevalue.MarshalMap(g)
		assert.NoError(t, err)
		items[i] = av
	}
	return items
}

func TestSumGiftsByRecipient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		gifts := []models.Gift{
			{GiftId: "g1", FromUserId: "a", ToUserId: "streamer1", CoinAmount: 100},
			{GiftId: "g2", FromUserId: "b", ToUserId: "streamer1", CoinAmount: 50},
			{GiftId: "g3", FromUserId: "a", ToUserId: "streamer2", CoinAmount: 25},
		}
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: marshalGifts(t, gifts)}, nil)

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		totals, scanned, err := store.SumGiftsByRecipient(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, scanned)
		assert.Equal(t, int64(150), totals["streamer1"])
		assert.Equal(t, int64(25), totals["streamer2"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Paginated Scan", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		page1 := marshalGifts(t, []models.Gift{{GiftId: "g1", ToUserId: "streamer1", CoinAmount: 100}})
		page2 := marshalGifts(t, []models.Gift{{GiftId: "g2", ToUserId: "streamer1", CoinAmount: 100}})
		lastKey := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "g1"}}

		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: page1, LastEvaluatedKey: lastKey}, nil).Once()
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: page2}, nil).Once()

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		totals, scanned, err := store.SumGiftsByRecipient(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, scanned)
		assert.Equal(t, int64(200), totals["streamer1"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("scan failed"))

		store := New(mockClient, nil, "accounts", "transactions", "purchases", "gifts", "connections")
		_, _, err := store.SumGiftsByRecipient(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan gifts table")
		mockClient.AssertExpectations(t)
	})
}
