package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
)

// SumGiftsByRecipient scans the gift table and aggregates coin amounts per
// recipient. The gifts table is owned by the streaming backend; this service
// only reads it.
func (s *Store) SumGiftsByRecipient(ctx context.Context) (map[string]int64, int, error) {
	totals := make(map[string]int64)
	scanned := 0

	input := &dynamodb.ScanInput{
		TableName: aws.String(s.GiftsTableName),
	}

	for {
		result, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan gifts table: %w", err)
		}

		var gifts []models.Gift
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &gifts); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal gifts: %w", err)
		}

		for _, gift := range gifts {
			totals[gift.ToUserId] += gift.CoinAmount
			scanned++
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return totals, scanned, nil
}
