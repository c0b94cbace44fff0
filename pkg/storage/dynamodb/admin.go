package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

// ConvertPurchasedToFree moves the account's entire purchased balance into
// the free bucket. The total is unchanged; the move is documented by a single
// audit record with reason purchased_to_free.
func (s *Store) ConvertPurchasedToFree(ctx context.Context, userID string) (*models.BalanceUpdate, error) {
	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for conversion: %w", err)
	}

	update := &models.BalanceUpdate{
		UserId:         account.UserId,
		TotalCoins:     account.TotalCoins,
		FreeCoins:      account.FreeCoins,
		PurchasedCoins: account.PurchasedCoins,
	}
	if account.PurchasedCoins == 0 {
		return update, nil
	}

	now := time.Now()
	record := newTransactionRecord(userID, account.PurchasedCoins, models.CREDIT, models.LedgerOptions{
		Bucket: models.FreeCoins,
		Reason: "purchased_to_free",
		Source: "admin",
	}, now)
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction record: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	newFree := account.FreeCoins + account.PurchasedCoins

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: userID},
					},
					UpdateExpression:    aws.String("SET free_coins = :free, purchased_coins = :zero, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":free":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newFree)},
						":zero":    &types.AttributeValueMemberN{Value: "0"},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":now":     nowAV,
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                recordAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactConditionFailed(err) {
			return nil, fmt.Errorf("conversion for user %s: %w", userID, storage.ErrVersionConflict)
		}
		return nil, fmt.Errorf("failed to execute conversion transaction: %w", err)
	}

	update.FreeCoins = newFree
	update.PurchasedCoins = 0
	return update, nil
}

// EraseAllCoins zeroes every balance field on every account. Each non-zero
// account gets a debit audit record for the erased total, so even this
// destructive override stays on the audit trail. Returns the number of
// accounts that held coins.
func (s *Store) EraseAllCoins(ctx context.Context) (int, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list accounts for erase: %w", err)
	}

	erased := 0
	for _, account := range accounts {
		if account.TotalCoins == 0 && account.FreeCoins == 0 && account.PurchasedCoins == 0 && account.EarnedCoins == 0 {
			continue
		}
		if err := s.eraseAccount(ctx, &account); err != nil {
			return erased, fmt.Errorf("failed to erase coins for user %s: %w", account.UserId, err)
		}
		erased++
	}

	return erased, nil
}

func (s *Store) eraseAccount(ctx context.Context, account *models.Account) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(s.AccountsTableName),
				Key: map[string]types.AttributeValue{
					"user_id": &types.AttributeValueMemberS{Value: account.UserId},
				},
				UpdateExpression:    aws.String("SET total_coins = :zero, free_coins = :zero, purchased_coins = :zero, earned_coins = :zero, version = version + :inc, updated_at = :now"),
				ConditionExpression: aws.String("version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":zero":    &types.AttributeValueMemberN{Value: "0"},
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
					":inc":     &types.AttributeValueMemberN{Value: "1"},
					":now":     nowAV,
				},
			},
		},
	}

	// Accounts can have earned coins but no spendable balance; only record a
	// debit when there is a total to debit.
	if account.TotalCoins > 0 {
		record := newTransactionRecord(account.UserId, account.TotalCoins, models.DEBIT, models.LedgerOptions{
			Bucket: models.PurchasedCoins,
			Reason: "admin_erase",
			Source: "admin",
		}, now)
		record.FreeAmount = account.FreeCoins
		record.PurchasedAmount = account.PurchasedCoins
		recordAV, err := attributevalue.MarshalMap(record)
		if err != nil {
			return fmt.Errorf("failed to marshal transaction record: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.TransactionsTableName),
				Item:                recordAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if transactConditionFailed(err) {
			return storage.ErrVersionConflict
		}
		return fmt.Errorf("failed to execute erase transaction: %w", err)
	}

	return nil
}

// SetEarnedCoins raises an account's earned-coin counter to the recomputed
// value, crediting the shortfall to the free bucket. Used by reconciliation.
func (s *Store) SetEarnedCoins(ctx context.Context, userID string, earned int64) (*models.BalanceUpdate, error) {
	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for earned-coins correction: %w", err)
	}

	update := &models.BalanceUpdate{
		UserId:         account.UserId,
		TotalCoins:     account.TotalCoins,
		FreeCoins:      account.FreeCoins,
		PurchasedCoins: account.PurchasedCoins,
	}
	delta := earned - account.EarnedCoins
	if delta <= 0 {
		// Never claw back: the counter only moves forward.
		return update, nil
	}

	now := time.Now()
	record := newTransactionRecord(userID, delta, models.CREDIT, models.LedgerOptions{
		Bucket: models.FreeCoins,
		Reason: "gift_reconciliation",
		Source: "reconcile",
	}, now)
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction record: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: userID},
					},
					UpdateExpression:    aws.String("SET earned_coins = :earned, total_coins = total_coins + :delta, free_coins = free_coins + :delta, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":earned":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", earned)},
						":delta":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":now":     nowAV,
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                recordAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		if transactConditionFailed(err) {
			return nil, fmt.Errorf("earned-coins correction for user %s: %w", userID, storage.ErrVersionConflict)
		}
		return nil, fmt.Errorf("failed to execute earned-coins correction: %w", err)
	}

	update.TotalCoins += delta
	update.FreeCoins += delta
	return update, nil
}
