package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/websockets"
)

// ledgerPartition is the fixed partition key that lets recent transactions
// be queried from a single GSI in timestamp order.
const ledgerPartition = "LEDGER"

// bucketAttribute maps a coin bucket to its account attribute name.
func bucketAttribute(bucket models.CoinBucket) string {
	if bucket == models.PurchasedCoins {
		return "purchased_coins"
	}
	return "free_coins"
}

// newTransactionRecord builds the audit record appended alongside every
// balance mutation. The per-bucket split defaults to the whole amount under
// opts.Bucket; callers that split across buckets overwrite it.
func newTransactionRecord(userID string, amount int64, direction models.TransactionDirection, opts models.LedgerOptions, now time.Time) *models.Transaction {
	record := &models.Transaction{
		Id:        uuid.New().String(),
		UserId:    userID,
		Amount:    amount,
		Direction: direction,
		Bucket:    opts.Bucket,
		Reason:    opts.Reason,
		Source:    opts.Source,
		Reference: opts.Reference,
		CreatedAt: now,
		GSI1PK:    ledgerPartition,
	}
	if opts.Bucket == models.PurchasedCoins {
		record.PurchasedAmount = amount
	} else {
		record.FreeAmount = amount
	}
	return record
}

// Credit atomically adds amount to the account's total and to the bucket
// named in opts, appending a credit transaction record in the same
// TransactWriteItems call. The balance update is expressed as a server-side
// increment, so concurrent credits cannot lose updates.
func (s *Store) Credit(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error) {
	now := time.Now()
	record := newTransactionRecord(userID, amount, models.CREDIT, opts, now)
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction record: %w", err)
	}

	amountAV, err := attributevalue.Marshal(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	bucketAttr := bucketAttribute(opts.Bucket)
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 1: Increment the account balances in place.
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: userID},
					},
					UpdateExpression: aws.String(fmt.Sprintf(
						"SET total_coins = total_coins + :amount, %s = %s + :amount, version = version + :inc, updated_at = :now",
						bucketAttr, bucketAttr)),
					ConditionExpression: aws.String("attribute_exists(user_id)"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": amountAV,
						":inc":    &types.AttributeValueMemberN{Value: "1"},
						":now":    nowAV,
					},
				},
			},
			{
				// Operation 2: Append the audit record.
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
			return nil, fmt.Errorf("account for user ID %s: %w", userID, storage.ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to execute credit transaction: %w", err)
	}

	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("credit applied but failed to read back balance: %w", err)
	}

	update := &models.BalanceUpdate{
		UserId:         account.UserId,
		TotalCoins:     account.TotalCoins,
		FreeCoins:      account.FreeCoins,
		PurchasedCoins: account.PurchasedCoins,
	}
	s.publishBalanceUpdate(ctx, record.Id, amount, update)
	return update, nil
}

// Debit atomically removes amount from the account, draining purchased coins
// first and the remainder from free coins. The write is gated on the version
// read beforehand, so a concurrent mutation fails the condition instead of
// producing a lost update.
func (s *Store) Debit(ctx context.Context, userID string, amount int64, opts models.LedgerOptions) (*models.BalanceUpdate, error) {
	// 1. Read the account to compute the per-bucket split.
	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for debit: %w", err)
	}
	if account.TotalCoins < amount {
		return nil, fmt.Errorf("debit of %d from user %s (balance %d): %w", amount, userID, account.TotalCoins, storage.ErrInsufficientCoins)
	}

	// Purchased coins drain first; neither bucket may go negative.
	fromPurchased := amount
	if fromPurchased > account.PurchasedCoins {
		fromPurchased = account.PurchasedCoins
	}
	fromFree := amount - fromPurchased

	newTotal := account.TotalCoins - amount
	newPurchased := account.PurchasedCoins - fromPurchased
	newFree := account.FreeCoins - fromFree

	if opts.Bucket == "" {
		opts.Bucket = models.PurchasedCoins
		if fromPurchased == 0 {
			opts.Bucket = models.FreeCoins
		}
	}

	now := time.Now()
	record := newTransactionRecord(userID, amount, models.DEBIT, opts, now)
	record.FreeAmount = fromFree
	record.PurchasedAmount = fromPurchased
	recordAV, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction record: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// 2. Write the new balances, conditioned on the version we read.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.AccountsTableName),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: userID},
					},
					UpdateExpression:    aws.String("SET total_coins = :total, free_coins = :free, purchased_coins = :purchased, version = version + :inc, updated_at = :now"),
					ConditionExpression: aws.String("version = :version AND total_coins >= :amount"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":total":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newTotal)},
						":free":      &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newFree)},
						":purchased": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newPurchased)},
						":version":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", account.Version)},
						":amount":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", amount)},
						":inc":       &types.AttributeValueMemberN{Value: "1"},
						":now":       nowAV,
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
			return nil, fmt.Errorf("debit of %d from user %s: %w", amount, userID, storage.ErrVersionConflict)
		}
		return nil, fmt.Errorf("failed to execute debit transaction: %w", err)
	}

	update := &models.BalanceUpdate{
		UserId:         userID,
		TotalCoins:     newTotal,
		FreeCoins:      newFree,
		PurchasedCoins: newPurchased,
	}
	s.publishBalanceUpdate(ctx, record.Id, -amount, update)
	return update, nil
}

// transactConditionFailed reports whether a TransactWriteItems error was
// caused by a failed condition expression.
func transactConditionFailed(err error) bool {
	var txc *types.TransactionCanceledException
	if !errors.As(err, &txc) {
		return false
	}
	for _, reason := range txc.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// publishBalanceUpdate notifies connected clients of a balance change.
// Best effort: a publish failure never fails the ledger operation.
func (s *Store) publishBalanceUpdate(ctx context.Context, transactionID string, change int64, update *models.BalanceUpdate) {
	if s.Publisher == nil {
		return
	}
	msg := websockets.Message{
		Type: websockets.MessageTypeBalanceUpdate,
		Payload: websockets.BalanceUpdatePayload{
			UserID:         update.UserId,
			TransactionID:  transactionID,
			Change:         change,
			TotalCoins:     update.TotalCoins,
			FreeCoins:      update.FreeCoins,
			PurchasedCoins: update.PurchasedCoins,
		},
	}
	if err := s.Publisher.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish balance update", "userId", update.UserId, "error", err)
	}
}
