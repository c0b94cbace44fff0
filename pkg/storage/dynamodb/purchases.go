package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
)

const purchaseStatusIndex = "status-created_at-index"

// CreatePurchase records a new pending purchase. The payment reference is the
// table's primary key, so a duplicate reference fails the conditional Put.
func (s *Store) CreatePurchase(ctx context.Context, purchase *models.Purchase) (*models.Purchase, error) {
	now := time.Now()
	purchase.Status = models.PurchasePending
	purchase.CreatedAt = now
	purchase.UpdatedAt = now

	purchaseAV, err := attributevalue.MarshalMap(purchase)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.PurchasesTableName),
		Item:                purchaseAV,
		ConditionExpression: aws.String("attribute_not_exists(payment_reference)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("purchase with reference %s: %w", purchase.PaymentReference, storage.ErrPurchaseExists)
		}
		return nil, fmt.Errorf("failed to create purchase in DynamoDB: %w", err)
	}

	return purchase, nil
}

// GetPurchase retrieves a purchase by its payment reference.
func (s *Store) GetPurchase(ctx context.Context, paymentReference string) (*models.Purchase, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"payment_reference": paymentReference})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment reference: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.PurchasesTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("purchase with reference %s: %w", paymentReference, storage.ErrPurchaseNotFound)
	}

	var purchase models.Purchase
	if err := attributevalue.UnmarshalMap(result.Item, &purchase); err != nil {
		return nil, fmt.Errorf("failed to unmarshal purchase: %w", err)
	}

	return &purchase, nil
}

// ClaimPurchase atomically transitions a purchase from pending to completed.
// The conditional update is the idempotency gate: under concurrent duplicate
// confirmations exactly one caller wins the claim, every other caller gets
// ErrPurchaseAlreadyProcessed.
func (s *Store) ClaimPurchase(ctx context.Context, paymentReference string) (*models.Purchase, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claim timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PurchasesTableName),
		Key: map[string]types.AttributeValue{
			"payment_reference": &types.AttributeValueMemberS{Value: paymentReference},
		},
		UpdateExpression:    aws.String("SET #status = :completed, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(models.PurchaseCompleted)},
			":pending":   &types.AttributeValueMemberS{Value: string(models.PurchasePending)},
			":now":       nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, s.classifyClaimFailure(ctx, paymentReference)
		}
		return nil, fmt.Errorf("failed to claim purchase: %w", err)
	}

	var purchase models.Purchase
	if err := attributevalue.UnmarshalMap(result.Attributes, &purchase); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claimed purchase: %w", err)
	}

	return &purchase, nil
}

// classifyClaimFailure distinguishes why a claim's condition failed: the
// record may be missing, already completed, or in a terminal failure state.
func (s *Store) classifyClaimFailure(ctx context.Context, paymentReference string) error {
	purchase, err := s.GetPurchase(ctx, paymentReference)
	if err != nil {
		return err
	}
	if purchase.Status == models.PurchaseCompleted {
		return fmt.Errorf("purchase with reference %s: %w", paymentReference, storage.ErrPurchaseAlreadyProcessed)
	}
	return fmt.Errorf("purchase with reference %s has status %s: %w", paymentReference, purchase.Status, storage.ErrPurchaseNotClaimable)
}

// MarkPurchaseFailed transitions a pending purchase to cancelled or failed.
func (s *Store) MarkPurchaseFailed(ctx context.Context, paymentReference string, status models.PurchaseStatus) error {
	if status != models.PurchaseCancelled && status != models.PurchaseFailed {
		return fmt.Errorf("status %s is not a terminal failure state", status)
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.PurchasesTableName),
		Key: map[string]types.AttributeValue{
			"payment_reference": &types.AttributeValueMemberS{Value: paymentReference},
		},
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":  &types.AttributeValueMemberS{Value: string(status)},
			":pending": &types.AttributeValueMemberS{Value: string(models.PurchasePending)},
			":now":     nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return s.classifyClaimFailure(ctx, paymentReference)
		}
		return fmt.Errorf("failed to mark purchase %s: %w", status, err)
	}

	return nil
}

// ListStuckPurchases retrieves purchases that have been pending for longer
// than maxAge. Checkouts abandoned by the user stay pending indefinitely;
// this feeds the admin tooling used for manual capture or cleanup.
func (s *Store) ListStuckPurchases(ctx context.Context, maxAge time.Duration) ([]models.Purchase, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(purchaseStatusIndex),
		KeyConditionExpression: aws.String("#status = :status AND created_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PurchasePending)},
			":cutoff": &types.AttributeValueMemberS{Value: string(cutoffTimeStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck purchases: %w", err)
	}

	var purchases []models.Purchase
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &purchases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck purchases: %w", err)
	}

	return purchases, nil
}

// ListCompletedPurchases retrieves all completed purchases.
func (s *Store) ListCompletedPurchases(ctx context.Context) ([]models.Purchase, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(purchaseStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PurchaseCompleted)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for completed purchases: %w", err)
	}

	var purchases []models.Purchase
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &purchases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed purchases: %w", err)
	}

	return purchases, nil
}
