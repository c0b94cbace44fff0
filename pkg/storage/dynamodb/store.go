package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/storage"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/websockets"
)

//go:generate mockery --name DynamoDBAPI --output mocks --outpkg mocks

// DynamoDBAPI captures the subset of the DynamoDB client used by the store.
// Depending on the interface instead of *dynamodb.Client keeps the store mockable.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                DynamoDBAPI
	Publisher             websockets.Publisher
	AccountsTableName     string
	TransactionsTableName string
	PurchasesTableName    string
	GiftsTableName        string
	ConnectionsTableName  string
}

// New creates a new Store. The publisher may be nil for components that do
// not broadcast balance updates (e.g. lambdas).
func New(client DynamoDBAPI, publisher websockets.Publisher, accountsTable, transactionsTable, purchasesTable, giftsTable, connectionsTable string) *Store {
	return &Store{
		Client:                client,
		Publisher:             publisher,
		AccountsTableName:     accountsTable,
		TransactionsTableName: transactionsTable,
		PurchasesTableName:    purchasesTable,
		GiftsTableName:        giftsTable,
		ConnectionsTableName:  connectionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
