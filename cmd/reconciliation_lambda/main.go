package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/models"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/reconcile"
	dydbstore "github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/dynamodb"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/websockets"
)

var sweeper *reconcile.Sweeper

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	purchasesTable := os.Getenv("DYNAMODB_PURCHASES_TABLE_NAME")
	giftsTable := os.Getenv("DYNAMODB_GIFTS_TABLE_NAME")

	store := dydbstore.New(dbClient, &websockets.NoOpPublisher{}, accountsTable, transactionsTable, purchasesTable, giftsTable, "")
	sweeper = reconcile.NewSweeper(store)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) (*models.ReconcileReport, error) {
	log.Println("Starting reconciliation sweep...")

	report, err := sweeper.Sweep(ctx)
	if err != nil {
		log.Printf("ERROR: reconciliation sweep failed: %v", err)
		return nil, err
	}

	log.Printf("Reconciliation finished: %d users updated, %d gifts processed, %d purchases verified, %d coins added, %d errors",
		report.UsersUpdated, report.GiftsProcessed, report.PurchasesVerified, report.CoinsAdded, len(report.Errors))

	for _, recordErr := range report.Errors {
		log.Printf("ERROR: %s", recordErr)
	}

	return report, nil
}

func main() {
	lambda.Start(HandleRequest)
}
