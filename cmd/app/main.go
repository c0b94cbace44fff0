package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/accounts"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/admin"
	ledgerhandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/ledger"
	purchaseshandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/purchases"
	wshandler "github.com/trollzlive38-hash/trollcity-sub000/pkg/handlers/websockets"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/ledger"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/purchases"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/queue"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/reconcile"
	dydbstore "github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/dynamodb"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/websockets"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	purchasesTable := os.Getenv("DYNAMODB_PURCHASES_TABLE_NAME")
	giftsTable := os.Getenv("DYNAMODB_GIFTS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")

	if accountsTable == "" || transactionsTable == "" || purchasesTable == "" || giftsTable == "" || connectionsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS client and confirmation queue
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_CONFIRMATIONS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_CONFIRMATIONS_QUEUE_URL environment variable not set")
	}
	confirmationQueue := queue.NewSQSQueue(sqsClient, sqsQueueURL)

	// Storage, wired to publish balance updates when an API Gateway endpoint
	// is configured.
	store := dydbstore.New(dbClient, nil, accountsTable, transactionsTable, purchasesTable, giftsTable, connectionsTable)
	if wsEndpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); wsEndpoint != "" {
		publisher, err := websockets.NewPublisher(store, store, wsEndpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
		store.Publisher = publisher
	}

	// Services
	ledgerService := ledger.NewService(store)
	purchaseService := purchases.NewService(store, store)
	sweeper := reconcile.NewSweeper(store)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	router := handlers.NewRouter(logger, handlers.Handlers{
		Accounts:   accounts.NewAccountsHandler(store),
		Ledger:     ledgerhandler.NewLedgerHandler(ledgerService, store),
		Purchases:  purchaseshandler.NewPurchasesHandler(purchaseService, store, confirmationQueue),
		Admin:      admin.NewAdminHandler(ledgerService, purchaseService, sweeper, store),
		WebSockets: wshandler.NewHandler(store),
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
