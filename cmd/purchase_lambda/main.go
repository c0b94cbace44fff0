package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/pricing"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/purchases"
	dydbstore "github.com/trollzlive38-hash/trollcity-sub000/pkg/storage/dynamodb"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/websockets"
)

var service *purchases.Service

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	purchasesTable := os.Getenv("DYNAMODB_PURCHASES_TABLE_NAME")
	giftsTable := os.Getenv("DYNAMODB_GIFTS_TABLE_NAME")

	if accountsTable == "" || transactionsTable == "" || purchasesTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// The lambda has no websocket clients to notify.
	store := dydbstore.New(dbClient, &websockets.NoOpPublisher{}, accountsTable, transactionsTable, purchasesTable, giftsTable, "")
	service = purchases.NewService(store, store)
}

// HandleRequest processes queued payment confirmations and credits them.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var conf api.PaymentConfirmation
		if err := json.Unmarshal([]byte(message.Body), &conf); err != nil {
			log.Printf("ERROR: failed to unmarshal confirmation from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		usdCents := int64(0)
		if conf.USD != "" {
			parsed, err := pricing.ParseUSD(conf.USD)
			if err != nil {
				log.Printf("ERROR: confirmation %s carries invalid USD amount: %v", conf.PaymentReference, err)
				return err
			}
			usdCents = parsed
		}

		log.Printf("Attempting to credit purchase %s", conf.PaymentReference)

		result, err := service.Confirm(ctx, purchases.Confirmation{
			PaymentReference: conf.PaymentReference,
			UserId:           conf.UserId,
			CoinAmount:       conf.CoinAmount,
			USDCents:         usdCents,
		})
		if err != nil {
			log.Printf("ERROR: failed to credit purchase %s: %v", conf.PaymentReference, err)
			// In a production system, persistent failures would be sent to a DLQ.
			return err
		}

		if result.AlreadyProcessed {
			log.Printf("Purchase %s already processed, skipping", conf.PaymentReference)
			continue
		}
		log.Printf("Successfully credited %d coins for purchase %s", result.CoinAmount, conf.PaymentReference)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
