package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
)

// SQSQueue implements the ConfirmationQueue interface using AWS SQS.
type SQSQueue struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSQueue creates a new SQSQueue.
func NewSQSQueue(client *sqs.Client, queueURL string) *SQSQueue {
	return &SQSQueue{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ ConfirmationQueue = (*SQSQueue)(nil)

// EnqueueConfirmation sends the payment confirmation to an SQS queue. The
// webhook endpoint acknowledges the provider immediately; the purchase
// lambda consumes the queue and performs the credit.
func (q *SQSQueue) EnqueueConfirmation(ctx context.Context, conf *api.PaymentConfirmation) error {
	body, err := json.Marshal(conf)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation for SQS: %w", err)
	}

	_, err = q.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.QueueURL),
		MessageBody: aws.String(string(body)),
	})

	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
