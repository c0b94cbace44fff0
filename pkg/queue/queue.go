package queue

import (
	"context"

	"github.com/trollzlive38-hash/trollcity-sub000/pkg/api"
)

//go:generate mockery --name ConfirmationQueue --output mocks --outpkg mocks

// ConfirmationQueue defines the interface for handing a payment confirmation
// off for asynchronous crediting.
type ConfirmationQueue interface {
	// EnqueueConfirmation enqueues a confirmation for asynchronous processing.
	EnqueueConfirmation(ctx context.Context, conf *api.PaymentConfirmation) error
}
