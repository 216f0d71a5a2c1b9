package ports

import (
	"context"

	"zapshift/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Records are append-only; there is no Update.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByTransactionID retrieves the payment recorded for a processor
	// transaction id. Returns errs.ErrObjectNotFound when none exists.
	// This is the idempotency check for retried confirmations.
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
}
