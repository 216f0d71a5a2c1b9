package paymentrepo

import (
	"context"
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM. The
// payment history is append-only, so there is no Update.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment record to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByTransactionID retrieves the payment recorded for a processor
// transaction id.
func (r *GormPaymentRepository) GetByTransactionID(
	ctx context.Context, transactionID string,
) (*payment.Payment, error) {
	if transactionID == "" {
		return nil, errs.NewValueIsRequiredError("transactionID")
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", transactionID)
		}
		return nil, err
	}

	return toDomain(dto)
}
