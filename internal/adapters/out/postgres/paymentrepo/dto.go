// Package paymentrepo provides data transfer objects and mapping functions
// for the append-only payment history.
package paymentrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// records. The transaction ID carries a unique index; it is the
// idempotency key for retried confirmations.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PayerEmail    string    `gorm:"type:varchar(255);not null;index"`
	Amount        int64     `gorm:"type:bigint;not null"`
	Currency      string    `gorm:"type:varchar(8);not null"`
	Method        string    `gorm:"type:varchar(32)"`
	TransactionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		ParcelID:      aggregate.ParcelID().Bytes(),
		PayerEmail:    aggregate.PayerEmail(),
		Amount:        aggregate.Amount(),
		Currency:      aggregate.Currency(),
		Method:        aggregate.Method(),
		TransactionID: aggregate.TransactionID(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, parcelID, dto.PayerEmail, dto.Amount, dto.Currency, dto.Method,
		dto.TransactionID, dto.CreatedAt,
	)
}
