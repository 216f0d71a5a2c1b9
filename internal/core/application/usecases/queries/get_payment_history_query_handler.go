package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentHistoryQueryHandler lists a payer's payments.
type GetPaymentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history.
func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{db: db}
}

// Handle executes the query, newest payment first.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context, query GetPaymentHistoryQuery,
) ([]GetPaymentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetPaymentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			payer_email,
			amount,
			currency,
			method,
			transaction_id,
			created_at
		FROM payments
		WHERE payer_email = ?
		ORDER BY created_at DESC
	`, query.PayerEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response GetPaymentHistoryQueryResponse
			id       uuid.UUID
			parcelID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&parcelID,
			&response.PayerEmail,
			&response.Amount,
			&response.Currency,
			&response.Method,
			&response.TransactionID,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = paymentID

		paidParcelID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ParcelID = paidParcelID

		payments = append(payments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
