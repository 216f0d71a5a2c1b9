package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
		"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
	)
	ErrPayerEmailIsRequired = errors.New("payer email is required")
)

// GetPaymentHistoryQuery lists a payer's recorded payments, most recent
// first.
type GetPaymentHistoryQuery struct { //nolint:recvcheck //using for validation
	payerEmail string

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for a payer's history.
func NewGetPaymentHistoryQuery(payerEmail string) (GetPaymentHistoryQuery, error) {
	query := GetPaymentHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPayerEmail(payerEmail); err != nil {
		return GetPaymentHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// PayerEmail returns the email whose payments are listed.
func (q GetPaymentHistoryQuery) PayerEmail() string {
	return q.payerEmail
}

func (q *GetPaymentHistoryQuery) setPayerEmail(payerEmail string) error {
	if payerEmail == "" {
		return ErrPayerEmailIsRequired
	}

	q.payerEmail = payerEmail
	return nil
}

// GetPaymentHistoryQueryResponse represents one payment in the read model.
type GetPaymentHistoryQueryResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	PayerEmail    string
	Amount        int64
	Currency      string
	Method        string
	TransactionID string
	CreatedAt     time.Time
}
