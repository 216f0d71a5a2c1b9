package queries

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var (
	ErrGetParcelsQueryIsNotConstructed = errors.New(
		"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
	)
	ErrSenderEmailIsRequired = errors.New("sender email is required")
)

// GetParcelsQuery retrieves the parcels a sender has booked, most recent
// first.
type GetParcelsQuery struct { //nolint:recvcheck //using for validation
	senderEmail string

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a query for a sender's parcels.
func NewGetParcelsQuery(senderEmail string) (GetParcelsQuery, error) {
	query := GetParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSenderEmail(senderEmail); err != nil {
		return GetParcelsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// SenderEmail returns the email whose parcels are listed.
func (q GetParcelsQuery) SenderEmail() string {
	return q.senderEmail
}

func (q *GetParcelsQuery) setSenderEmail(senderEmail string) error {
	if senderEmail == "" {
		return ErrSenderEmailIsRequired
	}

	q.senderEmail = senderEmail
	return nil
}
