package queries

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var ErrGetLatestParcelQueryIsNotConstructed = errors.New(
	"GetLatestParcelQuery must be created via NewGetLatestParcelQuery constructor",
)

// GetLatestParcelQuery retrieves the most recently booked parcel, either
// system-wide or for one sender when an email filter is given.
type GetLatestParcelQuery struct {
	senderEmail string

	guard guard.ConstructorGuard
}

// NewGetLatestParcelQuery creates a query for the latest parcel. An empty
// senderEmail means no filter.
func NewGetLatestParcelQuery(senderEmail string) GetLatestParcelQuery {
	return GetLatestParcelQuery{
		senderEmail: senderEmail,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetLatestParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestParcelQueryIsNotConstructed)
}

// SenderEmail returns the optional sender filter.
func (q GetLatestParcelQuery) SenderEmail() string {
	return q.senderEmail
}
