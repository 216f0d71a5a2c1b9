package queries

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves a single parcel by its identifier.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve one parcel.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	query := GetParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setParcelID(parcelID); err != nil {
		return GetParcelQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to fetch.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

func (q *GetParcelQuery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	q.parcelID = parcelID
	return nil
}
