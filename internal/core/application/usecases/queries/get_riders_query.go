package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery lists riders in a given lifecycle state. Admins use the
// pending list for approvals and the active list when assigning parcels.
type GetRidersQuery struct { //nolint:recvcheck //using for validation
	status rider.Status

	guard guard.ConstructorGuard
}

// NewGetRidersQuery creates a query for riders in one status.
func NewGetRidersQuery(status rider.Status) (GetRidersQuery, error) {
	query := GetRidersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetRidersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

// Status returns the rider status filter.
func (q GetRidersQuery) Status() rider.Status {
	return q.status
}

func (q *GetRidersQuery) setStatus(status rider.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetRidersQueryResponse represents a rider in the read model.
type GetRidersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	District  string
	Status    string
	CreatedAt time.Time
}
