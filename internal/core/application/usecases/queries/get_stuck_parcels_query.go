package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

var ErrGetStuckParcelsQueryIsNotConstructed = errors.New(
	"GetStuckParcelsQuery must be created via NewGetStuckParcelsQuery constructor",
)

// GetStuckParcelsQuery lists parcels that have been sitting with a rider
// (assigned or in transit) since before the cutoff. Age is measured from
// parcel creation; per-transition timestamps are not tracked.
type GetStuckParcelsQuery struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStuckParcelsQuery creates a query for parcels created before cutoff.
func NewGetStuckParcelsQuery(cutoff time.Time) (GetStuckParcelsQuery, error) {
	query := GetStuckParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCutoff(cutoff); err != nil {
		return GetStuckParcelsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStuckParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStuckParcelsQueryIsNotConstructed)
}

// Cutoff returns the creation-time threshold.
func (q GetStuckParcelsQuery) Cutoff() time.Time {
	return q.cutoff
}

func (q *GetStuckParcelsQuery) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	q.cutoff = cutoff
	return nil
}

// GetStuckParcelsQueryResponse represents one parcel overdue in delivery.
type GetStuckParcelsQueryResponse struct {
	ID             kernel.UUID
	TrackingCode   string
	DeliveryStatus string
	RiderEmail     *string
	CreatedAt      time.Time
}
