package queries

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery retrieves the public tracking view of a parcel by its
// tracking code. No authentication context is required, so the response
// omits payment and cashout details.
type TrackParcelQuery struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking query for the given code.
func NewTrackParcelQuery(trackingCode kernel.TrackingCode) (TrackParcelQuery, error) {
	query := TrackParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingCode(trackingCode); err != nil {
		return TrackParcelQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingCode returns the code being tracked.
func (q TrackParcelQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

func (q *TrackParcelQuery) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	q.trackingCode = trackingCode
	return nil
}

// TrackParcelQueryResponse is the public tracking read model.
type TrackParcelQueryResponse struct {
	TrackingCode   string
	DeliveryStatus string
	ReceiverName   string
	RiderName      *string
	CreatedAt      time.Time
}
