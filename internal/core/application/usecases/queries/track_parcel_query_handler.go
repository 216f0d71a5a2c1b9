package queries

import (
	"context"
	"database/sql"
	"errors"

	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler serves public tracking lookups by tracking code.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the code
// is unknown.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context, query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	var (
		response  TrackParcelQueryResponse
		riderName sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_code,
			delivery_status,
			receiver_name,
			rider_name,
			created_at
		FROM parcels
		WHERE tracking_code = ?
	`, query.TrackingCode().String()).Row()

	err := row.Scan(
		&response.TrackingCode,
		&response.DeliveryStatus,
		&response.ReceiverName,
		&riderName,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingCode", query.TrackingCode().String(),
		)
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	if riderName.Valid {
		response.RiderName = &riderName.String
	}

	return response, nil
}
