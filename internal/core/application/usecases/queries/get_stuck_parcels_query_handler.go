package queries

import (
	"context"
	"database/sql"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStuckParcelsQueryHandler lists overdue in-delivery parcels.
type GetStuckParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStuckParcelsQueryHandler creates a handler for the overdue listing.
func NewGetStuckParcelsQueryHandler(db *gorm.DB) GetStuckParcelsQueryHandler {
	return GetStuckParcelsQueryHandler{db: db}
}

// Handle executes the query, oldest parcel first.
func (h GetStuckParcelsQueryHandler) Handle(
	ctx context.Context, query GetStuckParcelsQuery,
) ([]GetStuckParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetStuckParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			delivery_status,
			rider_email,
			created_at
		FROM parcels
		WHERE delivery_status IN ('rider_assigned', 'in_transit')
		  AND created_at < ?
		ORDER BY created_at
	`, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response   GetStuckParcelsQueryResponse
			id         uuid.UUID
			riderEmail sql.NullString
		)

		if err = rows.Scan(
			&id,
			&response.TrackingCode,
			&response.DeliveryStatus,
			&riderEmail,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = parcelID

		if riderEmail.Valid {
			response.RiderEmail = &riderEmail.String
		}

		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
