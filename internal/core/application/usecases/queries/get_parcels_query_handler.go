package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelsQueryHandler lists a sender's parcels, newest first.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for sender parcel listings.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query. An unknown sender yields an empty slice, not
// an error.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context, query GetParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryParcels(
		h.db.WithContext(ctx),
		`SELECT `+parcelSelectColumns+` FROM parcels WHERE sender_email = ? ORDER BY created_at DESC`,
		query.SenderEmail(),
	)
}
