package queries

import (
	"context"

	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a parcel read model by ID.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for single-parcel retrieval.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no parcel
// matches the identifier.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context, query GetParcelQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	parcels, err := queryParcels(
		h.db.WithContext(ctx),
		`SELECT `+parcelSelectColumns+` FROM parcels WHERE id = ?`,
		query.ParcelID().Bytes(),
	)
	if err != nil {
		return ParcelResponse{}, err
	}
	if len(parcels) == 0 {
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelID", query.ParcelID())
	}

	return parcels[0], nil
}
