package queries

import (
	"context"

	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestParcelQueryHandler retrieves the newest parcel, optionally
// restricted to one sender.
type GetLatestParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestParcelQueryHandler creates a handler for latest-parcel
// lookups.
func NewGetLatestParcelQueryHandler(db *gorm.DB) GetLatestParcelQueryHandler {
	return GetLatestParcelQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when nothing
// matches.
func (h GetLatestParcelQueryHandler) Handle(
	ctx context.Context, query GetLatestParcelQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	sql := `SELECT ` + parcelSelectColumns + ` FROM parcels`
	args := make([]any, 0, 1)
	if query.SenderEmail() != "" {
		sql += ` WHERE sender_email = ?`
		args = append(args, query.SenderEmail())
	}
	sql += ` ORDER BY created_at DESC LIMIT 1`

	parcels, err := queryParcels(h.db.WithContext(ctx), sql, args...)
	if err != nil {
		return ParcelResponse{}, err
	}
	if len(parcels) == 0 {
		return ParcelResponse{}, errs.NewObjectNotFoundError("senderEmail", query.SenderEmail())
	}

	return parcels[0], nil
}
