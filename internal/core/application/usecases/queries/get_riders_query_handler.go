package queries

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRidersQueryHandler lists riders by status.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider listings.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query, ordered oldest application first so approval
// queues are served fairly.
func (h GetRidersQueryHandler) Handle(
	ctx context.Context, query GetRidersQuery,
) ([]GetRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			district,
			status,
			created_at
		FROM riders
		WHERE status = ?
		ORDER BY created_at
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			response GetRidersQueryResponse
			id       uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.Phone,
			&response.District,
			&response.Status,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = riderID

		riders = append(riders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
