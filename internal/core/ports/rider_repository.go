package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	// Returns errs.ErrObjectNotFound when the rider does not exist.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by its unique identifier.
	// Returns errs.ErrObjectNotFound when the rider does not exist.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)
}
