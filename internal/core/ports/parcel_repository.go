// Package ports defines the contracts between the application core and
// infrastructure adapters: per-aggregate repositories, the unit of work
// that gives multi-aggregate commands a transaction boundary, and the
// payment-processor gateway.
package ports

import (
	"context"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// Returns errs.ErrObjectNotFound when the parcel does not exist.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	// Returns errs.ErrObjectNotFound when the parcel does not exist.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingCode retrieves a parcel by the code printed on its label.
	GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*parcel.Parcel, error)
}
