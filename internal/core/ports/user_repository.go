package ports

import (
	"context"

	"zapshift/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Email is the lookup key everywhere: tokens carry emails, and the rider
// activation side effect links rider and user records by email.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	// Returns errs.ErrObjectNotFound when the user does not exist.
	Update(ctx context.Context, aggregate *user.User) error

	// GetByEmail retrieves a user by the unique email key.
	// Returns errs.ErrObjectNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
