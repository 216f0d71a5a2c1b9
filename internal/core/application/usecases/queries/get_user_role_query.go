package queries

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var (
	ErrGetUserRoleQueryIsNotConstructed = errors.New(
		"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
	)
	ErrUserEmailIsRequired = errors.New("user email is required")
)

// GetUserRoleQuery resolves the role of the account behind an email. The
// admin middleware depends on this lookup, so an unknown email is an
// error, never a default role.
type GetUserRoleQuery struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewGetUserRoleQuery creates a role lookup query.
func NewGetUserRoleQuery(email string) (GetUserRoleQuery, error) {
	query := GetUserRoleQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEmail(email); err != nil {
		return GetUserRoleQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

// Email returns the email whose role is resolved.
func (q GetUserRoleQuery) Email() string {
	return q.email
}

func (q *GetUserRoleQuery) setEmail(email string) error {
	if email == "" {
		return ErrUserEmailIsRequired
	}

	q.email = email
	return nil
}
