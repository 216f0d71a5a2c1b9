// Package user contains the User aggregate. Users are created on first
// sign-in and carry the role that gates admin-only operations.
package user

import (
	"errors"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the aggregate root for an account. Email is the unique key the
// rest of the system links on.
type User struct {
	id          kernel.UUID
	email       string
	displayName string
	role        Role
	createdAt   time.Time
	lastLoginAt time.Time

	isConstructed bool
}

// NewUser creates an account on first sign-in with the default user role.
func NewUser(id kernel.UUID, email, displayName string, signedInAt time.Time) (*User, error) {
	u := &User{
		role:          RoleUser,
		createdAt:     signedInAt.UTC(),
		lastLoginAt:   signedInAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	u.displayName = strings.TrimSpace(displayName)
	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, displayName string, role Role, createdAt, lastLoginAt time.Time) (*User, error) {
	u := &User{
		displayName:   displayName,
		role:          role,
		createdAt:     createdAt.UTC(),
		lastLoginAt:   lastLoginAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was constructed through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the unique email key.
func (u *User) Email() string { return u.email }

// DisplayName returns the name shown in the UI; may be empty.
func (u *User) DisplayName() string { return u.displayName }

// Role returns the user's current role.
func (u *User) Role() Role { return u.role }

// CreatedAt returns the first sign-in time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// LastLoginAt returns the most recent sign-in time.
func (u *User) LastLoginAt() time.Time { return u.lastLoginAt }

// ChangeRole sets the user's role. Any enumerated role is reachable from
// any other; authorization to do so is the caller's concern.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// RecordLogin updates the last-login timestamp and, when provided, the
// display name the identity provider reported.
func (u *User) RecordLogin(displayName string, at time.Time) {
	if name := strings.TrimSpace(displayName); name != "" {
		u.displayName = name
	}
	u.lastLoginAt = at.UTC()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}
