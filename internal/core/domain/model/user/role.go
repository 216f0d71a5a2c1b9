package user

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// Role determines what a caller may do through the HTTP surface.
// Roles are stored on the user record and resolved from the database on
// every protected request; tokens never carry them.
type Role int

const (
	// RoleUnknown catches uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is the default role assigned on first sign-in.
	RoleUser

	// RoleAdmin may approve riders, assign parcels, and mutate roles.
	RoleAdmin

	// RoleRider is granted automatically when a rider application linked
	// to the user's email is activated.
	RoleRider
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUser:  "user",
		RoleAdmin: "admin",
		RoleRider: "rider",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range roleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a recognized role", s))
}

// String returns the wire representation. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := roleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the role is one of the enumerated values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsAdmin reports whether the role grants admin rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
