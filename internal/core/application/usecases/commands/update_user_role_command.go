package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

// UpdateUserRoleCommand represents an admin request to change a user's
// role.
type UpdateUserRoleCommand struct { //nolint:recvcheck //using for validation
	email string
	role  user.Role

	guard guard.ConstructorGuard
}

// NewUpdateUserRoleCommand creates a command to change a user's role.
func NewUpdateUserRoleCommand(email string, role user.Role) (UpdateUserRoleCommand, error) {
	roleCommand := UpdateUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setEmail(email),
		roleCommand.setRole(role),
	); err != nil {
		return UpdateUserRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}

// Email returns the email of the user whose role changes.
func (c UpdateUserRoleCommand) Email() string {
	return c.email
}

// Role returns the target role.
func (c UpdateUserRoleCommand) Role() user.Role {
	return c.role
}

func (c *UpdateUserRoleCommand) setEmail(email string) error {
	if email == "" {
		return ErrUserEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *UpdateUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
