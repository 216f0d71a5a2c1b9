package commands

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserEmailIsRequired = errors.New("user email is required")
)

// RegisterUserCommand represents a sign-in. First sign-in creates the
// account, later ones refresh the last-login time.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email       string
	displayName string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user sign-in.
func NewRegisterUserCommand(email, displayName string) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		displayName: displayName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := userCommand.setEmail(email); err != nil {
		return RegisterUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the signing-in user's email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// DisplayName returns the name reported by the identity provider.
func (c RegisterUserCommand) DisplayName() string {
	return c.displayName
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrUserEmailIsRequired
	}

	c.email = email
	return nil
}
