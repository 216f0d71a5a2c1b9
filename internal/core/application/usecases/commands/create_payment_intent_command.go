package commands

import (
	"errors"

	"zapshift/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand represents a request to open a payment
// intent with the external processor before the client confirms the
// charge.
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string

	guard guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand creates a command to open a payment intent.
func NewCreatePaymentIntentCommand(amount int64, currency string) (CreatePaymentIntentCommand, error) {
	intentCommand := CreatePaymentIntentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		intentCommand.setAmount(amount),
		intentCommand.setCurrency(currency),
	); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return intentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

// Amount returns the charge amount in the smallest currency unit.
func (c CreatePaymentIntentCommand) Amount() int64 {
	return c.amount
}

// Currency returns the charge currency code.
func (c CreatePaymentIntentCommand) Currency() string {
	return c.currency
}

func (c *CreatePaymentIntentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreatePaymentIntentCommand) setCurrency(currency string) error {
	if currency == "" {
		return ErrCurrencyIsRequired
	}

	c.currency = currency
	return nil
}
