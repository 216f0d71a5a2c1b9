package commands

import (
	"errors"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/guard"
)

var (
	ErrConfirmPaymentCommandIsNotConstructed = errors.New(
		"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
	)
	ErrPayerEmailIsRequired    = errors.New("payer email is required")
	ErrAmountIsInvalid         = errors.New("amount must be greater than 0")
	ErrCurrencyIsRequired      = errors.New("currency is required")
	ErrTransactionIDIsRequired = errors.New("transaction id is required")
)

// ConfirmPaymentCommand represents a request to record a completed payment
// for a parcel. The transaction ID comes from the payment processor and
// acts as the idempotency key.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	payerEmail    string
	amount        int64
	currency      string
	method        string
	transactionID string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to record a parcel payment.
// Validates that the parcel ID is valid, the payer and transaction are
// identified, and the amount is positive.
func NewConfirmPaymentCommand(
	parcelID kernel.UUID,
	payerEmail string,
	amount int64,
	currency string,
	method string,
	transactionID string,
) (ConfirmPaymentCommand, error) {
	paymentCommand := ConfirmPaymentCommand{
		method: method,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setParcelID(parcelID),
		paymentCommand.setPayerEmail(payerEmail),
		paymentCommand.setAmount(amount),
		paymentCommand.setCurrency(currency),
		paymentCommand.setTransactionID(transactionID),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being paid for.
func (c ConfirmPaymentCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// PayerEmail returns the email of the paying user.
func (c ConfirmPaymentCommand) PayerEmail() string {
	return c.payerEmail
}

// Amount returns the paid amount in the smallest currency unit.
func (c ConfirmPaymentCommand) Amount() int64 {
	return c.amount
}

// Currency returns the payment currency code.
func (c ConfirmPaymentCommand) Currency() string {
	return c.currency
}

// Method returns the payment method reported by the processor.
func (c ConfirmPaymentCommand) Method() string {
	return c.method
}

// TransactionID returns the processor transaction identifier.
func (c ConfirmPaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c *ConfirmPaymentCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *ConfirmPaymentCommand) setPayerEmail(payerEmail string) error {
	if payerEmail == "" {
		return ErrPayerEmailIsRequired
	}

	c.payerEmail = payerEmail
	return nil
}

func (c *ConfirmPaymentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *ConfirmPaymentCommand) setCurrency(currency string) error {
	if currency == "" {
		return ErrCurrencyIsRequired
	}

	c.currency = currency
	return nil
}

func (c *ConfirmPaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return ErrTransactionIDIsRequired
	}

	c.transactionID = transactionID
	return nil
}
