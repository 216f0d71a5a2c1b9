// Package payment contains the Payment aggregate: an immutable record of a
// confirmed charge against a parcel. Records are appended once and never
// updated; the processor's transaction id is the idempotency key.
package payment

import (
	"errors"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is an immutable record of one confirmed payment.
type Payment struct {
	id            kernel.UUID
	parcelID      kernel.UUID
	payerEmail    string
	amount        int64
	currency      string
	method        string
	transactionID string
	createdAt     time.Time

	isConstructed bool
}

// NewPayment creates a payment record with a server-assigned timestamp.
func NewPayment(
	id, parcelID kernel.UUID,
	payerEmail string,
	amount int64,
	currency, method, transactionID string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		method:        strings.TrimSpace(method),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setIDs(id, parcelID),
		p.setPayerEmail(payerEmail),
		p.setAmount(amount),
		p.setCurrency(currency),
		p.setTransactionID(transactionID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(
	id, parcelID kernel.UUID,
	payerEmail string,
	amount int64,
	currency, method, transactionID string,
	createdAt time.Time,
) (*Payment, error) {
	return NewPayment(id, parcelID, payerEmail, amount, currency, method, transactionID, createdAt)
}

// Validate ensures the payment was constructed through a factory function.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// ParcelID returns the parcel the payment belongs to.
func (p *Payment) ParcelID() kernel.UUID { return p.parcelID }

// PayerEmail returns the paying user's email.
func (p *Payment) PayerEmail() string { return p.payerEmail }

// Amount returns the charged amount in the smallest currency unit.
func (p *Payment) Amount() int64 { return p.amount }

// Currency returns the lower-case ISO currency code.
func (p *Payment) Currency() string { return p.currency }

// Method returns the payment method the processor reported; may be empty.
func (p *Payment) Method() string { return p.method }

// TransactionID returns the processor's transaction id, unique per charge.
func (p *Payment) TransactionID() string { return p.transactionID }

// CreatedAt returns the server-assigned confirmation time.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

func (p *Payment) setIDs(id, parcelID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	p.id = id
	p.parcelID = parcelID
	return nil
}

func (p *Payment) setPayerEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("payerEmail")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("payerEmail")
	}
	p.payerEmail = email
	return nil
}

func (p *Payment) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int64(1)<<31)
	}
	p.amount = amount
	return nil
}

func (p *Payment) setCurrency(currency string) error {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return errs.NewValueIsInvalidError("currency")
	}
	p.currency = currency
	return nil
}

func (p *Payment) setTransactionID(transactionID string) error {
	if strings.TrimSpace(transactionID) == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	p.transactionID = transactionID
	return nil
}
