package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// PaymentStatus tracks whether the sender has paid for the parcel.
// The only transition is Unpaid -> Paid; payment records themselves live
// in the payment aggregate.
type PaymentStatus int

const (
	// PaymentUnknown catches uninitialized PaymentStatus values.
	PaymentUnknown PaymentStatus = iota

	// Unpaid is the initial status of every parcel.
	Unpaid

	// Paid indicates a confirmed payment exists for the parcel.
	Paid
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unpaid: "unpaid",
		Paid:   "paid",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range paymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a recognized payment status", s))
}

// String returns the wire representation. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the enumerated values.
func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// MarkPaid transitions Unpaid -> Paid. Marking an already paid parcel is a
// conflict; the idempotent retry path is handled one level up where the
// transaction id is known.
func (s PaymentStatus) MarkPaid() (PaymentStatus, error) {
	if s != Unpaid {
		return PaymentUnknown, errs.NewConflictError("paymentStatus", s.String(), Paid.String())
	}
	return Paid, nil
}
