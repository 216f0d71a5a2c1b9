package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// CashoutStatus tracks settlement of the rider's delivery fee for a parcel.
// The only transition is CashoutNone -> CashedOut, and it is guarded by the
// parcel being in a delivered state.
type CashoutStatus int

const (
	// CashoutUnknown catches uninitialized CashoutStatus values.
	CashoutUnknown CashoutStatus = iota

	// CashoutNone means the delivery fee has not been settled.
	CashoutNone

	// CashedOut means the fee was settled. Final state; a second cash-out
	// is a conflict.
	CashedOut
)

func cashoutStatusStrings() map[CashoutStatus]string {
	return map[CashoutStatus]string{
		CashoutNone: "none",
		CashedOut:   "cashed_out",
	}
}

// CashoutStatusFromString parses the wire representation of a cashout status.
func CashoutStatusFromString(s string) (CashoutStatus, error) {
	for status, str := range cashoutStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return CashoutUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cashoutStatus", fmt.Errorf("%q is not a recognized cashout status", s))
}

// String returns the wire representation. Implements fmt.Stringer.
func (s CashoutStatus) String() string {
	if str, ok := cashoutStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the enumerated values.
func (s CashoutStatus) Validate() error {
	if _, ok := cashoutStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cashoutStatus", fmt.Errorf("%d is not a valid cashout status", s))
	}
	return nil
}
