package rider

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// Status represents a rider's position in the onboarding and work
// lifecycle.
//
// State transitions:
//
//	Pending ──┬──> Active <──> Busy
//	          └──> Rejected
//
// Rejected is a final state. Busy -> Active is an explicit admin action;
// nothing releases a rider automatically when a delivery completes.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status; the rider applied but is not approved.
	Pending

	// Active means the rider is approved and available for assignment.
	Active

	// Busy means the rider is currently assigned to a parcel.
	Busy

	// Rejected means the application was declined. Final state.
	Rejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Pending:  "pending",
		Active:   "active",
		Busy:     "busy",
		Rejected: "rejected",
	}
}

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending: {Active, Rejected},
		Active:  {Busy},
		Busy:    {Active},
	}
}

// StatusFromString parses the wire representation of a rider status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"riderStatus", fmt.Errorf("%q is not a recognized rider status", s))
}

// String returns the wire representation. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the enumerated values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"riderStatus", fmt.Errorf("%d is not a valid rider status", s))
	}
	return nil
}

// TransitionTo returns target when the transition table allows it and a
// ConflictError when it does not.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}
	return StatusUnknown, errs.NewConflictError("riderStatus", s.String(), target.String())
}
