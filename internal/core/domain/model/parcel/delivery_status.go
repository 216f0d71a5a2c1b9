package parcel

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// DeliveryStatus represents the parcel's position in its fulfillment
// lifecycle. It implements a state machine with an explicit transition
// table so that no write path can record a status the business does not
// recognize.
//
// State transitions:
//
//	NotCollected ──> RiderAssigned ──> InTransit ──┬──> Delivered
//	                                               └──> ServiceCenterDelivered
//
// Delivered and ServiceCenterDelivered are final states.
type DeliveryStatus int

const (
	// DeliveryUnknown catches uninitialized DeliveryStatus values.
	DeliveryUnknown DeliveryStatus = iota

	// NotCollected is the initial status of every parcel.
	NotCollected

	// RiderAssigned indicates a rider has been assigned but has not yet
	// picked the parcel up.
	RiderAssigned

	// InTransit indicates the parcel is on its way to the receiver.
	InTransit

	// Delivered indicates the parcel reached the receiver. Final state.
	Delivered

	// ServiceCenterDelivered indicates the parcel was dropped at a service
	// center for pickup instead of the receiver's address. Final state.
	ServiceCenterDelivered
)

func deliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		NotCollected:           "not_collected",
		RiderAssigned:          "rider_assigned",
		InTransit:              "in_transit",
		Delivered:              "delivered",
		ServiceCenterDelivered: "service_center_delivered",
	}
}

// deliveryTransitions is the authoritative transition table. A status not
// present as a key is final.
func deliveryTransitions() map[DeliveryStatus][]DeliveryStatus {
	return map[DeliveryStatus][]DeliveryStatus{
		NotCollected:  {RiderAssigned},
		RiderAssigned: {InTransit},
		InTransit:     {Delivered, ServiceCenterDelivered},
	}
}

// DeliveryStatusFromString parses the wire representation of a status.
// Unknown values are a validation error, not a free-text write.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range deliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus", fmt.Errorf("%q is not a recognized delivery status", s))
}

// String returns the snake_case wire representation, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s DeliveryStatus) String() string {
	if str, ok := deliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the enumerated values.
func (s DeliveryStatus) Validate() error {
	if _, ok := deliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// IsFinal reports whether no further transitions are allowed.
func (s DeliveryStatus) IsFinal() bool {
	_, ok := deliveryTransitions()[s]
	return !ok && s.Validate() == nil
}

// IsDelivered reports whether the parcel has reached either terminal
// delivered state. Cash-out is only allowed from these states.
func (s DeliveryStatus) IsDelivered() bool {
	return s == Delivered || s == ServiceCenterDelivered
}

// CanTransitionTo reports whether the transition table allows moving to
// target. A transition to the current status is not in the table; callers
// treat it as a no-op success at the aggregate level.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the transition table allows it and a
// ConflictError when it does not.
func (s DeliveryStatus) TransitionTo(target DeliveryStatus) (DeliveryStatus, error) {
	if err := target.Validate(); err != nil {
		return DeliveryUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return DeliveryUnknown, errs.NewConflictError("deliveryStatus", s.String(), target.String())
	}
	return target, nil
}
