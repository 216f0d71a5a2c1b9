package parcel

import (
	"errors"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// RiderAssignment captures the rider currently responsible for a parcel.
// The parcel keeps the rider's email and name denormalized so the tracking
// surface never needs a second lookup.
type RiderAssignment struct {
	RiderID kernel.UUID
	Email   string
	Name    string
}

// Parcel is the aggregate root for a shipment, tracked from creation
// through delivery, payment, and cash-out.
//
// Parcel maintains these invariants:
//   - delivery status changes follow the DeliveryStatus transition table
//   - a rider can only be assigned once the parcel is paid
//   - cash-out requires a delivered parcel and happens at most once
//   - it can only be created through NewParcel or RestoreParcel
type Parcel struct {
	id            kernel.UUID
	trackingCode  kernel.TrackingCode
	senderEmail   string
	receiverName  string
	receiverAddr  string
	weightGrams   int
	costAmount    int64
	paymentStatus PaymentStatus
	delivery      DeliveryStatus
	rider         *RiderAssignment
	cashout       CashoutStatus
	cashoutAmount int64
	cashoutAt     *time.Time
	createdAt     time.Time

	isConstructed bool
}

// NewParcel creates a parcel in the unpaid, not-collected state with a
// generated tracking code and the given creation time.
func NewParcel(
	id kernel.UUID,
	senderEmail, receiverName, receiverAddr string,
	weightGrams int,
	costAmount int64,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		paymentStatus: Unpaid,
		delivery:      NotCollected,
		cashout:       CashoutNone,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSenderEmail(senderEmail),
		p.setReceiver(receiverName, receiverAddr),
		p.setWeight(weightGrams),
		p.setCost(costAmount),
	); err != nil {
		return nil, err
	}

	p.trackingCode = kernel.NewTrackingCode(p.createdAt)
	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence without re-running
// creation-time side effects. All invariants are still validated.
func RestoreParcel(
	id kernel.UUID,
	trackingCode kernel.TrackingCode,
	senderEmail, receiverName, receiverAddr string,
	weightGrams int,
	costAmount int64,
	paymentStatus PaymentStatus,
	delivery DeliveryStatus,
	rider *RiderAssignment,
	cashout CashoutStatus,
	cashoutAmount int64,
	cashoutAt *time.Time,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		trackingCode:  trackingCode,
		paymentStatus: paymentStatus,
		delivery:      delivery,
		rider:         rider,
		cashout:       cashout,
		cashoutAmount: cashoutAmount,
		cashoutAt:     cashoutAt,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		trackingCode.Validate(),
		p.setSenderEmail(senderEmail),
		p.setReceiver(receiverName, receiverAddr),
		p.setWeight(weightGrams),
		p.setCost(costAmount),
		paymentStatus.Validate(),
		delivery.Validate(),
		cashout.Validate(),
	); err != nil {
		return nil, err
	}

	if rider != nil {
		if err := rider.RiderID.Validate(); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate ensures the parcel was constructed through a factory function.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingCode returns the label code used by the public tracking surface.
func (p *Parcel) TrackingCode() kernel.TrackingCode { return p.trackingCode }

// SenderEmail returns the sender's email address.
func (p *Parcel) SenderEmail() string { return p.senderEmail }

// ReceiverName returns the receiver's display name.
func (p *Parcel) ReceiverName() string { return p.receiverName }

// ReceiverAddress returns the delivery destination.
func (p *Parcel) ReceiverAddress() string { return p.receiverAddr }

// WeightGrams returns the parcel weight in grams.
func (p *Parcel) WeightGrams() int { return p.weightGrams }

// CostAmount returns the delivery cost in the smallest currency unit.
func (p *Parcel) CostAmount() int64 { return p.costAmount }

// PaymentStatus returns the current payment status.
func (p *Parcel) PaymentStatus() PaymentStatus { return p.paymentStatus }

// DeliveryStatus returns the current delivery status.
func (p *Parcel) DeliveryStatus() DeliveryStatus { return p.delivery }

// Rider returns the current rider assignment, or nil when unassigned.
func (p *Parcel) Rider() *RiderAssignment { return p.rider }

// CashoutStatus returns the current cash-out status.
func (p *Parcel) CashoutStatus() CashoutStatus { return p.cashout }

// CashoutAmount returns the settled fee amount; zero before cash-out.
func (p *Parcel) CashoutAmount() int64 { return p.cashoutAmount }

// CashoutAt returns the settlement time, or nil before cash-out.
func (p *Parcel) CashoutAt() *time.Time { return p.cashoutAt }

// CreatedAt returns the server-assigned creation time.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// MarkPaid transitions the parcel to paid. Returns a ConflictError when the
// parcel is already paid; the idempotent retry on a known transaction id is
// the command handler's decision, made where the payment record is visible.
func (p *Parcel) MarkPaid() error {
	next, err := p.paymentStatus.MarkPaid()
	if err != nil {
		return err
	}
	p.paymentStatus = next
	return nil
}

// AssignRider places the parcel with a rider and moves delivery status to
// RiderAssigned. The parcel must be paid first, and the delivery status
// must allow the transition.
func (p *Parcel) AssignRider(riderID kernel.UUID, riderEmail, riderName string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(riderEmail) == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}
	if p.paymentStatus != Paid {
		return errs.NewConflictError("paymentStatus", p.paymentStatus.String(), Paid.String())
	}

	next, err := p.delivery.TransitionTo(RiderAssigned)
	if err != nil {
		return err
	}

	p.delivery = next
	p.rider = &RiderAssignment{RiderID: riderID, Email: riderEmail, Name: riderName}
	return nil
}

// ChangeDeliveryStatus moves the parcel to target per the transition table.
// Setting the current status again is a no-op success and reports
// changed=false, so retried requests never surface spurious conflicts.
func (p *Parcel) ChangeDeliveryStatus(target DeliveryStatus) (changed bool, err error) {
	if err = target.Validate(); err != nil {
		return false, err
	}
	if target == p.delivery {
		return false, nil
	}

	next, err := p.delivery.TransitionTo(target)
	if err != nil {
		return false, err
	}
	p.delivery = next
	return true, nil
}

// CashOut settles the rider's delivery fee. The parcel must be in a
// delivered state and not already cashed out.
func (p *Parcel) CashOut(amount int64, at time.Time) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("cashoutAmount", amount, 1, int64(1)<<31)
	}
	if p.cashout == CashedOut {
		return errs.NewConflictError("cashoutStatus", p.cashout.String(), CashedOut.String())
	}
	if !p.delivery.IsDelivered() {
		return errs.NewConflictError("deliveryStatus", p.delivery.String(), "cashed_out")
	}

	at = at.UTC()
	p.cashout = CashedOut
	p.cashoutAmount = amount
	p.cashoutAt = &at
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSenderEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("senderEmail")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("senderEmail")
	}
	p.senderEmail = email
	return nil
}

func (p *Parcel) setReceiver(name, addr string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("receiverName")
	}
	if strings.TrimSpace(addr) == "" {
		return errs.NewValueIsRequiredError("receiverAddress")
	}
	p.receiverName = name
	p.receiverAddr = addr
	return nil
}

func (p *Parcel) setWeight(weightGrams int) error {
	if weightGrams <= 0 {
		return errs.NewValueIsOutOfRangeError("weightGrams", weightGrams, 1, 50_000)
	}
	if weightGrams > 50_000 {
		return errs.NewValueIsOutOfRangeError("weightGrams", weightGrams, 1, 50_000)
	}
	p.weightGrams = weightGrams
	return nil
}

func (p *Parcel) setCost(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("costAmount", amount, 1, int64(1)<<31)
	}
	p.costAmount = amount
	return nil
}
