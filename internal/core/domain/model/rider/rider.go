// Package rider contains the Rider aggregate: a delivery agent that moves
// through an approval lifecycle and is assignable to parcels while active.
package rider

import (
	"errors"
	"strings"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not
// created through NewRider or RestoreRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")

// Rider is the aggregate root for a delivery agent.
//
// Invariants:
//   - status changes follow the Status transition table
//   - email is required; it links the rider to a user account when the
//     rider is activated
//   - can only be created through NewRider or RestoreRider
type Rider struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	district  string
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewRider creates a rider application in Pending status.
func NewRider(id kernel.UUID, name, email, phone, district string, createdAt time.Time) (*Rider, error) {
	r := &Rider{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setContact(phone, district),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a rider from persistence.
func RestoreRider(id kernel.UUID, name, email, phone, district string, status Status, createdAt time.Time) (*Rider, error) {
	r := &Rider{
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
		r.setContact(phone, district),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the rider was constructed through a factory function.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// IsEqual compares riders by identifier.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID { return r.id }

// Name returns the rider's display name.
func (r *Rider) Name() string { return r.name }

// Email returns the rider's email; it keys the linked user account.
func (r *Rider) Email() string { return r.email }

// Phone returns the rider's contact number.
func (r *Rider) Phone() string { return r.phone }

// District returns the rider's operating district.
func (r *Rider) District() string { return r.district }

// Status returns the rider's current status.
func (r *Rider) Status() Status { return r.status }

// CreatedAt returns the application time.
func (r *Rider) CreatedAt() time.Time { return r.createdAt }

// ChangeStatus moves the rider to target per the transition table.
// Setting the current status again is a no-op success.
func (r *Rider) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == r.status {
		return nil
	}

	next, err := r.status.TransitionTo(target)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// MarkBusy records that the rider took an assignment. Only an active rider
// can be assigned; anything else is a conflict surfaced to the caller.
func (r *Rider) MarkBusy() error {
	if r.status != Active {
		return errs.NewConflictError("riderStatus", r.status.String(), Busy.String())
	}
	r.status = Busy
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("riderName")
	}
	r.name = name
	return nil
}

func (r *Rider) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("riderEmail")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("riderEmail")
	}
	r.email = email
	return nil
}

func (r *Rider) setContact(phone, district string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("riderPhone")
	}
	r.phone = phone
	r.district = district
	return nil
}
