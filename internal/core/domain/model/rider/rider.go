// Package rider provides the Rider aggregate: a user with the rider role,
// its availability and the single order it is currently delivering.
package rider

import (
	"errors"
	"fmt"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"
)

var (
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")
	ErrRiderIsNotAvailable   = errs.NewAccessDeniedError("rider must be available to accept orders")
)

type Rider struct {
	user          *user.User
	availability  Availability
	activeOrderID *kernel.UUID
}

// NewRider registers a rider. Riders start offline.
func NewRider(u *user.User) (*Rider, error) {
	return RestoreRider(u, Offline, nil)
}

func RestoreRider(u *user.User, availability Availability, activeOrderID *kernel.UUID) (*Rider, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.Role() != user.Rider {
		return nil, errs.NewAccessDeniedErrorWithCause("rider role required", fmt.Errorf("%s is a %s", u.Name(), u.Role()))
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}
	if activeOrderID != nil {
		if err := activeOrderID.Validate(); err != nil {
			return nil, err
		}
		id := *activeOrderID
		activeOrderID = &id
	}
	return &Rider{user: u, availability: availability, activeOrderID: activeOrderID}, nil
}

func (r *Rider) Validate() error {
	if r == nil || r.user == nil {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) ID() kernel.UUID {
	return r.user.ID()
}

func (r *Rider) User() *user.User {
	return r.user
}

func (r *Rider) Availability() Availability {
	return r.availability
}

// ActiveOrder returns the order being delivered, or nil.
func (r *Rider) ActiveOrder() *kernel.UUID {
	if r.activeOrderID == nil {
		return nil
	}
	id := *r.activeOrderID
	return &id
}

// SetAvailability changes availability on request. While an order is being
// delivered the rider stays busy.
func (r *Rider) SetAvailability(a Availability) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if r.activeOrderID != nil && a != Busy {
		return errs.NewStateConflictErrorWithCause(
			"rider has an active order",
			fmt.Errorf("order %s must be delivered or cancelled first", r.activeOrderID),
		)
	}
	r.availability = a
	return nil
}

// TakeOrder marks the rider busy with orderID. The rider must be available.
func (r *Rider) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !r.availability.CanAcceptOrders() {
		return ErrRiderIsNotAvailable
	}
	r.activeOrderID = &orderID
	r.availability = Busy
	return nil
}

// CompleteOrder is called on delivery: the rider becomes available again.
func (r *Rider) CompleteOrder() {
	r.activeOrderID = nil
	r.availability = Available
}

// ReleaseOrder is called on cancellation: the rider is freed from the order
// but stays busy until availability is changed explicitly.
func (r *Rider) ReleaseOrder() {
	r.activeOrderID = nil
}
