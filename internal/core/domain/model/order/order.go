package order

import (
	"errors"
	"fmt"
	"time"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrOrderHasNoItems       = errs.NewValueIsRequiredError("line items")
)

// Order is the ledger entry for one checkout.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	riderID    *kernel.UUID
	items      []LineItem
	status     Status
	total      kernel.Money
	createdAt  time.Time

	isConstructed bool
}

// NewOrder places a pending order. The total is computed here and never again.
func NewOrder(id kernel.UUID, customerID kernel.UUID, items []LineItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = kernel.ZeroMoney()
	for _, item := range o.items {
		o.total = o.total.Add(item.Subtotal())
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage, including its stored total.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	riderID *kernel.UUID,
	items []LineItem,
	status Status,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setStatus(status, riderID),
		total.Validate(),
	); err != nil {
		return nil, err
	}
	o.total = total

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Rider returns the assigned rider, or nil while pending.
func (o *Order) Rider() *kernel.UUID {
	if o.riderID == nil {
		return nil
	}
	id := *o.riderID
	return &id
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

func (o *Order) IsAssignedTo(riderID kernel.UUID) bool {
	return o.riderID != nil && o.riderID.IsEqual(riderID)
}

// Accept assigns riderID and moves the order from pending to accepted.
func (o *Order) Accept(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// CheckAdvance reports why riderID may not move the order to next, or nil.
func (o *Order) CheckAdvance(riderID kernel.UUID, next Status) error {
	if !o.IsAssignedTo(riderID) {
		return errs.NewAccessDeniedErrorWithCause(
			"rider is not assigned to the order",
			fmt.Errorf("order %s", o.id),
		)
	}
	_, err := o.status.Advance(next)
	return err
}

// Advance moves the order to next on behalf of its assigned rider.
func (o *Order) Advance(riderID kernel.UUID, next Status) error {
	if err := o.CheckAdvance(riderID, next); err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status, riderID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Pending && riderID != nil {
		return errs.NewValueIsInvalidErrorWithCause("rider", errors.New("pending orders have no rider"))
	}
	if status != Pending && riderID == nil {
		return errs.NewValueIsRequiredErrorWithCause("rider", fmt.Errorf("%s orders have a rider", status))
	}
	o.status = status
	if riderID != nil {
		id := *riderID
		o.riderID = &id
	}
	return nil
}
