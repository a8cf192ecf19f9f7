package services

import (
	"errors"
	"fmt"

	"quickcart/internal/core/domain/model/customer"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/pkg/errs"
)

// ProductLookup resolves a product referenced by a cart entry or line item.
type ProductLookup func(id kernel.UUID) (*product.Product, error)

// OrderLifecycle implements the transitions of an order from placement to
// a terminal status.
//
// Example usage:
//
//	lifecycle := NewOrderLifecycle()
//	o, err := lifecycle.Place(orderID, c, lookup)
//	...
//	err = lifecycle.Accept(o, r)
//	err = lifecycle.Advance(o, r, order.InProgress, lookup)
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// Place turns the customer's cart into a pending order priced at current
// product prices and empties the cart.
func (l OrderLifecycle) Place(id kernel.UUID, c *customer.Customer, lookup ProductLookup) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries := c.Cart()
	if len(entries) == 0 {
		return nil, errs.NewStateConflictError("cart is empty")
	}

	items := make([]order.LineItem, 0, len(entries))
	for _, entry := range entries {
		p, err := lookup(entry.ProductID())
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(p.ID(), p.Name(), p.Price(), entry.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(id, c.ID(), items)
	if err != nil {
		return nil, err
	}

	if _, err = c.Checkout(); err != nil {
		return nil, err
	}
	return o, nil
}

// Accept assigns a pending order to an available rider. The rider becomes busy.
func (l OrderLifecycle) Accept(o *order.Order, r *rider.Rider) error {
	if err := errors.Join(o.Validate(), r.Validate()); err != nil {
		return err
	}
	if !r.Availability().CanAcceptOrders() {
		return rider.ErrRiderIsNotAvailable
	}
	if o.Status() != order.Pending {
		return errs.NewStateConflictErrorWithCause(
			"order is not pending",
			fmt.Errorf("order %s is %s", o.ID(), o.Status()),
		)
	}

	if err := o.Accept(r.ID()); err != nil {
		return err
	}
	return r.TakeOrder(o.ID())
}

// Advance moves an order on behalf of its assigned rider. Delivery makes the
// rider available again. Cancellation frees the rider from the order and
// returns the reserved units of every line item to stock; the products whose
// stock changed are returned so the caller can persist them.
func (l OrderLifecycle) Advance(
	o *order.Order,
	r *rider.Rider,
	next order.Status,
	lookup ProductLookup,
) ([]*product.Product, error) {
	if err := errors.Join(o.Validate(), r.Validate()); err != nil {
		return nil, err
	}
	if err := o.CheckAdvance(r.ID(), next); err != nil {
		return nil, err
	}

	var restocked []*product.Product
	quantities := make(map[kernel.UUID]int)
	if next == order.Cancelled {
		for _, item := range o.Items() {
			if _, seen := quantities[item.ProductID()]; !seen {
				p, err := lookup(item.ProductID())
				if err != nil {
					return nil, err
				}
				restocked = append(restocked, p)
			}
			quantities[item.ProductID()] += item.Quantity()
		}
	}

	if err := o.Advance(r.ID(), next); err != nil {
		return nil, err
	}

	//nolint:exhaustive // only terminal statuses affect the rider
	switch next {
	case order.Delivered:
		r.CompleteOrder()
	case order.Cancelled:
		r.ReleaseOrder()
		for _, p := range restocked {
			if err := p.Release(quantities[p.ID()]); err != nil {
				return nil, err
			}
		}
	}

	return restocked, nil
}
