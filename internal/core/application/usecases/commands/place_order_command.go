package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns a customer's cart into a pending order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, _ := NewPlaceOrderCommand(customerID, orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	// the cart is empty and the order waits for a rider
type PlaceOrderCommand struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(customerID, orderID kernel.UUID) (PlaceOrderCommand, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
