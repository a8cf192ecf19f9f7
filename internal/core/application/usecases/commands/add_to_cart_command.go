package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand reserves quantity units of a product for a customer.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddToCartCommand(customerID, productID kernel.UUID, quantity int) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerID.Validate(),
		productID.Validate(),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}
	cmd.customerID = customerID
	cmd.productID = productID

	return cmd, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c AddToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	c.quantity = quantity
	return nil
}
