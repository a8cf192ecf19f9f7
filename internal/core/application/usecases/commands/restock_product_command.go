package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand adds quantity units to a product's stock.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	adminID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewRestockProductCommand(adminID, productID kernel.UUID, quantity int) (RestockProductCommand, error) {
	cmd := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adminID.Validate(),
		productID.Validate(),
		cmd.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}
	cmd.adminID = adminID
	cmd.productID = productID

	return cmd, nil
}

func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

func (c RestockProductCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	c.quantity = quantity
	return nil
}
