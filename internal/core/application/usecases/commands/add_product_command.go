package commands

import (
	"errors"
	"strings"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
	"quickcart/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand asks to list a new product in the catalog. The caller
// chooses the product id.
//
// Example:
//
//	productID := kernel.NewUUID()
//	price, _ := kernel.MoneyFromFloat(10)
//	cmd, err := NewAddProductCommand(adminID, productID, "Widget", price, 5, "Gadgets")
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductCommand struct { //nolint:recvcheck //using for validation
	adminID   kernel.UUID
	productID kernel.UUID
	name      string
	price     kernel.Money
	stock     int
	category  string

	guard guard.ConstructorGuard
}

func NewAddProductCommand(
	adminID kernel.UUID,
	productID kernel.UUID,
	name string,
	price kernel.Money,
	stock int,
	category string,
) (AddProductCommand, error) {
	cmd := AddProductCommand{
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAdminID(adminID),
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddProductCommand) Name() string {
	return c.name
}

func (c AddProductCommand) Price() kernel.Money {
	return c.price
}

func (c AddProductCommand) Stock() int {
	return c.stock
}

func (c AddProductCommand) Category() string {
	return c.category
}

func (c *AddProductCommand) setAdminID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.adminID = id
	return nil
}

func (c *AddProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	c.stock = stock
	return nil
}
