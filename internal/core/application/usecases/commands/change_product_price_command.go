package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand sets a new unit price. Orders already placed
// keep the price they were placed at.
type ChangeProductPriceCommand struct {
	adminID   kernel.UUID
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(adminID, productID kernel.UUID, price kernel.Money) (ChangeProductPriceCommand, error) {
	if err := errors.Join(
		adminID.Validate(),
		productID.Validate(),
		price.Validate(),
	); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return ChangeProductPriceCommand{
		adminID:   adminID,
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}
