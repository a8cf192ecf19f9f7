package commands

import (
	"context"
)

// AddToCartCommandHandler moves stock from the catalog into a customer's
// cart. Stock is taken at this point, not at checkout.
type AddToCartCommandHandler struct {
	uowFactory ShoppingUoWFactory
}

func NewAddToCartCommandHandler(uowFactory ShoppingUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers := uow.CustomerRepository()
	products := uow.ProductRepository()

	c, err := customers.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	p, err := products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = c.AddToCart(p, cmd.Quantity()); err != nil {
		return err
	}

	if err = products.Update(ctx, p); err != nil {
		return err
	}

	if err = customers.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
