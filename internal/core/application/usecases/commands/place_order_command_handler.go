package commands

import (
	"context"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/services"
)

// PlaceOrderCommandHandler checks a customer out. The order total is fixed
// from current catalog prices and the cart is cleared in the same commit.
type PlaceOrderCommandHandler struct {
	uowFactory ShoppingUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewPlaceOrderCommandHandler(uowFactory ShoppingUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	o, err := h.lifecycle.Place(cmd.OrderID(), c, func(id kernel.UUID) (*product.Product, error) {
		return products.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = customers.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
