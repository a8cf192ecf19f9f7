package commands

import (
	"context"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/services"
)

// UpdateDeliveryStatusCommandHandler applies a status transition. Delivered
// frees the rider; cancelled also puts the reserved stock back.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	riders := uow.RiderRepository()
	orders := uow.OrderRepository()
	products := uow.ProductRepository()

	r, err := riders.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	restocked, err := h.lifecycle.Advance(o, r, cmd.Status(), func(id kernel.UUID) (*product.Product, error) {
		return products.Get(ctx, id)
	})
	if err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	if err = riders.Update(ctx, r); err != nil {
		return err
	}

	for _, p := range restocked {
		if err = products.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
