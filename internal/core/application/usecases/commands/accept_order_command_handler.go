package commands

import (
	"context"

	"quickcart/internal/core/domain/services"
)

// AcceptOrderCommandHandler lets an available rider take a pending order.
// Two riders racing for the same order are serialized by the unit of work;
// the second one sees the order accepted and fails.
type AcceptOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewAcceptOrderCommandHandler(uowFactory DeliveryUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	r, err := riders.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.lifecycle.Accept(o, r); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	if err = riders.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
