package commands

import (
	"context"
)

type SetAvailabilityCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewSetAvailabilityCommandHandler(uowFactory DeliveryUoWFactory) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the rider's availability. A rider holding an active order
// can only be busy.
func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetAvailabilityCommand) error {
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
	r, err := riders.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = r.SetAvailability(cmd.Availability()); err != nil {
		return err
	}

	if err = riders.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
