package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves an accepted order along on behalf of its
// rider. Front ends parse the status text with order.ParseStatus first.
type UpdateDeliveryStatusCommand struct {
	riderID kernel.UUID
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(riderID, orderID kernel.UUID, status order.Status) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		riderID: riderID,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateDeliveryStatusCommand) Status() order.Status {
	return c.status
}
