package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand assigns a pending order to the rider issuing it.
type AcceptOrderCommand struct {
	riderID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(riderID, orderID kernel.UUID) (AcceptOrderCommand, error) {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		riderID: riderID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
