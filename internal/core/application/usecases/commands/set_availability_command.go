package commands

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

type SetAvailabilityCommand struct {
	riderID      kernel.UUID
	availability rider.Availability

	guard guard.ConstructorGuard
}

func NewSetAvailabilityCommand(riderID kernel.UUID, availability rider.Availability) (SetAvailabilityCommand, error) {
	if err := errors.Join(riderID.Validate(), availability.Validate()); err != nil {
		return SetAvailabilityCommand{}, err
	}

	return SetAvailabilityCommand{
		riderID:      riderID,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

func (c SetAvailabilityCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c SetAvailabilityCommand) Availability() rider.Availability {
	return c.availability
}
