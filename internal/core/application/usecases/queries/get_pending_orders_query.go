package queries

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery lists orders waiting for a rider. Every rider sees
// the same list regardless of availability.
type GetPendingOrdersQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery(riderID kernel.UUID) (GetPendingOrdersQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}
	return GetPendingOrdersQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

func (q GetPendingOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}
