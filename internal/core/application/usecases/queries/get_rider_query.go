package queries

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/guard"
)

var ErrGetRiderQueryIsNotConstructed = errors.New(
	"GetRiderQuery must be created via NewGetRiderQuery constructor",
)

type GetRiderQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRiderQuery(riderID kernel.UUID) (GetRiderQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderQuery{}, err
	}
	return GetRiderQuery{riderID: riderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRiderQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderQueryIsNotConstructed)
}

func (q GetRiderQuery) RiderID() kernel.UUID {
	return q.riderID
}
