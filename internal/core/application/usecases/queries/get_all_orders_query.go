package queries

import (
	"errors"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery is the admin's view of the whole ledger.
type GetAllOrdersQuery struct {
	adminID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery(adminID kernel.UUID) (GetAllOrdersQuery, error) {
	if err := adminID.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}
	return GetAllOrdersQuery{adminID: adminID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) AdminID() kernel.UUID {
	return q.adminID
}
