package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type GetPendingOrdersQueryHandler struct {
	orders ports.OrderReader
	riders ports.RiderReader
	users  ports.UserReader
}

func NewGetPendingOrdersQueryHandler(
	orders ports.OrderReader,
	riders ports.RiderReader,
	users ports.UserReader,
) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{orders: orders, riders: riders, users: users}
}

func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.riders.Get(ctx, query.RiderID()); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllInPendingStatus(ctx)
	if err != nil {
		return nil, err
	}
	return newNameResolver(h.users).orderViews(ctx, orders)
}
