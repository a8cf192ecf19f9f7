package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type GetOrderQueryHandler struct {
	orders ports.OrderReader
	users  ports.UserReader
}

func NewGetOrderQueryHandler(orders ports.OrderReader, users ports.UserReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, users: users}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return newNameResolver(h.users).orderView(ctx, o)
}
