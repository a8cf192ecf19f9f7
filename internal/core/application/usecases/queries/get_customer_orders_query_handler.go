package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type GetCustomerOrdersQueryHandler struct {
	orders    ports.OrderReader
	customers ports.CustomerReader
	users     ports.UserReader
}

func NewGetCustomerOrdersQueryHandler(
	orders ports.OrderReader,
	customers ports.CustomerReader,
	users ports.UserReader,
) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orders: orders, customers: customers, users: users}
}

func (h GetCustomerOrdersQueryHandler) Handle(ctx context.Context, query GetCustomerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.customers.Get(ctx, query.CustomerID()); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAllByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	return newNameResolver(h.users).orderViews(ctx, orders)
}
