package queries

import (
	"context"
	"fmt"

	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/core/ports"
	"quickcart/internal/pkg/errs"
)

type GetAllOrdersQueryHandler struct {
	orders ports.OrderReader
	users  ports.UserReader
}

func NewGetAllOrdersQueryHandler(orders ports.OrderReader, users ports.UserReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders, users: users}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	admin, err := h.users.Get(ctx, query.AdminID())
	if err != nil {
		return nil, err
	}
	if admin.Role() != user.Admin {
		return nil, errs.NewAccessDeniedErrorWithCause("admin role required", fmt.Errorf("%s is a %s", admin.Name(), admin.Role()))
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return newNameResolver(h.users).orderViews(ctx, orders)
}
