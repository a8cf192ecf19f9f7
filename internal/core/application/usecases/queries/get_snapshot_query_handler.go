package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type GetSnapshotQueryHandler struct {
	products ports.ProductReader
	orders   ports.OrderReader
	users    ports.UserReader
}

func NewGetSnapshotQueryHandler(
	products ports.ProductReader,
	orders ports.OrderReader,
	users ports.UserReader,
) GetSnapshotQueryHandler {
	return GetSnapshotQueryHandler{products: products, orders: orders, users: users}
}

func (h GetSnapshotQueryHandler) Handle(ctx context.Context, query GetSnapshotQuery) (ports.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return ports.Snapshot{}, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, err
	}

	views, err := newNameResolver(h.users).orderViews(ctx, orders)
	if err != nil {
		return ports.Snapshot{}, err
	}

	snapshot := ports.Snapshot{
		Products: make([]ports.ProductSnapshot, 0, len(products)),
		Orders:   make([]ports.OrderSnapshot, 0, len(views)),
	}
	for _, p := range products {
		snapshot.Products = append(snapshot.Products, ports.ProductSnapshot{
			ID:       p.ID(),
			Name:     p.Name(),
			Price:    p.Price(),
			Stock:    p.Stock(),
			Category: p.Category(),
		})
	}
	for _, view := range views {
		items := make([]ports.OrderItemSnapshot, 0, len(view.Items))
		for _, item := range view.Items {
			items = append(items, ports.OrderItemSnapshot{Name: item.Name, Quantity: item.Quantity})
		}
		snapshot.Orders = append(snapshot.Orders, ports.OrderSnapshot{
			ID:        view.ID,
			Customer:  view.CustomerName,
			Rider:     view.RiderName,
			Items:     items,
			Status:    view.Status.String(),
			Total:     view.Total,
			CreatedAt: view.CreatedAt,
		})
	}
	return snapshot, nil
}
