// Package queries contains read operations over committed state. Handlers
// depend on the read-only ports and return plain read models.
package queries

import (
	"context"
	"errors"
	"time"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/ports"
	"quickcart/internal/pkg/errs"
)

// UnassignedRider names the rider of an order nobody accepted yet.
const UnassignedRider = "Unassigned"

type ProductView struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	Stock    int
	Category string
}

type LineItemView struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
}

// OrderView is an order with its customer and rider resolved to display
// names.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	RiderID      *kernel.UUID
	RiderName    string
	Items        []LineItemView
	Status       order.Status
	Total        kernel.Money
	CreatedAt    time.Time
}

type CartEntryView struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
}

type RiderView struct {
	ID            kernel.UUID
	Name          string
	Availability  rider.Availability
	ActiveOrderID *kernel.UUID
}

func newProductView(p *product.Product) ProductView {
	return ProductView{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Stock:    p.Stock(),
		Category: p.Category(),
	}
}

func newProductViews(products []*product.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}

// nameResolver caches display names for one query.
type nameResolver struct {
	users ports.UserReader
	names map[kernel.UUID]string
}

func newNameResolver(users ports.UserReader) *nameResolver {
	return &nameResolver{users: users, names: make(map[kernel.UUID]string)}
}

// name returns the display name of id. Users missing from the directory are
// shown by id.
func (r *nameResolver) name(ctx context.Context, id kernel.UUID) (string, error) {
	if name, ok := r.names[id]; ok {
		return name, nil
	}
	u, err := r.users.Get(ctx, id)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		r.names[id] = id.String()
	case err != nil:
		return "", err
	default:
		r.names[id] = u.Name()
	}
	return r.names[id], nil
}

func (r *nameResolver) orderView(ctx context.Context, o *order.Order) (OrderView, error) {
	customerName, err := r.name(ctx, o.CustomerID())
	if err != nil {
		return OrderView{}, err
	}

	riderName := UnassignedRider
	if id := o.Rider(); id != nil {
		if riderName, err = r.name(ctx, *id); err != nil {
			return OrderView{}, err
		}
	}

	items := make([]LineItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemView{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderView{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		CustomerName: customerName,
		RiderID:      o.Rider(),
		RiderName:    riderName,
		Items:        items,
		Status:       o.Status(),
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
	}, nil
}

func (r *nameResolver) orderViews(ctx context.Context, orders []*order.Order) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view, err := r.orderView(ctx, o)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
