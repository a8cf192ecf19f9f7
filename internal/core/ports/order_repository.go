package ports

import (
	"context"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
)

// OrderReader is the read side of the ledger. Every method returns orders in
// placement order.
type OrderReader interface {
	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer returns only orders owned by customerID.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllInPendingStatus returns orders waiting for a rider.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for the ledger. Orders are
// never deleted.
type OrderRepository interface {
	OrderReader

	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
}
