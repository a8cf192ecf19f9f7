// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, re-checks the
// actor's role, mutates aggregates and commits. A failed step rolls back.
package commands

import (
	"context"

	"quickcart/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each group of
// handlers touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// AccountUoW covers user registration and profile changes.
	AccountUoW interface {
		TxManager
		UserRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// CatalogUoW covers admin catalog maintenance.
	CatalogUoW interface {
		TxManager
		UserRepoFactory
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ShoppingUoW covers the customer's cart and checkout.
	ShoppingUoW interface {
		TxManager
		CustomerRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	ShoppingUoWFactory interface {
		Create() ShoppingUoW
	}

	// DeliveryUoW covers rider availability and order transitions.
	// Cancellation writes products back, so the product repository is here too.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   riders := uow.RiderRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		RiderRepoFactory
		OrderRepoFactory
		ProductRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
