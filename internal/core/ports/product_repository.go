// Package ports defines the contracts between the QuickCart core and its
// adapters: repositories bound to a unit of work, read-only views used by
// queries, snapshot persistence and event publishing.
package ports

import (
	"context"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/product"
)

// ProductReader is the read side of the catalog.
type ProductReader interface {
	// Get returns the product or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll returns every product in the order it was added.
	GetAll(ctx context.Context) ([]*product.Product, error)
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	ProductReader

	// Add stores a new product. The id must not exist yet.
	Add(ctx context.Context, p *product.Product) error

	// Update stores changes to an existing product.
	Update(ctx context.Context, p *product.Product) error
}
