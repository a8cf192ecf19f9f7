package commands

import (
	"context"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/product"
)

type SeedCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSeedCatalogCommandHandler(uowFactory CatalogUoWFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds all seeds in one transaction, so a bad record loads nothing.
func (h SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products := uow.ProductRepository()
	for _, seed := range cmd.Seeds() {
		p, err := product.NewProduct(kernel.NewUUID(), seed.Name, seed.Price, seed.Stock, seed.Category)
		if err != nil {
			return err
		}
		if err = products.Add(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
