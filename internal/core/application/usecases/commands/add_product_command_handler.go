package commands

import (
	"context"

	"quickcart/internal/core/domain/model/product"
)

// AddProductCommandHandler lists new products on behalf of an admin.
type AddProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddProductCommandHandler(uowFactory CatalogUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the actor is an admin and stores the product. Names may
// repeat; ids may not.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
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

	if err := requireAdmin(ctx, uow.UserRepository(), cmd.AdminID()); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Stock(), cmd.Category())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
