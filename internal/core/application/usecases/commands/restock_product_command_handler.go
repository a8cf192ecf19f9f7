package commands

import (
	"context"
)

type RestockProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRestockProductCommandHandler(uowFactory CatalogUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
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

	products := uow.ProductRepository()
	p, err := products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = products.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
