package policies

import (
	"context"

	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/ports"
)

// Admin maintains the catalog and sees the whole ledger.
type Admin struct {
	account
}

func (a Admin) AddProduct(
	ctx context.Context,
	name string,
	price kernel.Money,
	stock int,
	category string,
) (queries.ProductView, error) {
	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(a.id, productID, name, price, stock, category)
	if err != nil {
		return queries.ProductView{}, err
	}
	if err = a.handlers.AddProduct.Handle(ctx, cmd); err != nil {
		return queries.ProductView{}, err
	}
	return a.product(ctx, productID)
}

func (a Admin) Restock(ctx context.Context, productID kernel.UUID, quantity int) (queries.ProductView, error) {
	cmd, err := commands.NewRestockProductCommand(a.id, productID, quantity)
	if err != nil {
		return queries.ProductView{}, err
	}
	if err = a.handlers.RestockProduct.Handle(ctx, cmd); err != nil {
		return queries.ProductView{}, err
	}
	return a.product(ctx, productID)
}

func (a Admin) ChangePrice(ctx context.Context, productID kernel.UUID, price kernel.Money) (queries.ProductView, error) {
	cmd, err := commands.NewChangeProductPriceCommand(a.id, productID, price)
	if err != nil {
		return queries.ProductView{}, err
	}
	if err = a.handlers.ChangeProductPrice.Handle(ctx, cmd); err != nil {
		return queries.ProductView{}, err
	}
	return a.product(ctx, productID)
}

func (a Admin) Products(ctx context.Context) ([]queries.ProductView, error) {
	return a.products(ctx)
}

func (a Admin) ViewAllOrders(ctx context.Context) ([]queries.OrderView, error) {
	query, err := queries.NewGetAllOrdersQuery(a.id)
	if err != nil {
		return nil, err
	}
	return a.handlers.GetAllOrders.Handle(ctx, query)
}

// Snapshot returns the current catalog and ledger in snapshot form.
func (a Admin) Snapshot(ctx context.Context) (ports.Snapshot, error) {
	if _, err := a.ViewAllOrders(ctx); err != nil {
		return ports.Snapshot{}, err
	}
	return a.handlers.GetSnapshot.Handle(ctx, queries.NewGetSnapshotQuery())
}
