package policies

import (
	"context"

	"quickcart/internal/core/application/usecases/commands"
	"quickcart/internal/core/application/usecases/queries"
	"quickcart/internal/core/domain/model/kernel"
)

// Customer browses, fills a cart and places orders.
type Customer struct {
	account
}

func (c Customer) Browse(ctx context.Context) ([]queries.ProductView, error) {
	return c.products(ctx)
}

func (c Customer) AddToCart(ctx context.Context, productID kernel.UUID, quantity int) error {
	cmd, err := commands.NewAddToCartCommand(c.id, productID, quantity)
	if err != nil {
		return err
	}
	return c.handlers.AddToCart.Handle(ctx, cmd)
}

func (c Customer) ViewCart(ctx context.Context) ([]queries.CartEntryView, error) {
	query, err := queries.NewGetCartQuery(c.id)
	if err != nil {
		return nil, err
	}
	return c.handlers.GetCart.Handle(ctx, query)
}

func (c Customer) PlaceOrder(ctx context.Context) (queries.OrderView, error) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(c.id, orderID)
	if err != nil {
		return queries.OrderView{}, err
	}
	if err = c.handlers.PlaceOrder.Handle(ctx, cmd); err != nil {
		return queries.OrderView{}, err
	}
	return c.order(ctx, orderID)
}

func (c Customer) ViewOrderHistory(ctx context.Context) ([]queries.OrderView, error) {
	query, err := queries.NewGetCustomerOrdersQuery(c.id)
	if err != nil {
		return nil, err
	}
	return c.handlers.GetCustomerOrders.Handle(ctx, query)
}
