package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type GetCartQueryHandler struct {
	customers ports.CustomerReader
	products  ports.ProductReader
}

func NewGetCartQueryHandler(customers ports.CustomerReader, products ports.ProductReader) GetCartQueryHandler {
	return GetCartQueryHandler{customers: customers, products: products}
}

// Handle lists cart entries with product names in the order they were added.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) ([]CartEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	entries := c.Cart()
	views := make([]CartEntryView, 0, len(entries))
	for _, entry := range entries {
		p, err := h.products.Get(ctx, entry.ProductID())
		if err != nil {
			return nil, err
		}
		views = append(views, CartEntryView{
			ProductID: entry.ProductID(),
			Name:      p.Name(),
			Quantity:  entry.Quantity(),
		})
	}
	return views, nil
}
