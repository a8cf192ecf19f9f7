package queries

import (
	"context"

	"quickcart/internal/core/ports"
)

type ListProductsQueryHandler struct {
	products ports.ProductReader
}

func NewListProductsQueryHandler(products ports.ProductReader) ListProductsQueryHandler {
	return ListProductsQueryHandler{products: products}
}

// Handle returns an empty slice for an empty catalog.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return newProductViews(products), nil
}
