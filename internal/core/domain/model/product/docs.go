// Package product provides the Product entity of the catalog.
//
// Key business rules:
//   - a product has a name, a non-negative unit price and a category
//   - stock is never negative; every change is a signed delta applied to the
//     single counter and rejected as a whole when it would go below zero
//   - stock is reserved when a customer adds the product to a cart and
//     released when an order holding it is cancelled
package product
