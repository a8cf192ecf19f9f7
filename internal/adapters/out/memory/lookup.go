package memory

import (
	"quickcart/internal/core/domain/model/cart"
	"quickcart/internal/core/domain/model/customer"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"
)

func getProduct(v view, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r, ok := v.product(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return r.toDomain()
}

func allProducts(v view) ([]*product.Product, error) {
	ids := v.productIDs()
	products := make([]*product.Product, 0, len(ids))
	for _, id := range ids {
		r, _ := v.product(id)
		p, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func getOrder(v view, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r, ok := v.order(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return r.toDomain()
}

func findOrders(v view, match func(orderRecord) bool) ([]*order.Order, error) {
	ids := v.orderIDs()
	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		r, _ := v.order(id)
		if !match(r) {
			continue
		}
		o, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func getUser(v view, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r, ok := v.user(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return r.toDomain()
}

func getUserByName(v view, name string) (*user.User, error) {
	id, ok := v.userIDByName(name)
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", name)
	}
	r, _ := v.user(id)
	return r.toDomain()
}

// getRoleUser returns the user only when it holds role. Other roles are
// reported as not found under paramName.
func getRoleUser(v view, id kernel.UUID, role user.Role, paramName string) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r, ok := v.user(id.String())
	if !ok || r.Role != role {
		return nil, errs.NewObjectNotFoundError(paramName, id.String())
	}
	return r.toDomain()
}

func getCustomer(v view, id kernel.UUID) (*customer.Customer, error) {
	u, err := getRoleUser(v, id, user.Customer, "customer")
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(u, cart.NewCart(v.cart(id.String())...))
}

// getRider returns a rider. A rider without a stored record is offline.
func getRider(v view, id kernel.UUID) (*rider.Rider, error) {
	u, err := getRoleUser(v, id, user.Rider, "rider")
	if err != nil {
		return nil, err
	}
	r, ok := v.rider(id.String())
	if !ok {
		return rider.NewRider(u)
	}
	return rider.RestoreRider(u, r.Availability, r.ActiveOrderID)
}
