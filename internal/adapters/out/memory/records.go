package memory

import (
	"time"

	"quickcart/internal/core/domain/model/cart"
	"quickcart/internal/core/domain/model/customer"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
)

// Records are detached copies of aggregate state. Aggregates handed out by
// the store are always rebuilt from records, so callers never share memory
// with committed state.

type productRecord struct {
	ID       kernel.UUID
	Name     string
	Price    kernel.Money
	Stock    int
	Category string
}

type orderRecord struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	RiderID    *kernel.UUID
	Items      []order.LineItem
	Status     order.Status
	Total      kernel.Money
	CreatedAt  time.Time
}

type userRecord struct {
	ID         kernel.UUID
	Name       string
	Credential kernel.Credential
	Email      string
	Role       user.Role
	CreatedAt  time.Time
}

type riderRecord struct {
	Availability  rider.Availability
	ActiveOrderID *kernel.UUID
}

func fromProduct(p *product.Product) productRecord {
	return productRecord{
		ID:       p.ID(),
		Name:     p.Name(),
		Price:    p.Price(),
		Stock:    p.Stock(),
		Category: p.Category(),
	}
}

func (r productRecord) toDomain() (*product.Product, error) {
	return product.RestoreProduct(r.ID, r.Name, r.Price, r.Stock, r.Category)
}

func fromOrder(o *order.Order) orderRecord {
	return orderRecord{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		RiderID:    o.Rider(),
		Items:      o.Items(),
		Status:     o.Status(),
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt(),
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.ID, r.CustomerID, r.RiderID, r.Items, r.Status, r.Total, r.CreatedAt)
}

func fromUser(u *user.User) userRecord {
	return userRecord{
		ID:         u.ID(),
		Name:       u.Name(),
		Credential: u.Credential(),
		Email:      u.Email(),
		Role:       u.Role(),
		CreatedAt:  u.CreatedAt(),
	}
}

func (r userRecord) toDomain() (*user.User, error) {
	return user.RestoreUser(r.ID, r.Name, r.Credential, r.Email, r.Role, r.CreatedAt)
}

func fromRider(r *rider.Rider) riderRecord {
	return riderRecord{
		Availability:  r.Availability(),
		ActiveOrderID: r.ActiveOrder(),
	}
}

func fromCustomer(c *customer.Customer) []cart.Entry {
	return c.Cart()
}
