package memory

import (
	"context"
	"fmt"

	"quickcart/internal/core/domain/model/customer"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/rider"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"
)

type productRepository struct {
	uow *UnitOfWork
}

func (r *productRepository) Add(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}

	id := p.ID().String()
	if _, exists := v.product(id); exists {
		return errs.NewStateConflictError(fmt.Sprintf("product %s already exists", id))
	}

	r.uow.staged.products[id] = fromProduct(p)
	r.uow.staged.newProducts = append(r.uow.staged.newProducts, id)
	r.uow.TrackAggregate(p.ID(), p)
	return nil
}

func (r *productRepository) Update(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}

	id := p.ID().String()
	if _, exists := v.product(id); !exists {
		return errs.NewObjectNotFoundError("product", id)
	}

	r.uow.staged.products[id] = fromProduct(p)
	r.uow.TrackAggregate(p.ID(), p)
	return nil
}

func (r *productRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return getProduct(v, id)
}

func (r *productRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return allProducts(v)
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, exists := v.order(id); exists {
		return errs.NewStateConflictError(fmt.Sprintf("order %s already exists", id))
	}

	r.uow.staged.orders[id] = fromOrder(aggregate)
	r.uow.staged.newOrders = append(r.uow.staged.newOrders, id)
	r.uow.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}

	id := aggregate.ID().String()
	if _, exists := v.order(id); !exists {
		return errs.NewObjectNotFoundError("order", id)
	}

	r.uow.staged.orders[id] = fromOrder(aggregate)
	r.uow.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return getOrder(v, id)
}

func (r *orderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return findOrders(v, anyOrder)
}

func (r *orderRepository) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return findOrders(v, ownedBy(customerID))
}

func (r *orderRepository) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return findOrders(v, pending)
}

type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}

	id := u.ID().String()
	if _, exists := v.user(id); exists {
		return errs.NewStateConflictError(fmt.Sprintf("user %s already exists", id))
	}
	if _, taken := v.userIDByName(u.Name()); taken {
		return errs.NewStateConflictError(fmt.Sprintf("user name %q is taken", u.Name()))
	}

	r.uow.staged.users[id] = fromUser(u)
	r.uow.staged.userNames[u.Name()] = id
	r.uow.TrackAggregate(u.ID(), u)
	return nil
}

func (r *userRepository) Update(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}

	id := u.ID().String()
	stored, exists := v.user(id)
	if !exists {
		return errs.NewObjectNotFoundError("user", id)
	}
	if stored.Role != u.Role() {
		return errs.NewStateConflictError("user role cannot change")
	}
	if owner, taken := v.userIDByName(u.Name()); taken && owner != id {
		return errs.NewStateConflictError(fmt.Sprintf("user name %q is taken", u.Name()))
	}

	r.uow.staged.users[id] = fromUser(u)
	r.uow.staged.userNames[u.Name()] = id
	r.uow.TrackAggregate(u.ID(), u)
	return nil
}

func (r *userRepository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return getUser(v, id)
}

func (r *userRepository) GetByName(_ context.Context, name string) (*user.User, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return getUserByName(v, name)
}

type customerRepository struct {
	uow *UnitOfWork
}

func (r *customerRepository) Update(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}
	if _, err = getRoleUser(v, c.ID(), user.Customer, "customer"); err != nil {
		return err
	}

	r.uow.staged.carts[c.ID().String()] = fromCustomer(c)
	r.uow.TrackAggregate(c.ID(), c)
	return nil
}

func (r *customerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return getCustomer(v, id)
}

type riderRepository struct {
	uow *UnitOfWork
}

func (r *riderRepository) Update(_ context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	v, err := r.uow.view()
	if err != nil {
		return err
	}
	if _, err = getRoleUser(v, aggregate.ID(), user.Rider, "rider"); err != nil {
		return err
	}

	r.uow.staged.riders[aggregate.ID().String()] = fromRider(aggregate)
	r.uow.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *riderRepository) Get(_ context.Context, id kernel.UUID) (*rider.Rider, error) {
	v, err := r.uow.view()
	if err != nil {
		return nil, err
	}
	return getRider(v, id)
}

func anyOrder(orderRecord) bool {
	return true
}

func pending(r orderRecord) bool {
	return r.Status == order.Pending
}

func ownedBy(customerID kernel.UUID) func(orderRecord) bool {
	return func(r orderRecord) bool {
		return r.CustomerID.IsEqual(customerID)
	}
}
