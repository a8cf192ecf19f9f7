// Package customer provides the Customer aggregate: a user with the customer
// role and the cart it owns.
package customer

import (
	"errors"
	"fmt"

	"quickcart/internal/core/domain/model/cart"
	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/product"
	"quickcart/internal/core/domain/model/user"
	"quickcart/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

type Customer struct {
	user *user.User
	cart *cart.Cart
}

func NewCustomer(u *user.User, c *cart.Cart) (*Customer, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if u.Role() != user.Customer {
		return nil, errs.NewAccessDeniedErrorWithCause("customer role required", fmt.Errorf("%s is a %s", u.Name(), u.Role()))
	}
	if c == nil {
		c = cart.NewCart()
	}
	return &Customer{user: u, cart: c}, nil
}

func (c *Customer) Validate() error {
	if c == nil || c.user == nil {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.user.ID()
}

func (c *Customer) User() *user.User {
	return c.user
}

// Cart returns a copy of the cart entries.
func (c *Customer) Cart() []cart.Entry {
	return c.cart.Entries()
}

// AddToCart reserves quantity units of p and records the entry. On failure
// neither the product nor the cart changes.
func (c *Customer) AddToCart(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	entry, err := cart.NewEntry(p.ID(), quantity)
	if err != nil {
		return err
	}

	if err = p.Reserve(quantity); err != nil {
		return err
	}

	c.cart.Add(entry)
	return nil
}

// Checkout empties the cart and returns what it held.
func (c *Customer) Checkout() ([]cart.Entry, error) {
	return c.cart.Checkout()
}
