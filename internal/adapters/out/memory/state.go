package memory

import (
	"slices"

	"quickcart/internal/core/domain/model/cart"
)

// view is read access to a consistent set of records, either committed
// state or committed state overlaid with a unit of work's staged changes.
type view interface {
	product(id string) (productRecord, bool)
	productIDs() []string
	order(id string) (orderRecord, bool)
	orderIDs() []string
	user(id string) (userRecord, bool)
	userIDByName(name string) (string, bool)
	cart(customerID string) []cart.Entry
	rider(riderID string) (riderRecord, bool)
}

// state holds committed records. Insertion order of products and orders is
// kept in separate slices.
type state struct {
	products     map[string]productRecord
	productOrder []string
	orders       map[string]orderRecord
	orderOrder   []string
	users        map[string]userRecord
	userNames    map[string]string
	carts        map[string][]cart.Entry
	riders       map[string]riderRecord
}

func newState() *state {
	return &state{
		products:  make(map[string]productRecord),
		orders:    make(map[string]orderRecord),
		users:     make(map[string]userRecord),
		userNames: make(map[string]string),
		carts:     make(map[string][]cart.Entry),
		riders:    make(map[string]riderRecord),
	}
}

func (s *state) product(id string) (productRecord, bool) {
	r, ok := s.products[id]
	return r, ok
}

func (s *state) productIDs() []string {
	return slices.Clone(s.productOrder)
}

func (s *state) order(id string) (orderRecord, bool) {
	r, ok := s.orders[id]
	return r, ok
}

func (s *state) orderIDs() []string {
	return slices.Clone(s.orderOrder)
}

func (s *state) user(id string) (userRecord, bool) {
	r, ok := s.users[id]
	return r, ok
}

func (s *state) userIDByName(name string) (string, bool) {
	id, ok := s.userNames[name]
	return id, ok
}

func (s *state) cart(customerID string) []cart.Entry {
	return slices.Clone(s.carts[customerID])
}

func (s *state) rider(riderID string) (riderRecord, bool) {
	r, ok := s.riders[riderID]
	return r, ok
}

// changes are records staged by a unit of work.
type changes struct {
	products    map[string]productRecord
	newProducts []string
	orders      map[string]orderRecord
	newOrders   []string
	users       map[string]userRecord
	userNames   map[string]string
	carts       map[string][]cart.Entry
	riders      map[string]riderRecord
}

func newChanges() *changes {
	return &changes{
		products:  make(map[string]productRecord),
		orders:    make(map[string]orderRecord),
		users:     make(map[string]userRecord),
		userNames: make(map[string]string),
		carts:     make(map[string][]cart.Entry),
		riders:    make(map[string]riderRecord),
	}
}

// overlay reads staged records first and falls back to committed ones.
type overlay struct {
	base   *state
	staged *changes
}

func (o overlay) product(id string) (productRecord, bool) {
	if r, ok := o.staged.products[id]; ok {
		return r, true
	}
	return o.base.product(id)
}

func (o overlay) productIDs() []string {
	return append(o.base.productIDs(), o.staged.newProducts...)
}

func (o overlay) order(id string) (orderRecord, bool) {
	if r, ok := o.staged.orders[id]; ok {
		return r, true
	}
	return o.base.order(id)
}

func (o overlay) orderIDs() []string {
	return append(o.base.orderIDs(), o.staged.newOrders...)
}

func (o overlay) user(id string) (userRecord, bool) {
	if r, ok := o.staged.users[id]; ok {
		return r, true
	}
	return o.base.user(id)
}

func (o overlay) userIDByName(name string) (string, bool) {
	if id, ok := o.staged.userNames[name]; ok {
		return id, true
	}
	return o.base.userIDByName(name)
}

func (o overlay) cart(customerID string) []cart.Entry {
	if entries, ok := o.staged.carts[customerID]; ok {
		return slices.Clone(entries)
	}
	return o.base.cart(customerID)
}

func (o overlay) rider(riderID string) (riderRecord, bool) {
	if r, ok := o.staged.riders[riderID]; ok {
		return r, true
	}
	return o.base.rider(riderID)
}

// apply merges staged changes into committed state.
func (s *state) apply(c *changes) {
	for id, r := range c.products {
		s.products[id] = r
	}
	s.productOrder = append(s.productOrder, c.newProducts...)

	for id, r := range c.orders {
		s.orders[id] = r
	}
	s.orderOrder = append(s.orderOrder, c.newOrders...)

	for id, r := range c.users {
		if old, ok := s.users[id]; ok && old.Name != r.Name {
			delete(s.userNames, old.Name)
		}
		s.users[id] = r
		s.userNames[r.Name] = id
	}

	for id, entries := range c.carts {
		s.carts[id] = entries
	}
	for id, r := range c.riders {
		s.riders[id] = r
	}
}
