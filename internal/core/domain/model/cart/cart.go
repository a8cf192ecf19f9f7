// Package cart provides the per-customer staging list of products.
package cart

import (
	"fmt"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checking out a cart with no entries.
var ErrCartIsEmpty = errs.NewStateConflictError("cart is empty")

// Entry is a (product, quantity) pair. Quantity is always positive.
type Entry struct {
	productID kernel.UUID
	quantity  int
}

func NewEntry(productID kernel.UUID, quantity int) (Entry, error) {
	if err := productID.Validate(); err != nil {
		return Entry{}, err
	}
	if quantity <= 0 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Entry{productID: productID, quantity: quantity}, nil
}

func (e Entry) ProductID() kernel.UUID {
	return e.productID
}

func (e Entry) Quantity() int {
	return e.quantity
}

// Cart keeps entries in insertion order. Adding the same product twice
// appends a second entry.
type Cart struct {
	entries []Entry
}

func NewCart(entries ...Entry) *Cart {
	c := &Cart{entries: make([]Entry, 0, len(entries))}
	c.entries = append(c.entries, entries...)
	return c
}

func (c *Cart) Add(entry Entry) {
	c.entries = append(c.entries, entry)
}

// Entries returns a copy of the current entries.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Checkout hands over the entries and empties the cart.
func (c *Cart) Checkout() ([]Entry, error) {
	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}
	entries := c.entries
	c.entries = make([]Entry, 0)
	return entries, nil
}
