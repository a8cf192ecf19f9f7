package product

import (
	"errors"
	"fmt"
	"strings"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	stock    int
	category string

	isConstructed bool
}

// NewProduct registers a product. Duplicate names are allowed.
func NewProduct(id kernel.UUID, name string, price kernel.Money, stock int, category string) (*Product, error) {
	return RestoreProduct(id, name, price, stock, category)
}

func RestoreProduct(id kernel.UUID, name string, price kernel.Money, stock int, category string) (*Product, error) {
	p := &Product{
		category:      strings.TrimSpace(category),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Category() string {
	return p.category
}

// AdjustStock applies a signed delta. A delta that would make stock negative
// is rejected and stock is left unchanged.
func (p *Product) AdjustStock(delta int) error {
	if p.stock+delta < 0 {
		return errs.NewStateConflictErrorWithCause(
			"insufficient stock",
			fmt.Errorf("%s has %d in stock, requested %d", p.name, p.stock, -delta),
		)
	}
	p.stock += delta
	return nil
}

// Restock adds quantity units. Quantity must be positive.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return p.AdjustStock(quantity)
}

// Reserve takes quantity units out of stock for a cart.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return p.AdjustStock(-quantity)
}

// Release returns quantity previously reserved units to stock.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return p.AdjustStock(quantity)
}

// ChangePrice affects future orders only; placed orders keep their totals.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	p.stock = stock
	return nil
}
