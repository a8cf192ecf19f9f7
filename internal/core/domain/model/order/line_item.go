package order

import (
	"errors"
	"fmt"
	"strings"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"
)

// LineItem captures a product as it was when the order was placed.
type LineItem struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
}

func NewLineItem(productID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(productID.Validate(), nameErr, unitPrice.Validate(), quantityErr); err != nil {
		return LineItem{}, err
	}

	return LineItem{productID: productID, name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (l LineItem) ProductID() kernel.UUID {
	return l.productID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}
