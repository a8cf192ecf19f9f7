package kernel

import (
	"errors"
	"fmt"

	"quickcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or MoneyFromFloat")

// Money is a non-negative amount with cent precision.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// ZeroMoney is the neutral element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("price", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount.Round(2), isConstructed: true}, nil
}

func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString accepts plain decimal notation such as "10" or "10.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%q is not a number: %w", s, err))
	}
	return NewMoney(amount)
}

func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Times multiplies the amount by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
