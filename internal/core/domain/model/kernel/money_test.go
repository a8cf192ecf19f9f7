package kernel_test

import (
	"testing"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "10", "0.99", "1234.5"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(amount))

			require.NoError(t, err)
			require.NoError(t, m.Validate())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should round to cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal text", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.50")

		require.NoError(t, err)
		assert.InDelta(t, 10.5, m.Float64(), 0.0001)
	})

	t.Run("should reject non numeric text", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, err := kernel.MoneyFromFloat(10.0)
	require.NoError(t, err)

	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "20.00", price.Times(2).String())
	})

	t.Run("should add amounts", func(t *testing.T) {
		other, _ := kernel.MoneyFromFloat(0.25)

		assert.True(t, price.Add(other).IsEqual(mustMoney(t, 10.25)))
	})

	t.Run("zero is neutral", func(t *testing.T) {
		assert.True(t, kernel.ZeroMoney().Add(price).IsEqual(price))
	})
}

func TestMoney_Validate(t *testing.T) {
	var m kernel.Money

	assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}
