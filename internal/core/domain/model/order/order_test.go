package order_test

import (
	"testing"
	"time"

	"quickcart/internal/core/domain/model/kernel"
	"quickcart/internal/core/domain/model/order"
	"quickcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, name string, price float64, quantity int) order.LineItem {
	t.Helper()
	p, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), name, p, quantity)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{lineItem(t, "Widget", 10, 2)})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order with computed total", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		items := []order.LineItem{lineItem(t, "Widget", 10, 2), lineItem(t, "Gadget", 2.5, 3)}

		o, err := order.NewOrder(id, customerID, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.IsOwnedBy(customerID))
		assert.Nil(t, o.Rider())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "27.50", o.Total().String())
		assert.Len(t, o.Items(), 2)
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Minute)
	})

	t.Run("should require at least one line item", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should join validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "line items")
	})

	t.Run("items are copied", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "Widget", 10, 2)}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
		require.NoError(t, err)

		items[0] = lineItem(t, "Other", 1, 1)

		assert.Equal(t, "Widget", o.Items()[0].Name())
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("should compute subtotal", func(t *testing.T) {
		assert.Equal(t, "20.00", lineItem(t, "Widget", 10, 2).Subtotal().String())
	})

	t.Run("should reject non-positive quantity and missing name", func(t *testing.T) {
		price, _ := kernel.MoneyFromFloat(1)

		_, err := order.NewLineItem(kernel.NewUUID(), "", price, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should assign rider and move to accepted", func(t *testing.T) {
		o := newPendingOrder(t)
		riderID := kernel.NewUUID()

		require.NoError(t, o.Accept(riderID))

		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.IsAssignedTo(riderID))
	})

	t.Run("should refuse a second accept and keep the first rider", func(t *testing.T) {
		o := newPendingOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Accept(first))

		err := o.Accept(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.True(t, o.IsAssignedTo(first))
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk accepted to delivered", func(t *testing.T) {
		o := newPendingOrder(t)
		riderID := kernel.NewUUID()
		require.NoError(t, o.Accept(riderID))

		require.NoError(t, o.Advance(riderID, order.InProgress))
		require.NoError(t, o.Advance(riderID, order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
		require.ErrorIs(t, o.Advance(riderID, order.Cancelled), errs.ErrStateConflict)
	})

	t.Run("should refuse accepted to delivered", func(t *testing.T) {
		o := newPendingOrder(t)
		riderID := kernel.NewUUID()
		require.NoError(t, o.Accept(riderID))

		require.ErrorIs(t, o.Advance(riderID, order.Delivered), errs.ErrStateConflict)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should refuse another rider", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(kernel.NewUUID()))

		err := o.Advance(kernel.NewUUID(), order.InProgress)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should refuse moving a pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.Advance(kernel.NewUUID(), order.Cancelled), errs.ErrAccessDenied)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	items := []order.LineItem{lineItem(t, "Widget", 10, 2)}
	total, _ := kernel.MoneyFromFloat(20)
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should keep stored total and timestamp", func(t *testing.T) {
		riderID := kernel.NewUUID()
		stored, _ := kernel.MoneyFromFloat(18)

		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &riderID, items, order.InProgress, stored, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "18.00", o.Total().String())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.IsAssignedTo(riderID))
	})

	t.Run("should reject rider on pending order", func(t *testing.T) {
		riderID := kernel.NewUUID()

		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &riderID, items, order.Pending, total, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require rider once accepted", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, items, order.Accepted, total, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewChangedEvent(t *testing.T) {
	o := newPendingOrder(t)

	e := order.NewChangedEvent(o)

	assert.True(t, e.OrderID.IsEqual(o.ID()))
	assert.True(t, e.CustomerID.IsEqual(o.CustomerID()))
	assert.Nil(t, e.RiderID)
	assert.Equal(t, order.Pending, e.Status)
	assert.True(t, e.Total.IsEqual(o.Total()))
}
