package order_test

import (
	"strings"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, productID int64, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(productID, quantity)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	number, _ := order.NewNumber(1)
	date := kernel.NewDate(2026, time.October, 20)
	address := "221B Baker Street"

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		items := []*order.Item{mustItem(t, 1, 10), mustItem(t, 2, 9)}

		o, err := order.NewOrder(number, 7, date, address, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, "ORD00001", o.Number().String())
		assert.Equal(t, int64(7), o.CustomerID())
		assert.True(t, o.Date().Equal(date))
		assert.Equal(t, address, o.Address())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, []order.Line{{ProductID: 1, Quantity: 10}, {ProductID: 2, Quantity: 9}}, o.Lines())
	})

	t.Run("should accept an order without items", func(t *testing.T) {
		o, err := order.NewOrder(number, 7, date, address, nil)

		require.NoError(t, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with duplicate product", func(t *testing.T) {
		items := []*order.Item{mustItem(t, 1, 1), mustItem(t, 1, 5)}

		o, err := order.NewOrder(number, 7, date, address, items)

		require.ErrorIs(t, err, errs.ErrValueIsDuplicated)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed number", func(t *testing.T) {
		o, err := order.NewOrder(order.Number{}, 7, date, address, nil)

		require.ErrorIs(t, err, order.ErrNumberIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("should fail with too long address", func(t *testing.T) {
		o, err := order.NewOrder(number, 7, date, strings.Repeat("a", order.AddressMaxLength+1), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(number, 0, kernel.Date{}, "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: customer")
		assert.Contains(t, err.Error(), "date must be created")
		assert.Contains(t, err.Error(), "value is required: address")
	})
}

func TestRestoreOrder(t *testing.T) {
	number, _ := order.ParseNumber("ORD00042")
	item, err := order.RestoreItem(11, 3, 2)
	require.NoError(t, err)

	o, err := order.RestoreOrder(42, number, 7, kernel.NewDate(2026, time.October, 20), "Main St", []*order.Item{item})

	require.NoError(t, err)
	assert.Equal(t, int64(42), o.ID())
	assert.Equal(t, int64(11), o.Items()[0].ID())
	assert.Equal(t, "ORD00042", o.Number().String())
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_UpsertItem(t *testing.T) {
	number, _ := order.NewNumber(3)
	date := kernel.NewDate(2026, time.October, 20)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(number, 7, date, "Main St", []*order.Item{mustItem(t, 1, 10)})
		require.NoError(t, err)
		return o
	}

	t.Run("should change quantity of existing product", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.UpsertItem(1, 4))

		assert.Equal(t, []order.Line{{ProductID: 1, Quantity: 4}}, o.Lines())
	})

	t.Run("should add new product", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.UpsertItem(2, 3))

		assert.Equal(t, []order.Line{{ProductID: 1, Quantity: 10}, {ProductID: 2, Quantity: 3}}, o.Lines())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := newOrder(t)

		require.ErrorIs(t, o.UpsertItem(1, 0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.UpsertItem(2, -1), errs.ErrValueIsInvalid)
		assert.Equal(t, []order.Line{{ProductID: 1, Quantity: 10}}, o.Lines())
	})
}

func TestOrder_ChangeDetails(t *testing.T) {
	number, _ := order.NewNumber(5)
	o, err := order.NewOrder(number, 7, kernel.NewDate(2026, time.October, 20), "Main St", nil)
	require.NoError(t, err)

	t.Run("should keep number and replace details", func(t *testing.T) {
		newDate := kernel.NewDate(2026, time.November, 1)

		require.NoError(t, o.ChangeDetails(8, newDate, "Second St"))

		assert.Equal(t, "ORD00005", o.Number().String())
		assert.Equal(t, int64(8), o.CustomerID())
		assert.True(t, o.Date().Equal(newDate))
		assert.Equal(t, "Second St", o.Address())
	})

	t.Run("should leave order untouched on invalid input", func(t *testing.T) {
		err := o.ChangeDetails(9, kernel.NewDate(2026, time.December, 1), "")

		require.Error(t, err)
		assert.Equal(t, int64(8), o.CustomerID())
		assert.Equal(t, "Second St", o.Address())
	})
}
