package checkout

import (
	"testing"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	kopi = models.Product{ID: 1, Name: "Kopi Susu", SKU: "KOPI-01", Price: 18000}
	roti = models.Product{ID: 2, Name: "Roti Bakar", SKU: "ROTI-01", Price: 12000}
)

func TestCartAddItem(t *testing.T) {
	var c Cart

	c.AddItem(kopi, 2)
	c.AddItem(roti, 1)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 36000.0, c.Items[0].Subtotal)
	assert.Equal(t, 48000.0, c.Subtotal())
}

func TestCartAddItemIncrementsExistingLine(t *testing.T) {
	var c Cart

	c.AddItem(kopi, 1)
	c.AddItem(kopi, 3)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 4.0, c.Items[0].Quantity)
	assert.Equal(t, 72000.0, c.Items[0].Subtotal)
}

func TestCartAddItemDefaultsQuantityToOne(t *testing.T) {
	var c Cart

	c.AddItem(kopi, 0)
	c.AddItem(roti, -2)

	assert.Equal(t, 1.0, c.Items[0].Quantity)
	assert.Equal(t, 1.0, c.Items[1].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	var c Cart
	c.AddItem(kopi, 2)

	c.UpdateQuantity(kopi.ID, 5)

	assert.Equal(t, 5.0, c.Items[0].Quantity)
	assert.Equal(t, 90000.0, c.Items[0].Subtotal)
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	var c Cart
	c.AddItem(kopi, 2)
	c.AddItem(roti, 1)

	c.UpdateQuantity(kopi.ID, 0)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, roti.ID, c.Items[0].ProductID)
}

func TestCartRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(kopi, 1)

	c.RemoveItem(kopi.ID)
	c.RemoveItem(999) // unknown id is a no-op

	assert.True(t, c.IsEmpty())
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddItem(kopi, 1)
	c.DiscountPct = 10
	c.SelectCustomer(&models.Customer{ID: 7, Name: "Budi"})

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.DiscountPct)
	assert.Nil(t, c.CustomerID)
	assert.Empty(t, c.CustomerName)
}

func TestCartSelectCustomer(t *testing.T) {
	var c Cart

	c.SelectCustomer(&models.Customer{ID: 7, Name: "Budi"})
	assert.Equal(t, uint(7), *c.CustomerID)
	assert.Equal(t, "Budi", c.CustomerName)

	c.SelectCustomer(nil)
	assert.Nil(t, c.CustomerID)
	assert.Empty(t, c.CustomerName)
}

func TestEnsureInStock(t *testing.T) {
	assert.NoError(t, EnsureInStock(models.Product{CurrentStock: 3}))
	assert.ErrorIs(t, EnsureInStock(models.Product{CurrentStock: 0}), ErrOutOfStock)
	assert.ErrorIs(t, EnsureInStock(models.Product{CurrentStock: -1}), ErrOutOfStock)
}

func TestStoreIsolatesUsers(t *testing.T) {
	s := NewStore()

	s.Get(1).AddItem(kopi, 1)

	assert.Len(t, s.Get(1).Items, 1)
	assert.True(t, s.Get(2).IsEmpty())
}

func TestStoreDrop(t *testing.T) {
	s := NewStore()
	s.Get(1).AddItem(kopi, 1)

	s.Drop(1)

	assert.True(t, s.Get(1).IsEmpty())
}
