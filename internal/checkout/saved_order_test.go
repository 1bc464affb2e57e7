package checkout

import (
	"testing"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedOrderRoundTripKeepsItemFields(t *testing.T) {
	var c Cart
	c.AddItem(kopi, 2)
	c.AddItem(roti, 1)

	restored := cartItemsFromSaved(savedItemsFromCart(c.Items))

	require.Len(t, restored, 2)
	assert.Equal(t, c.Items, restored)
}

func TestSavedOrderRoundTripKeepsSKU(t *testing.T) {
	var c Cart
	c.AddItem(kopi, 1)

	saved := savedItemsFromCart(c.Items)
	require.Len(t, saved, 1)
	assert.Equal(t, "KOPI-01", saved[0].SKU)

	restored := cartItemsFromSaved(saved)
	require.Len(t, restored, 1)
	assert.Equal(t, "KOPI-01", restored[0].SKU)
}

func TestSavedItemsFromCartComputesSubtotal(t *testing.T) {
	items := savedItemsFromCart([]CartItem{
		{ProductID: 1, Name: "Kopi Susu", SKU: "KOPI-01", Price: 18000, Quantity: 3},
	})

	require.Len(t, items, 1)
	assert.Equal(t, 54000.0, items[0].Subtotal)
}

func TestCartItemsFromSavedEmpty(t *testing.T) {
	assert.Empty(t, cartItemsFromSaved(nil))
	assert.Empty(t, cartItemsFromSaved([]models.SavedOrderItem{}))
}
