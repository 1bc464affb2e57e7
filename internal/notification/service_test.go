package notification

import (
	"testing"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpaidInvoiceOptions(t *testing.T) {
	inv := models.PurchaseInvoice{
		ID:            4,
		InvoiceNumber: "INV-AAAA1111",
		Supplier:      models.Supplier{Name: "PT Sumber Rejeki"},
		Total:         500000,
		PaidAmount:    200000,
	}

	opts := unpaidInvoiceOptions(inv, 300000)

	assert.Equal(t, models.NotificationUnpaidTransaction, opts.Type)
	assert.Contains(t, opts.Message, "INV-AAAA1111")
	assert.Contains(t, opts.Message, "PT Sumber Rejeki")
	assert.Contains(t, opts.Message, "300000")

	data, ok := opts.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, uint(4), data["invoice_id"])
	assert.Equal(t, 300000.0, data["remaining_debt"])
}
