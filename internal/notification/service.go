package notification

import (
	"encoding/json"
	"fmt"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"
)

type Options struct {
	Type    models.NotificationType
	Title   string
	Message string
	Data    any // optional, marshaled into the jsonb column
}

// Notify appends an entry to the notification log. Callers treat failures
// as non-fatal: a lost notification must never abort a business operation.
func Notify(opts Options) error {
	dataStr := "null"
	if opts.Data != nil {
		if b, err := json.Marshal(opts.Data); err == nil {
			dataStr = string(b)
		}
	}

	n := models.Notification{
		Type:    opts.Type,
		Title:   opts.Title,
		Message: opts.Message,
		Data:    dataStr,
	}

	if err := database.DB.Create(&n).Error; err != nil {
		return fmt.Errorf("could not write notification: %w", err)
	}
	return nil
}

// NotifyUnpaidInvoice emits an unpaid_transaction entry for a purchase
// invoice created or left with outstanding debt.
func NotifyUnpaidInvoice(inv models.PurchaseInvoice, remaining float64) error {
	return Notify(unpaidInvoiceOptions(inv, remaining))
}

func unpaidInvoiceOptions(inv models.PurchaseInvoice, remaining float64) Options {
	return Options{
		Type:    models.NotificationUnpaidTransaction,
		Title:   "Outstanding invoice",
		Message: fmt.Sprintf("Invoice %s from %s has %.0f outstanding", inv.InvoiceNumber, inv.Supplier.Name, remaining),
		Data: map[string]any{
			"invoice_id":     inv.ID,
			"invoice_number": inv.InvoiceNumber,
			"remaining_debt": remaining,
		},
	}
}

// NotifyLowStock emits a low_stock entry for a product that fell to or
// below its minimum after a stock mutation.
func NotifyLowStock(p models.Product) error {
	return Notify(Options{
		Type:    models.NotificationLowStock,
		Title:   "Low stock",
		Message: fmt.Sprintf("%s is down to %.2f %s (minimum %.2f)", p.Name, p.CurrentStock, p.Unit, p.MinStock),
		Data: map[string]any{
			"product_id":    p.ID,
			"sku":           p.SKU,
			"current_stock": p.CurrentStock,
			"min_stock":     p.MinStock,
		},
	})
}
