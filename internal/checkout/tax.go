package checkout

import "kasirpos-backend/internal/settings"

type TaxMode string

const (
	TaxBeforeDiscount TaxMode = settings.TaxModeBeforeDiscount
	TaxAfterDiscount  TaxMode = settings.TaxModeAfterDiscount
	TaxIncluded       TaxMode = settings.TaxModeIncluded
)

type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountPct    float64 `json:"discount_pct"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxRate        float64 `json:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
}

// ComputeTotals applies discount and tax to a cart subtotal.
//
//   - before_discount: tax on the subtotal, then the discount percentage
//     on the tax-inclusive amount.
//   - after_discount: discount on the subtotal, then tax on the
//     discounted amount.
//   - included: displayed prices already contain tax, no additive tax
//     line; the discount applies to the displayed subtotal and TaxAmount
//     reports the tax embedded in the discounted total.
func ComputeTotals(subtotal, discountPct, taxRate float64, mode TaxMode) Totals {
	if discountPct < 0 {
		discountPct = 0
	}
	if discountPct > 100 {
		discountPct = 100
	}

	t := Totals{
		Subtotal:    subtotal,
		DiscountPct: discountPct,
		TaxRate:     taxRate,
	}

	switch mode {
	case TaxBeforeDiscount:
		t.TaxAmount = subtotal * taxRate / 100
		gross := subtotal + t.TaxAmount
		t.DiscountAmount = gross * discountPct / 100
		t.Total = gross - t.DiscountAmount
	case TaxIncluded:
		t.DiscountAmount = subtotal * discountPct / 100
		t.Total = subtotal - t.DiscountAmount
		if taxRate > 0 {
			t.TaxAmount = t.Total * taxRate / (100 + taxRate)
		}
	default: // after_discount
		t.DiscountAmount = subtotal * discountPct / 100
		taxable := subtotal - t.DiscountAmount
		t.TaxAmount = taxable * taxRate / 100
		t.Total = taxable + t.TaxAmount
	}

	return t
}

// ValidatePayment rejects a checkout whose tendered amount does not cover
// the total. Nothing may be persisted when this fails.
func ValidatePayment(paid, total float64) error {
	if paid < total {
		return ErrInsufficientPayment
	}
	return nil
}
