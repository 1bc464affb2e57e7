package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsAfterDiscount(t *testing.T) {
	got := ComputeTotals(100000, 10, 10, TaxAfterDiscount)

	assert.Equal(t, 100000.0, got.Subtotal)
	assert.Equal(t, 10000.0, got.DiscountAmount)
	assert.Equal(t, 9000.0, got.TaxAmount)
	assert.Equal(t, 99000.0, got.Total)
}

func TestComputeTotalsBeforeDiscount(t *testing.T) {
	got := ComputeTotals(100000, 10, 10, TaxBeforeDiscount)

	assert.Equal(t, 10000.0, got.TaxAmount)
	assert.Equal(t, 11000.0, got.DiscountAmount)
	assert.Equal(t, 99000.0, got.Total)
}

func TestComputeTotalsIncluded(t *testing.T) {
	got := ComputeTotals(110000, 10, 10, TaxIncluded)

	// no additive tax line: the total is just the discounted subtotal
	assert.Equal(t, 11000.0, got.DiscountAmount)
	assert.Equal(t, 99000.0, got.Total)
	// embedded tax is reported, not added
	assert.InDelta(t, 9000.0, got.TaxAmount, 0.0001)
}

func TestComputeTotalsIncludedZeroRate(t *testing.T) {
	got := ComputeTotals(50000, 0, 0, TaxIncluded)

	assert.Equal(t, 50000.0, got.Total)
	assert.Equal(t, 0.0, got.TaxAmount)
}

func TestComputeTotalsNoDiscountNoTax(t *testing.T) {
	for _, mode := range []TaxMode{TaxBeforeDiscount, TaxAfterDiscount, TaxIncluded} {
		got := ComputeTotals(75000, 0, 0, mode)
		assert.Equal(t, 75000.0, got.Total, "mode %s", mode)
		assert.Equal(t, 0.0, got.DiscountAmount, "mode %s", mode)
		assert.Equal(t, 0.0, got.TaxAmount, "mode %s", mode)
	}
}

func TestComputeTotalsClampsDiscount(t *testing.T) {
	got := ComputeTotals(10000, 150, 0, TaxAfterDiscount)
	assert.Equal(t, 100.0, got.DiscountPct)
	assert.Equal(t, 0.0, got.Total)

	got = ComputeTotals(10000, -5, 0, TaxAfterDiscount)
	assert.Equal(t, 0.0, got.DiscountPct)
	assert.Equal(t, 10000.0, got.Total)
}

func TestComputeTotalsAfterDiscountIdentity(t *testing.T) {
	// total == subtotal - discount + tax for additive modes
	got := ComputeTotals(123456, 7.5, 11, TaxAfterDiscount)
	assert.InDelta(t, got.Subtotal-got.DiscountAmount+got.TaxAmount, got.Total, 0.0001)

	got = ComputeTotals(123456, 7.5, 11, TaxBeforeDiscount)
	assert.InDelta(t, got.Subtotal-got.DiscountAmount+got.TaxAmount, got.Total, 0.0001)
}

func TestValidatePayment(t *testing.T) {
	require.NoError(t, ValidatePayment(100000, 99000))
	require.NoError(t, ValidatePayment(99000, 99000))

	err := ValidatePayment(50000, 99000)
	assert.ErrorIs(t, err, ErrInsufficientPayment)
}
