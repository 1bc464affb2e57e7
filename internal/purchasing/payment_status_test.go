package purchasing

import (
	"testing"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePaymentStatus(t *testing.T) {
	assert.Equal(t, models.PaymentStatusUnpaid, DerivePaymentStatus(100000, 0))
	assert.Equal(t, models.PaymentStatusPartial, DerivePaymentStatus(100000, 40000))
	assert.Equal(t, models.PaymentStatusPaid, DerivePaymentStatus(100000, 100000))

	// zero-total invoice counts as unpaid until something is paid
	assert.Equal(t, models.PaymentStatusUnpaid, DerivePaymentStatus(0, 0))
}

func TestRemainingDebt(t *testing.T) {
	assert.Equal(t, 60000.0, RemainingDebt(100000, 40000))
	assert.Equal(t, 0.0, RemainingDebt(100000, 100000))
	assert.Equal(t, 0.0, RemainingDebt(100000, 120000))
}

func TestValidatePayment(t *testing.T) {
	require.NoError(t, ValidatePayment(100000, 40000, 60000))
	require.NoError(t, ValidatePayment(100000, 0, 100000))

	assert.Error(t, ValidatePayment(100000, 0, 0))
	assert.Error(t, ValidatePayment(100000, 0, -5000))
	assert.ErrorIs(t, ValidatePayment(100000, 40000, 70000), ErrOverpayment)
}
