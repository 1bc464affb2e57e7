package purchasing

import (
	"errors"

	"kasirpos-backend/internal/models"
)

var ErrOverpayment = errors.New("payment exceeds the remaining debt")

// DerivePaymentStatus: status follows from paid vs total, never stored
// independently of those two numbers.
func DerivePaymentStatus(total, paid float64) models.PaymentStatus {
	switch {
	case paid <= 0:
		return models.PaymentStatusUnpaid
	case paid < total:
		return models.PaymentStatusPartial
	default:
		return models.PaymentStatusPaid
	}
}

// RemainingDebt = total - paid, never negative.
func RemainingDebt(total, paid float64) float64 {
	if paid >= total {
		return 0
	}
	return total - paid
}

// ValidatePayment rejects an amount that would push paid past total.
func ValidatePayment(total, alreadyPaid, amount float64) error {
	if amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	if alreadyPaid+amount > total {
		return ErrOverpayment
	}
	return nil
}
