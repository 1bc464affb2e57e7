package shift

import (
	"errors"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrShiftAlreadyOpen = errors.New("an open shift already exists for this user")
	ErrShiftClosed      = errors.New("shift is already closed")
	ErrNoOpenShift      = errors.New("no open shift for this user")
)

// EnsureCanOpen: the one-open-shift-per-user invariant. A user may only
// open a shift when they have none, or their latest one is closed.
func EnsureCanOpen(existing *models.Shift) error {
	if existing != nil && existing.Status == models.ShiftStatusOpen {
		return ErrShiftAlreadyOpen
	}
	return nil
}

// EnsureCanClose: closed shifts are terminal, no further mutations.
func EnsureCanClose(s *models.Shift) error {
	if s == nil {
		return ErrNoOpenShift
	}
	if s.Status == models.ShiftStatusClosed {
		return ErrShiftClosed
	}
	return nil
}

// CloseSummary computes the expected drawer cash and the declared
// difference on close. Only cash sales move physical money.
func CloseSummary(openingBalance, cashSales, declared float64) (expected, difference float64) {
	expected = openingBalance + cashSales
	difference = declared - expected
	return expected, difference
}

// CurrentOpen returns the user's open shift, or nil when none exists.
func CurrentOpen(userID uint) (*models.Shift, error) {
	var s models.Shift
	err := database.DB.
		Where("user_id = ? AND status = ?", userID, models.ShiftStatusOpen).
		Order("opened_at DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
