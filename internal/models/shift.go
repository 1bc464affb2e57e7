package models

import "time"

type ShiftStatus string

const (
	ShiftStatusOpen   ShiftStatus = "open"
	ShiftStatusClosed ShiftStatus = "closed"
)

// Shift: a cashier's open/close session. At most one open shift per user;
// a closed shift is terminal and never reopened.
type Shift struct {
	ID             uint `gorm:"primaryKey"`
	UserID         uint `gorm:"index;not null"`
	User           User
	OpeningBalance float64     `gorm:"not null"`
	ClosingBalance *float64    // declared cash on close
	ExpectedCash   *float64    // opening balance + cash sales, computed on close
	Difference     *float64    // declared - expected
	Status         ShiftStatus `gorm:"size:10;not null;index"`
	OpenedAt       time.Time   `gorm:"not null"`
	ClosedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
