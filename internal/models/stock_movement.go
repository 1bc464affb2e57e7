package models

import "time"

type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeAdjustment MovementType = "adjustment"
)

// StockMovement: append-only ledger row written by every operation that
// touches a stock counter (checkout, invoice receipt, waste, opname).
type StockMovement struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	Type      MovementType `gorm:"size:12;not null"`
	Quantity  float64      `gorm:"not null"` // in base unit, always positive
	Reference string       `gorm:"size:100"` // e.g. "sale:TRX-1A2B3C4D", "opname:12"
	Note      string       `gorm:"size:255"`
	CreatedAt time.Time    `gorm:"index"`
}
