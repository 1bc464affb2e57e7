package models

import "time"

type SavedOrderStatus string

const (
	SavedOrderStatusSaved   SavedOrderStatus = "saved"
	SavedOrderStatusPartial SavedOrderStatus = "partial"
	SavedOrderStatusPaid    SavedOrderStatus = "paid"
)

// SavedOrder: a cart set aside before payment, resumable later.
// Consumed (deleted) when loaded back into the active cart.
type SavedOrder struct {
	ID          uint   `gorm:"primaryKey"`
	Number      string `gorm:"size:30;uniqueIndex;not null"`
	UserID      uint   `gorm:"index;not null"`
	CustomerID  *uint  `gorm:"index"`
	Customer    *Customer
	Items       []SavedOrderItem
	DiscountPct float64          `gorm:"not null;default:0"`
	Total       float64          `gorm:"not null"`
	Status      SavedOrderStatus `gorm:"size:10;not null;default:'saved'"`
	SavedAt     time.Time        `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SavedOrderItem struct {
	ID           uint `gorm:"primaryKey"`
	SavedOrderID uint `gorm:"index;not null"`
	ProductID    uint `gorm:"index;not null"`
	ProductName  string  `gorm:"size:100;not null"`
	SKU          string  `gorm:"size:50"`
	Price        float64 `gorm:"not null"`
	Quantity     float64 `gorm:"not null"`
	Subtotal     float64 `gorm:"not null"`
	CreatedAt    time.Time
}
