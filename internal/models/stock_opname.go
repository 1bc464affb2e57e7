package models

import "time"

// StockOpname: physical stock count reconciliation. The counted quantity
// becomes the product's current stock; the difference is kept for audit.
type StockOpname struct {
	ID         uint `gorm:"primaryKey"`
	ProductID  uint `gorm:"index;not null"`
	Product    Product
	Date       time.Time `gorm:"index;not null"`
	SystemQty  float64   `gorm:"not null"` // stock on record before the count
	CountedQty float64   `gorm:"not null"`
	Difference float64   `gorm:"not null"` // counted - system
	Unit       string    `gorm:"size:20;not null"`
	Notes      string    `gorm:"size:255"`
	CreatedBy  uint
	CreatedAt  time.Time
}
