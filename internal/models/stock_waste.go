package models

import "time"

// StockWaste: append-only stock write-off with a mandatory reason.
type StockWaste struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	Date      time.Time `gorm:"index;not null"`
	Quantity  float64   `gorm:"not null"` // in the entered unit
	Unit      string    `gorm:"size:20;not null"`
	BaseQty   float64   `gorm:"not null"` // converted to the product's base unit
	UnitCost  float64   `gorm:"not null"` // product cost at time of entry
	Reason    string    `gorm:"size:255;not null"`
	CreatedBy uint
	CreatedAt time.Time
}
