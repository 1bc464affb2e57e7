package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodQRIS     PaymentMethod = "qris"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Transaction: terminal record of a completed checkout. Immutable once
// created, so there is no UpdatedAt.
type Transaction struct {
	ID             uint   `gorm:"primaryKey"`
	Number         string `gorm:"size:30;uniqueIndex;not null"`
	ShiftID        *uint  `gorm:"index"`
	UserID         uint   `gorm:"index;not null"`
	CustomerID     *uint  `gorm:"index"`
	Customer       *Customer
	Items          []TransactionItem
	Subtotal       float64 `gorm:"not null"`
	DiscountPct    float64 `gorm:"not null;default:0"`
	DiscountAmount float64 `gorm:"not null;default:0"`
	TaxRate        float64 `gorm:"not null;default:0"`
	TaxMode        string  `gorm:"size:20"`
	TaxAmount      float64 `gorm:"not null;default:0"`
	Total          float64 `gorm:"not null"`
	PaymentMethod  PaymentMethod `gorm:"size:20;not null"`
	PaidAmount     float64       `gorm:"not null"`
	ChangeAmount   float64       `gorm:"not null;default:0"`
	CreatedAt      time.Time     `gorm:"index"`
}

type TransactionItem struct {
	ID            uint `gorm:"primaryKey"`
	TransactionID uint `gorm:"index;not null"`
	ProductID     uint `gorm:"index;not null"`
	ProductName   string  `gorm:"size:100;not null"` // denormalized, survives product soft delete
	SKU           string  `gorm:"size:50"`
	Price         float64 `gorm:"not null"`
	Quantity      float64 `gorm:"not null"`
	Subtotal      float64 `gorm:"not null"`
	CreatedAt     time.Time
}
