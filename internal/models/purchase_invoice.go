package models

import "time"

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PurchaseInvoice: supplier purchase, remaining debt = Total - PaidAmount.
type PurchaseInvoice struct {
	ID            uint   `gorm:"primaryKey"`
	InvoiceNumber string `gorm:"size:50;uniqueIndex;not null"`
	SupplierID    uint   `gorm:"index;not null"`
	Supplier      Supplier
	Date          time.Time `gorm:"index;not null"`
	Items         []PurchaseInvoiceItem
	Total         float64       `gorm:"not null"`
	PaidAmount    float64       `gorm:"not null;default:0"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'unpaid'"`
	Note          string        `gorm:"size:255"`
	CreatedBy     uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PurchaseInvoiceItem struct {
	ID                uint `gorm:"primaryKey"`
	PurchaseInvoiceID uint `gorm:"index;not null"`
	ProductID         uint `gorm:"index;not null"`
	Product           Product
	Quantity          float64 `gorm:"not null"`
	Unit              string  `gorm:"size:20;not null"`
	UnitCost          float64 `gorm:"not null"`
	Subtotal          float64 `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type InvoicePayment struct {
	ID                uint `gorm:"primaryKey"`
	PurchaseInvoiceID uint `gorm:"index;not null"`
	Amount            float64 `gorm:"not null"`
	Method            string  `gorm:"size:20;not null"` // cash / transfer
	Note              string  `gorm:"size:255"`
	CreatedBy         uint
	CreatedAt         time.Time
}
