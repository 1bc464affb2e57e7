package models

import "time"

type NotificationType string

const (
	NotificationLowStock          NotificationType = "low_stock"
	NotificationUnpaidTransaction NotificationType = "unpaid_transaction"
	NotificationSavedOrder        NotificationType = "saved_order"
	NotificationAccountUpdate     NotificationType = "account_update"
	NotificationAccountError      NotificationType = "account_error"
)

// Notification: process-wide event log surfaced as a bell icon / toast.
// Purely informational, never drives a business decision.
type Notification struct {
	ID        uint             `gorm:"primaryKey"`
	Type      NotificationType `gorm:"size:30;not null;index"`
	Title     string           `gorm:"size:100;not null"`
	Message   string           `gorm:"size:500;not null"`
	Data      string           `gorm:"type:jsonb"` // optional payload for the client
	Read      bool             `gorm:"not null;default:false;index"`
	CreatedAt time.Time        `gorm:"index"`
}
