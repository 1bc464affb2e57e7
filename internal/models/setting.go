package models

import "time"

// Setting: one row per key, overwritten on update. The value is the raw
// JSON blob for that key; defaults live in the settings package.
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"size:50;uniqueIndex;not null"`
	Value     string `gorm:"type:jsonb;not null"`
	UpdatedBy uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
