package models

import (
	"time"

	"gorm.io/gorm"
)

type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:30"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
