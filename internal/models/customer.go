package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:30"`
	Gender    string `gorm:"size:10"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
