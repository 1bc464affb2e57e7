package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeFinished ProductType = "finished"
	ProductTypeRecipe   ProductType = "recipe"
	ProductTypeRaw      ProductType = "raw"
)

type Product struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null;index"`
	SKU          string `gorm:"size:50;uniqueIndex;not null"`
	CategoryID   *uint  `gorm:"index"`
	Category     *Category
	Type         ProductType `gorm:"size:20;not null;default:'finished'"`
	Price        float64     `gorm:"not null"`
	Cost         float64     `gorm:"not null;default:0"`
	CurrentStock float64     `gorm:"not null;default:0"`
	MinStock     float64     `gorm:"not null;default:0"`
	Unit         string      `gorm:"size:20;not null"` // base unit (pcs, kg, liter)
	Conversions  []UnitConversion
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// UnitConversion: alternative unit for a product.
// quantity in this unit * Factor = quantity in the product's base unit.
type UnitConversion struct {
	ID        uint    `gorm:"primaryKey"`
	ProductID uint    `gorm:"index;not null"`
	Unit      string  `gorm:"size:20;not null"`
	Factor    float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
