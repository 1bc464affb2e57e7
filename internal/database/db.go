package database

import (
	"log"

	"kasirpos-backend/internal/config"
	"kasirpos-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.UnitConversion{},
		&models.Customer{},
		&models.Supplier{},
		&models.PurchaseInvoice{},
		&models.PurchaseInvoiceItem{},
		&models.InvoicePayment{},
		&models.Shift{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.SavedOrder{},
		&models.SavedOrderItem{},
		&models.StockWaste{},
		&models.StockOpname{},
		&models.StockMovement{},
		&models.Notification{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("database connected, migration complete")
}
