package stock

import (
	"fmt"
	"time"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/catalog"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"
	"kasirpos-backend/internal/notification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateWasteRequest struct {
	Date      string  `json:"date"` // "2026-08-28", defaults to today
	ProductID uint    `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"` // empty means the product's base unit
	Reason    string  `json:"reason"`
}

type WasteResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Date        string  `json:"date"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
	TotalValue  float64 `json:"total_value"`
	Reason      string  `json:"reason"`
	CreatedAt   string  `json:"created_at"`
}

func toWasteResponse(e models.StockWaste) WasteResponse {
	return WasteResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: e.Product.Name,
		SKU:         e.Product.SKU,
		Date:        e.Date.Format("2006-01-02"),
		Quantity:    e.Quantity,
		Unit:        e.Unit,
		UnitCost:    e.UnitCost,
		TotalValue:  e.UnitCost * e.BaseQty,
		Reason:      e.Reason,
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func wasteRangeQuery(c *fiber.Ctx) *gorm.DB {
	query := database.DB.
		Preload("Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })

	if dateFrom := c.Query("date_from"); dateFrom != "" {
		if d, err := time.Parse("2006-01-02", dateFrom); err == nil {
			query = query.Where("date >= ?", d)
		}
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		if d, err := time.Parse("2006-01-02", dateTo); err == nil {
			d = d.Add(24*time.Hour - time.Second)
			query = query.Where("date <= ?", d)
		}
	}
	return query
}

// POST /api/waste
// Records the write-off and decrements stock in one transaction.
func CreateWasteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body CreateWasteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than 0")
		}
		if len(body.Reason) < 3 {
			return fiber.NewError(fiber.StatusBadRequest, "reason is required (at least 3 characters)")
		}

		date := time.Now()
		if body.Date != "" {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date format must be 'YYYY-MM-DD'")
			}
			date = d
		}

		var product models.Product
		if err := database.DB.Preload("Conversions").First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Product not found")
		}

		unit := body.Unit
		if unit == "" {
			unit = product.Unit
		}
		baseQty, err := catalog.ToBaseQuantity(product, body.Quantity, unit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if baseQty > product.CurrentStock {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("Cannot waste more than the current stock (%.2f %s)", product.CurrentStock, product.Unit))
		}

		entry := models.StockWaste{
			ProductID: product.ID,
			Date:      date,
			Quantity:  body.Quantity,
			Unit:      unit,
			BaseQty:   baseQty,
			UnitCost:  product.Cost,
			Reason:    body.Reason,
			CreatedBy: userID,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				UpdateColumn("current_stock", gorm.Expr("current_stock - ?", baseQty)).Error; err != nil {
				return err
			}
			movement := models.StockMovement{
				ProductID: product.ID,
				Type:      models.MovementTypeOut,
				Quantity:  baseQty,
				Reference: fmt.Sprintf("waste:%d", entry.ID),
				Note:      entry.Reason,
			}
			return tx.Create(&movement).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record waste entry")
		}

		if err := database.DB.First(&product, product.ID).Error; err == nil {
			if product.MinStock > 0 && product.CurrentStock <= product.MinStock {
				_ = notification.NotifyLowStock(product)
			}
		}

		entry.Product = product
		return c.Status(fiber.StatusCreated).JSON(toWasteResponse(entry))
	}
}

// GET /api/waste?date_from=&date_to=
func ListWasteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var entries []models.StockWaste
		if err := wasteRangeQuery(c).
			Order("date DESC, created_at DESC").
			Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list waste entries")
		}

		res := make([]WasteResponse, 0, len(entries))
		for _, e := range entries {
			res = append(res, toWasteResponse(e))
		}
		return c.JSON(res)
	}
}

// GET /api/waste/export?date_from=&date_to=
// Waste history as a CSV download.
func ExportWasteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var entries []models.StockWaste
		if err := wasteRangeQuery(c).
			Order("date ASC, created_at ASC").
			Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load waste entries")
		}

		data, err := BuildWasteCSV(entries)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build CSV")
		}

		filename := fmt.Sprintf("waste-history-%s.csv", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(data)
	}
}
