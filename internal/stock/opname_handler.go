package stock

import (
	"fmt"
	"time"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/catalog"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateOpnameRequest struct {
	Date       string  `json:"date"` // defaults to today
	ProductID  uint    `json:"product_id"`
	CountedQty float64 `json:"counted_qty"`
	Unit       string  `json:"unit"` // empty means the product's base unit
	Notes      string  `json:"notes"`
}

type OpnameResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Date        string  `json:"date"`
	SystemQty   float64 `json:"system_qty"`
	CountedQty  float64 `json:"counted_qty"`
	Difference  float64 `json:"difference"`
	Unit        string  `json:"unit"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func toOpnameResponse(e models.StockOpname) OpnameResponse {
	return OpnameResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: e.Product.Name,
		Date:        e.Date.Format("2006-01-02"),
		SystemQty:   e.SystemQty,
		CountedQty:  e.CountedQty,
		Difference:  e.Difference,
		Unit:        e.Unit,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/opname
// The physical count wins: the counted quantity becomes the product's
// current stock and the difference is kept as an adjustment record.
func CreateOpnameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body CreateOpnameRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
		}
		if body.CountedQty < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "counted_qty cannot be negative")
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
		countedBase, err := catalog.ToBaseQuantity(product, body.CountedQty, unit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entry := models.StockOpname{
			ProductID:  product.ID,
			Date:       date,
			SystemQty:  product.CurrentStock,
			CountedQty: countedBase,
			Difference: countedBase - product.CurrentStock,
			Unit:       product.Unit,
			Notes:      body.Notes,
			CreatedBy:  userID,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				UpdateColumn("current_stock", countedBase).Error; err != nil {
				return err
			}
			if entry.Difference != 0 {
				qty := entry.Difference
				if qty < 0 {
					qty = -qty
				}
				movement := models.StockMovement{
					ProductID: product.ID,
					Type:      models.MovementTypeAdjustment,
					Quantity:  qty,
					Reference: fmt.Sprintf("opname:%d", entry.ID),
					Note:      fmt.Sprintf("count %.2f vs system %.2f", entry.CountedQty, entry.SystemQty),
				}
				return tx.Create(&movement).Error
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record stock count")
		}

		entry.Product = product
		return c.Status(fiber.StatusCreated).JSON(toOpnameResponse(entry))
	}
}

// GET /api/opname?date_from=&date_to=
func ListOpnameHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
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

		var entries []models.StockOpname
		if err := query.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list stock counts")
		}

		res := make([]OpnameResponse, 0, len(entries))
		for _, e := range entries {
			res = append(res, toOpnameResponse(e))
		}
		return c.JSON(res)
	}
}
