package stock

import (
	"time"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MovementResponse struct {
	ID          uint                `json:"id"`
	ProductID   uint                `json:"product_id"`
	ProductName string              `json:"product_name"`
	Type        models.MovementType `json:"type"`
	Quantity    float64             `json:"quantity"`
	Reference   string              `json:"reference,omitempty"`
	Note        string              `json:"note,omitempty"`
	CreatedAt   string              `json:"created_at"`
}

// GET /api/stock-movements?product_id=&type=&date_from=&date_to=
func ListMovementsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.
			Preload("Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })

		if productID := c.QueryInt("product_id", 0); productID > 0 {
			query = query.Where("product_id = ?", productID)
		}
		if movementType := c.Query("type"); movementType != "" {
			query = query.Where("type = ?", movementType)
		}
		if dateFrom := c.Query("date_from"); dateFrom != "" {
			if d, err := time.Parse("2006-01-02", dateFrom); err == nil {
				query = query.Where("created_at >= ?", d)
			}
		}
		if dateTo := c.Query("date_to"); dateTo != "" {
			if d, err := time.Parse("2006-01-02", dateTo); err == nil {
				d = d.Add(24*time.Hour - time.Second)
				query = query.Where("created_at <= ?", d)
			}
		}

		limit := c.QueryInt("limit", 200)
		if limit <= 0 || limit > 1000 {
			limit = 200
		}

		var movements []models.StockMovement
		if err := query.Order("created_at DESC").Limit(limit).Find(&movements).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list stock movements")
		}

		res := make([]MovementResponse, 0, len(movements))
		for _, m := range movements {
			res = append(res, MovementResponse{
				ID:          m.ID,
				ProductID:   m.ProductID,
				ProductName: m.Product.Name,
				Type:        m.Type,
				Quantity:    m.Quantity,
				Reference:   m.Reference,
				Note:        m.Note,
				CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}
