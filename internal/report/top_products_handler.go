package report

import (
	"time"

	"kasirpos-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type TopProductRow struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	QuantitySold float64 `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// GET /api/reports/top-products?from=&to=&limit=
// Best sellers by quantity over a date range.
func GetTopProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fromStr := c.Query("from")
		toStr := c.Query("to")
		if fromStr == "" || toStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "from and to are required (YYYY-MM-DD)")
		}

		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from date")
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid to date")
		}
		end := to.Add(24*time.Hour - time.Second)

		limit := c.QueryInt("limit", 10)
		if limit <= 0 || limit > 100 {
			limit = 10
		}

		var rows []TopProductRow
		err = database.DB.
			Table("transaction_items").
			Select("transaction_items.product_id, transaction_items.product_name, transaction_items.sku, SUM(transaction_items.quantity) AS quantity_sold, SUM(transaction_items.subtotal) AS revenue").
			Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
			Where("transactions.created_at >= ? AND transactions.created_at <= ?", from, end).
			Group("transaction_items.product_id, transaction_items.product_name, transaction_items.sku").
			Order("quantity_sold DESC").
			Limit(limit).
			Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not compute top products")
		}

		if rows == nil {
			rows = []TopProductRow{}
		}
		return c.JSON(rows)
	}
}
