package checkout

import (
	"time"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransactionItemView struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type TransactionResponse struct {
	ID             uint                  `json:"id"`
	Number         string                `json:"number"`
	CustomerID     *uint                 `json:"customer_id,omitempty"`
	CustomerName   string                `json:"customer_name,omitempty"`
	Items          []TransactionItemView `json:"items"`
	Subtotal       float64               `json:"subtotal"`
	DiscountAmount float64               `json:"discount_amount"`
	TaxAmount      float64               `json:"tax_amount"`
	Total          float64               `json:"total"`
	PaymentMethod  models.PaymentMethod  `json:"payment_method"`
	PaidAmount     float64               `json:"paid_amount"`
	ChangeAmount   float64               `json:"change_amount"`
	CreatedAt      string                `json:"created_at"`
}

func toTransactionResponse(t models.Transaction) TransactionResponse {
	items := make([]TransactionItemView, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, TransactionItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	res := TransactionResponse{
		ID:             t.ID,
		Number:         t.Number,
		CustomerID:     t.CustomerID,
		Items:          items,
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		TaxAmount:      t.TaxAmount,
		Total:          t.Total,
		PaymentMethod:  t.PaymentMethod,
		PaidAmount:     t.PaidAmount,
		ChangeAmount:   t.ChangeAmount,
		CreatedAt:      t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if t.Customer != nil {
		res.CustomerName = t.Customer.Name
	}
	return res
}

// GET /api/transactions
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Items").
			// soft-deleted customers stay resolvable on historical records
			Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })

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
		if customerID := c.QueryInt("customer_id", 0); customerID > 0 {
			query = query.Where("customer_id = ?", customerID)
		}

		limit := c.QueryInt("limit", 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}

		var transactions []models.Transaction
		if err := query.Order("created_at DESC").Limit(limit).Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list transactions")
		}

		res := make([]TransactionResponse, 0, len(transactions))
		for _, t := range transactions {
			res = append(res, toTransactionResponse(t))
		}
		return c.JSON(res)
	}
}

// GET /api/transactions/:id
func GetTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Transaction
		if err := database.DB.Preload("Items").
			Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}

		return c.JSON(toTransactionResponse(t))
	}
}
