package customer

import (
	"strings"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CustomerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Gender  string `json:"gender"`
	Deleted bool   `json:"deleted,omitempty"`
}

type CustomerStatsResponse struct {
	CustomerID       uint    `json:"customer_id"`
	TotalSpent       float64 `json:"total_spent"`
	TransactionCount int64   `json:"transaction_count"`
	LastTransaction  string  `json:"last_transaction,omitempty"`
}

type CreateCustomerRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Gender string `json:"gender"`
}

type UpdateCustomerRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Gender *string `json:"gender"`
}

func toCustomerResponse(cust models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      cust.ID,
		Name:    cust.Name,
		Phone:   cust.Phone,
		Gender:  cust.Gender,
		Deleted: cust.DeletedAt.Valid,
	}
}

// GET /api/customers?q=
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.Customer{})

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			like := "%" + strings.ToLower(q) + "%"
			query = query.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
		}

		var customers []models.Customer
		if err := query.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list customers")
		}

		res := make([]CustomerResponse, 0, len(customers))
		for _, cust := range customers {
			res = append(res, toCustomerResponse(cust))
		}
		return c.JSON(res)
	}
}

// GET /api/customers/:id
// Soft-deleted customers remain resolvable for historical transactions.
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.Unscoped().First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		return c.JSON(toCustomerResponse(cust))
	}
}

// GET /api/customers/:id/stats
// Derived on demand, nothing is stored on the customer row.
func CustomerStatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.Unscoped().First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		res := CustomerStatsResponse{CustomerID: cust.ID}

		database.DB.Model(&models.Transaction{}).
			Where("customer_id = ?", cust.ID).
			Count(&res.TransactionCount)
		database.DB.Model(&models.Transaction{}).
			Where("customer_id = ?", cust.ID).
			Select("COALESCE(SUM(total), 0)").
			Scan(&res.TotalSpent)

		var last models.Transaction
		if err := database.DB.Where("customer_id = ?", cust.ID).
			Order("created_at DESC").
			First(&last).Error; err == nil {
			res.LastTransaction = last.CreatedAt.Format("2006-01-02 15:04:05")
		}

		return c.JSON(res)
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		cust := models.Customer{
			Name:   body.Name,
			Phone:  strings.TrimSpace(body.Phone),
			Gender: strings.TrimSpace(body.Gender),
		}
		if err := database.DB.Create(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create customer")
		}

		return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(cust))
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			cust.Name = name
		}
		if body.Phone != nil {
			cust.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Gender != nil {
			cust.Gender = strings.TrimSpace(*body.Gender)
		}

		if err := database.DB.Save(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update customer")
		}

		return c.JSON(toCustomerResponse(cust))
	}
}

// DELETE /api/customers/:id (soft delete)
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cust models.Customer
		if err := database.DB.First(&cust, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		if err := database.DB.Delete(&cust).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete customer")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
