package purchasing

import (
	"strings"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SupplierResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Deleted bool   `json:"deleted,omitempty"`
}

type CreateSupplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateSupplierRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func toSupplierResponse(s models.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Address: s.Address,
		Deleted: s.DeletedAt.Valid,
	}
}

// GET /api/suppliers?q=
func ListSuppliersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.Supplier{})

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			like := "%" + strings.ToLower(q) + "%"
			query = query.Where("LOWER(name) LIKE ?", like)
		}

		var suppliers []models.Supplier
		if err := query.Order("name asc").Find(&suppliers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list suppliers")
		}

		res := make([]SupplierResponse, 0, len(suppliers))
		for _, s := range suppliers {
			res = append(res, toSupplierResponse(s))
		}
		return c.JSON(res)
	}
}

// GET /api/suppliers/:id
func GetSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Supplier
		if err := database.DB.Unscoped().First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		return c.JSON(toSupplierResponse(s))
	}
}

// POST /api/suppliers
func CreateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		s := models.Supplier{
			Name:    body.Name,
			Phone:   strings.TrimSpace(body.Phone),
			Address: strings.TrimSpace(body.Address),
		}
		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create supplier")
		}

		return c.Status(fiber.StatusCreated).JSON(toSupplierResponse(s))
	}
}

// PUT /api/suppliers/:id
func UpdateSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Supplier
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		var body UpdateSupplierRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			s.Name = name
		}
		if body.Phone != nil {
			s.Phone = strings.TrimSpace(*body.Phone)
		}
		if body.Address != nil {
			s.Address = strings.TrimSpace(*body.Address)
		}

		if err := database.DB.Save(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update supplier")
		}

		return c.JSON(toSupplierResponse(s))
	}
}

// DELETE /api/suppliers/:id (soft delete)
func DeleteSupplierHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var s models.Supplier
		if err := database.DB.First(&s, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
		}

		var openDebt int64
		database.DB.Model(&models.PurchaseInvoice{}).
			Where("supplier_id = ? AND payment_status <> ?", s.ID, models.PaymentStatusPaid).
			Count(&openDebt)
		if openDebt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Supplier still has unpaid invoices")
		}

		if err := database.DB.Delete(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete supplier")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
