package catalog

import (
	"strings"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ConversionView struct {
	Unit   string  `json:"unit"`
	Factor float64 `json:"factor"`
}

type ProductResponse struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	SKU          string             `json:"sku"`
	CategoryID   *uint              `json:"category_id,omitempty"`
	CategoryName string             `json:"category_name,omitempty"`
	Type         models.ProductType `json:"type"`
	Price        float64            `json:"price"`
	Cost         float64            `json:"cost"`
	CurrentStock float64            `json:"current_stock"`
	MinStock     float64            `json:"min_stock"`
	Unit         string             `json:"unit"`
	Conversions  []ConversionView   `json:"conversions,omitempty"`
	Deleted      bool               `json:"deleted,omitempty"`
}

type CreateProductRequest struct {
	Name        string             `json:"name"`
	SKU         string             `json:"sku"`
	CategoryID  *uint              `json:"category_id"`
	Type        models.ProductType `json:"type"`
	Price       float64            `json:"price"`
	Cost        float64            `json:"cost"`
	InitialStock float64           `json:"initial_stock"`
	MinStock    float64            `json:"min_stock"`
	Unit        string             `json:"unit"`
	Conversions []ConversionView   `json:"conversions"`
}

type UpdateProductRequest struct {
	Name        *string             `json:"name"`
	SKU         *string             `json:"sku"`
	CategoryID  *uint               `json:"category_id"`
	Type        *models.ProductType `json:"type"`
	Price       *float64            `json:"price"`
	Cost        *float64            `json:"cost"`
	MinStock    *float64            `json:"min_stock"`
	Unit        *string             `json:"unit"`
	Conversions *[]ConversionView   `json:"conversions"`
}

func toProductResponse(p models.Product) ProductResponse {
	res := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		CategoryID:   p.CategoryID,
		Type:         p.Type,
		Price:        p.Price,
		Cost:         p.Cost,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Unit:         p.Unit,
		Deleted:      p.DeletedAt.Valid,
	}
	if p.Category != nil {
		res.CategoryName = p.Category.Name
	}
	for _, conv := range p.Conversions {
		res.Conversions = append(res.Conversions, ConversionView{Unit: conv.Unit, Factor: conv.Factor})
	}
	return res
}

func validProductType(t models.ProductType) bool {
	switch t {
	case models.ProductTypeFinished, models.ProductTypeRecipe, models.ProductTypeRaw:
		return true
	}
	return false
}

// GET /api/products?q=&category_id=&low_stock=true
// Soft-deleted products never appear here.
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Model(&models.Product{}).
			Preload("Category").
			Preload("Conversions")

		if q := strings.TrimSpace(c.Query("q")); q != "" {
			like := "%" + strings.ToLower(q) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like)
		}
		if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
			query = query.Where("category_id = ?", categoryID)
		}
		if c.Query("low_stock") == "true" {
			query = query.Where("min_stock > 0 AND current_stock <= min_stock")
		}

		var products []models.Product
		if err := query.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
// Resolves soft-deleted products too, so historical transactions can
// still display them.
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.Unscoped().
			Preload("Category").
			Preload("Conversions").
			First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		return c.JSON(toProductResponse(p))
	}
}

// POST /api/admin/products (admin only)
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.SKU = strings.ToUpper(strings.TrimSpace(body.SKU))
		body.Unit = strings.TrimSpace(body.Unit)

		if body.Name == "" || body.SKU == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name, sku and unit are required")
		}
		if body.Price < 0 || body.Cost < 0 || body.InitialStock < 0 || body.MinStock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Amounts cannot be negative")
		}
		if body.Type == "" {
			body.Type = models.ProductTypeFinished
		}
		if !validProductType(body.Type) {
			return fiber.NewError(fiber.StatusBadRequest, "Type must be finished, recipe or raw")
		}
		if body.CategoryID != nil {
			var category models.Category
			if err := database.DB.First(&category, "id = ?", *body.CategoryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Category not found")
			}
		}

		p := models.Product{
			Name:         body.Name,
			SKU:          body.SKU,
			CategoryID:   body.CategoryID,
			Type:         body.Type,
			Price:        body.Price,
			Cost:         body.Cost,
			CurrentStock: body.InitialStock,
			MinStock:     body.MinStock,
			Unit:         body.Unit,
		}
		for _, conv := range body.Conversions {
			if conv.Unit == "" || conv.Factor <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Conversion unit and a positive factor are required")
			}
			p.Conversions = append(p.Conversions, models.UnitConversion{Unit: conv.Unit, Factor: conv.Factor})
		}

		if err := database.DB.Create(&p).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "This SKU is already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create product")
		}

		if p.CurrentStock > 0 {
			movement := models.StockMovement{
				ProductID: p.ID,
				Type:      models.MovementTypeIn,
				Quantity:  p.CurrentStock,
				Note:      "initial stock",
			}
			database.DB.Create(&movement)
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
	}
}

// PUT /api/admin/products/:id (admin only)
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.Preload("Conversions").First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			p.Name = name
		}
		if body.SKU != nil {
			sku := strings.ToUpper(strings.TrimSpace(*body.SKU))
			if sku == "" {
				return fiber.NewError(fiber.StatusBadRequest, "SKU cannot be empty")
			}
			p.SKU = sku
		}
		if body.CategoryID != nil {
			var category models.Category
			if err := database.DB.First(&category, "id = ?", *body.CategoryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Category not found")
			}
			p.CategoryID = body.CategoryID
		}
		if body.Type != nil {
			if !validProductType(*body.Type) {
				return fiber.NewError(fiber.StatusBadRequest, "Type must be finished, recipe or raw")
			}
			p.Type = *body.Type
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative")
			}
			p.Price = *body.Price
		}
		if body.Cost != nil {
			if *body.Cost < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Cost cannot be negative")
			}
			p.Cost = *body.Cost
		}
		if body.MinStock != nil {
			if *body.MinStock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Minimum stock cannot be negative")
			}
			p.MinStock = *body.MinStock
		}
		if body.Unit != nil {
			unit := strings.TrimSpace(*body.Unit)
			if unit == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Unit cannot be empty")
			}
			p.Unit = unit
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if body.Conversions != nil {
				if err := tx.Where("product_id = ?", p.ID).Delete(&models.UnitConversion{}).Error; err != nil {
					return err
				}
				p.Conversions = nil
				for _, conv := range *body.Conversions {
					if conv.Unit == "" || conv.Factor <= 0 {
						return fiber.NewError(fiber.StatusBadRequest, "Conversion unit and a positive factor are required")
					}
					p.Conversions = append(p.Conversions, models.UnitConversion{ProductID: p.ID, Unit: conv.Unit, Factor: conv.Factor})
				}
			}
			return tx.Save(&p).Error
		})
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				return e
			}
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "This SKU is already in use")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update product")
		}

		return c.JSON(toProductResponse(p))
	}
}

// DELETE /api/admin/products/:id (admin only, soft delete)
// The row is retained for historical reporting; it just disappears from
// listings and search.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Product
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete product")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
