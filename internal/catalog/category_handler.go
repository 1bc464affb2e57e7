package catalog

import (
	"strings"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GET /api/categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.Category
		if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list categories")
		}

		res := make([]CategoryResponse, 0, len(categories))
		for _, cat := range categories {
			res = append(res, CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description})
		}
		return c.JSON(res)
	}
}

// POST /api/admin/categories (admin only)
func CreateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		cat := models.Category{Name: body.Name, Description: strings.TrimSpace(body.Description)}
		if err := database.DB.Create(&cat).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "A category with this name already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create category")
		}

		return c.Status(fiber.StatusCreated).JSON(CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description})
	}
}

// PUT /api/admin/categories/:id (admin only)
func UpdateCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}

		var body UpdateCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			cat.Name = name
		}
		if body.Description != nil {
			cat.Description = strings.TrimSpace(*body.Description)
		}

		if err := database.DB.Save(&cat).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "A category with this name already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update category")
		}

		return c.JSON(CategoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description})
	}
}

// DELETE /api/admin/categories/:id (admin only)
// Products keep working without a category; the reference is detached.
func DeleteCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}

		if err := database.DB.Model(&models.Product{}).
			Where("category_id = ?", cat.ID).
			Update("category_id", nil).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not detach products")
		}

		if err := database.DB.Delete(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete category")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
