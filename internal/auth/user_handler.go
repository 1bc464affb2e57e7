package auth

import (
	"strings"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// POST /api/admin/users (admin only)
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "Name, email and a password of at least 8 characters are required")
		}
		if body.Role != models.RoleAdmin && body.Role != models.RoleCashier {
			return fiber.NewError(fiber.StatusBadRequest, "Role must be admin or cashier")
		}

		var existing models.User
		if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "Email is already in use")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user")
		}

		return c.Status(fiber.StatusCreated).JSON(UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		})
	}
}

// GET /api/admin/users (admin only)
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("name asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}

		res := make([]UserResponse, 0, len(users))
		for _, u := range users {
			res = append(res, UserResponse{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
				Role:  u.Role,
			})
		}
		return c.JSON(res)
	}
}
