package shift

import (
	"time"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type OpenShiftRequest struct {
	OpeningBalance float64 `json:"opening_balance"`
}

type CloseShiftRequest struct {
	ClosingBalance float64 `json:"closing_balance"`
}

type ShiftResponse struct {
	ID             uint               `json:"id"`
	UserID         uint               `json:"user_id"`
	OpeningBalance float64            `json:"opening_balance"`
	ClosingBalance *float64           `json:"closing_balance,omitempty"`
	ExpectedCash   *float64           `json:"expected_cash,omitempty"`
	Difference     *float64           `json:"difference,omitempty"`
	Status         models.ShiftStatus `json:"status"`
	OpenedAt       string             `json:"opened_at"`
	ClosedAt       *string            `json:"closed_at,omitempty"`
}

func toShiftResponse(s models.Shift) ShiftResponse {
	res := ShiftResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		ExpectedCash:   s.ExpectedCash,
		Difference:     s.Difference,
		Status:         s.Status,
		OpenedAt:       s.OpenedAt.Format("2006-01-02 15:04:05"),
	}
	if s.ClosedAt != nil {
		closedAt := s.ClosedAt.Format("2006-01-02 15:04:05")
		res.ClosedAt = &closedAt
	}
	return res
}

// POST /api/shifts/open
func OpenShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body OpenShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.OpeningBalance < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "opening_balance cannot be negative")
		}

		existing, err := CurrentOpen(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check shift status")
		}
		if err := EnsureCanOpen(existing); err != nil {
			return fiber.NewError(fiber.StatusConflict, "An open shift already exists, close it first")
		}

		s := models.Shift{
			UserID:         userID,
			OpeningBalance: body.OpeningBalance,
			Status:         models.ShiftStatusOpen,
			OpenedAt:       time.Now(),
		}

		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not open shift")
		}

		return c.Status(fiber.StatusCreated).JSON(toShiftResponse(s))
	}
}

// GET /api/shifts/current
func CurrentShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		s, err := CurrentOpen(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check shift status")
		}
		if s == nil {
			return fiber.NewError(fiber.StatusNotFound, "No open shift")
		}

		return c.JSON(toShiftResponse(*s))
	}
}

// GET /api/shifts/status
// Gate used by the cashier screen: redirects away when is_open is false.
func ShiftStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		s, err := CurrentOpen(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check shift status")
		}

		return c.JSON(fiber.Map{"is_open": s != nil})
	}
}

// POST /api/shifts/close
// Reached from the reporting flow. Records the declared closing balance
// against the expected cash; the shift becomes terminal.
func CloseShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body CloseShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ClosingBalance < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "closing_balance cannot be negative")
		}

		s, err := CurrentOpen(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check shift status")
		}
		if err := EnsureCanClose(s); err != nil {
			return fiber.NewError(fiber.StatusConflict, "No open shift to close")
		}

		var cashSales float64
		database.DB.Model(&models.Transaction{}).
			Where("shift_id = ? AND payment_method = ?", s.ID, models.PaymentMethodCash).
			Select("COALESCE(SUM(total), 0)").
			Scan(&cashSales)

		expected, difference := CloseSummary(s.OpeningBalance, cashSales, body.ClosingBalance)
		now := time.Now()

		s.ClosingBalance = &body.ClosingBalance
		s.ExpectedCash = &expected
		s.Difference = &difference
		s.Status = models.ShiftStatusClosed
		s.ClosedAt = &now

		if err := database.DB.Save(s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not close shift")
		}

		return c.JSON(toShiftResponse(*s))
	}
}

// GET /api/shifts
func ListShiftsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		query := database.DB.Where("user_id = ?", userID)

		// admins may inspect any user's shift history
		if role, ok := c.Locals(auth.CtxUserRoleKey).(models.UserRole); ok && role == models.RoleAdmin {
			if uid := c.QueryInt("user_id", 0); uid > 0 {
				query = database.DB.Where("user_id = ?", uid)
			} else if c.Query("all") == "true" {
				query = database.DB
			}
		}

		var shifts []models.Shift
		if err := query.Order("opened_at DESC").Limit(100).Find(&shifts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list shifts")
		}

		res := make([]ShiftResponse, 0, len(shifts))
		for _, s := range shifts {
			res = append(res, toShiftResponse(s))
		}
		return c.JSON(res)
	}
}
