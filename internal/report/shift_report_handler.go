package report

import (
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ShiftReportResponse struct {
	ShiftID          uint               `json:"shift_id"`
	CashierName      string             `json:"cashier_name"`
	Status           models.ShiftStatus `json:"status"`
	OpenedAt         string             `json:"opened_at"`
	ClosedAt         *string            `json:"closed_at,omitempty"`
	OpeningBalance   float64            `json:"opening_balance"`
	ClosingBalance   *float64           `json:"closing_balance,omitempty"`
	ExpectedCash     *float64           `json:"expected_cash,omitempty"`
	Difference       *float64           `json:"difference,omitempty"`
	TransactionCount int                `json:"transaction_count"`
	TotalSales       float64            `json:"total_sales"`
	ByMethod         map[string]float64 `json:"by_method"`
}

// GET /api/reports/shifts/:id
// Everything a cashier needs to reconcile a single shift.
func GetShiftReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var shift models.Shift
		if err := database.DB.Preload("User").First(&shift, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found")
		}

		var transactions []models.Transaction
		if err := database.DB.Where("shift_id = ?", shift.ID).Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load shift transactions")
		}

		res := ShiftReportResponse{
			ShiftID:        shift.ID,
			CashierName:    shift.User.Name,
			Status:         shift.Status,
			OpenedAt:       shift.OpenedAt.Format("2006-01-02 15:04:05"),
			OpeningBalance: shift.OpeningBalance,
			ClosingBalance: shift.ClosingBalance,
			ExpectedCash:   shift.ExpectedCash,
			Difference:     shift.Difference,
			ByMethod:       map[string]float64{},
		}
		if shift.ClosedAt != nil {
			s := shift.ClosedAt.Format("2006-01-02 15:04:05")
			res.ClosedAt = &s
		}

		for _, t := range transactions {
			res.TransactionCount++
			res.TotalSales += t.Total
			res.ByMethod[string(t.PaymentMethod)] += t.Total
		}

		return c.JSON(res)
	}
}
