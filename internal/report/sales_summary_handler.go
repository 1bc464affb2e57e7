package report

import (
	"fmt"
	"time"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SalesSummaryResponse struct {
	Period           string          `json:"period"` // "daily", "weekly", "monthly"
	StartDate        string          `json:"start_date"`
	EndDate          string          `json:"end_date"`
	TransactionCount int             `json:"transaction_count"`
	GrossSales       float64         `json:"gross_sales"` // sum of subtotals
	TotalDiscount    float64         `json:"total_discount"`
	TotalTax         float64         `json:"total_tax"`
	NetSales         float64         `json:"net_sales"` // sum of totals
	ByMethod         map[string]float64 `json:"by_method"`
	DailyBreakdown   []DailySales    `json:"daily_breakdown,omitempty"`
}

type DailySales struct {
	Date             string  `json:"date"`
	TransactionCount int     `json:"transaction_count"`
	NetSales         float64 `json:"net_sales"`
}

func loadTransactions(from, to time.Time) ([]models.Transaction, error) {
	end := to.Add(24*time.Hour - time.Second)
	var transactions []models.Transaction
	err := database.DB.
		Where("created_at >= ? AND created_at <= ?", from, end).
		Order("created_at ASC").
		Find(&transactions).Error
	return transactions, err
}

func summarize(period string, from, to time.Time, transactions []models.Transaction) SalesSummaryResponse {
	res := SalesSummaryResponse{
		Period:    period,
		StartDate: from.Format("2006-01-02"),
		EndDate:   to.Format("2006-01-02"),
		ByMethod:  map[string]float64{},
	}

	dailyMap := make(map[string]DailySales)
	current := from
	for !current.After(to) {
		dateStr := current.Format("2006-01-02")
		dailyMap[dateStr] = DailySales{Date: dateStr}
		current = current.AddDate(0, 0, 1)
	}

	for _, t := range transactions {
		res.TransactionCount++
		res.GrossSales += t.Subtotal
		res.TotalDiscount += t.DiscountAmount
		res.TotalTax += t.TaxAmount
		res.NetSales += t.Total
		res.ByMethod[string(t.PaymentMethod)] += t.Total

		dateStr := t.CreatedAt.Format("2006-01-02")
		if ds, ok := dailyMap[dateStr]; ok {
			ds.TransactionCount++
			ds.NetSales += t.Total
			dailyMap[dateStr] = ds
		}
	}

	current = from
	for !current.After(to) {
		res.DailyBreakdown = append(res.DailyBreakdown, dailyMap[current.Format("2006-01-02")])
		current = current.AddDate(0, 0, 1)
	}
	return res
}

// GET /api/reports/sales/daily?from=YYYY-MM-DD&to=YYYY-MM-DD
func GetDailySalesReportHandler() fiber.Handler {
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
		if to.Before(from) {
			return fiber.NewError(fiber.StatusBadRequest, "to must not be before from")
		}

		transactions, err := loadTransactions(from, to)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load transactions")
		}

		return c.JSON(summarize("daily", from, to, transactions))
	}
}

// GET /api/reports/sales/weekly?year=&week=
func GetWeeklySalesReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		weekStr := c.Query("week")
		if yearStr == "" || weekStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year and week are required")
		}

		var year, week int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid year")
		}
		if _, err := fmt.Sscan(weekStr, &week); err != nil || week < 1 || week > 53 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid week (1-53)")
		}

		weekStart, weekEnd := WeekBounds(year, week)

		transactions, err := loadTransactions(weekStart, weekEnd)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load transactions")
		}

		return c.JSON(summarize("weekly", weekStart, weekEnd, transactions))
	}
}

// GET /api/reports/sales/monthly?year=&month=
func GetMonthlySalesReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		yearStr := c.Query("year")
		monthStr := c.Query("month")
		if yearStr == "" || monthStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "year and month are required")
		}

		var year, month int
		if _, err := fmt.Sscan(yearStr, &year); err != nil || year < 2000 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid year")
		}
		if _, err := fmt.Sscan(monthStr, &month); err != nil || month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month")
		}

		firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		lastDay := firstDay.AddDate(0, 1, -1)

		transactions, err := loadTransactions(firstDay, lastDay)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load transactions")
		}

		return c.JSON(summarize("monthly", firstDay, lastDay, transactions))
	}
}
