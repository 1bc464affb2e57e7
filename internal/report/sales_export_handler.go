package report

import (
	"fmt"
	"time"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var salesSheetHeader = []string{
	"Number", "Date", "Cashier", "Customer",
	"Subtotal", "Discount", "Tax", "Total",
	"Payment Method", "Paid", "Change",
}

// BuildSalesWorkbook renders transactions (with User and Customer
// preloaded) into a single-sheet workbook with a totals row at the end.
func BuildSalesWorkbook(transactions []models.Transaction, users map[uint]string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, title := range salesSheetHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	var totalSales float64
	for i, t := range transactions {
		row := i + 2

		customer := ""
		if t.Customer != nil {
			customer = t.Customer.Name
		}
		values := []any{
			t.Number,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			users[t.UserID],
			customer,
			t.Subtotal,
			t.DiscountAmount,
			t.TaxAmount,
			t.Total,
			string(t.PaymentMethod),
			t.PaidAmount,
			t.ChangeAmount,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalSales += t.Total
	}

	totalRow := len(transactions) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "TOTAL"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("H%d", totalRow), totalSales); err != nil {
		return nil, err
	}

	return f, nil
}

// GET /api/reports/sales/export?from=&to=
// Sales history as an XLSX download.
func ExportSalesHandler() fiber.Handler {
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

		var transactions []models.Transaction
		if err := database.DB.
			Preload("Customer", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			Where("created_at >= ? AND created_at <= ?", from, end).
			Order("created_at ASC").
			Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load transactions")
		}

		var userRows []models.User
		if err := database.DB.Find(&userRows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load users")
		}
		users := make(map[uint]string, len(userRows))
		for _, u := range userRows {
			users[u.ID] = u.Name
		}

		f, err := BuildSalesWorkbook(transactions, users)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not write workbook")
		}

		filename := fmt.Sprintf("sales-%s-to-%s.xlsx", fromStr, toStr)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(buf.Bytes())
	}
}
