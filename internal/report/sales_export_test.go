package report

import (
	"testing"
	"time"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSalesWorkbook(t *testing.T) {
	customer := &models.Customer{ID: 3, Name: "Budi"}
	transactions := []models.Transaction{
		{
			Number:        "TRX-AAAA1111",
			UserID:        1,
			Customer:      customer,
			Subtotal:      100000,
			DiscountAmount: 10000,
			TaxAmount:     9000,
			Total:         99000,
			PaymentMethod: models.PaymentMethodCash,
			PaidAmount:    100000,
			ChangeAmount:  1000,
			CreatedAt:     time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			Number:        "TRX-BBBB2222",
			UserID:        1,
			Subtotal:      50000,
			Total:         50000,
			PaymentMethod: models.PaymentMethodQRIS,
			PaidAmount:    50000,
			CreatedAt:     time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC),
		},
	}
	users := map[uint]string{1: "Siti"}

	f, err := BuildSalesWorkbook(transactions, users)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Number", header)

	number, _ := f.GetCellValue(sheet, "A2")
	assert.Equal(t, "TRX-AAAA1111", number)

	cashier, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "Siti", cashier)

	customerCell, _ := f.GetCellValue(sheet, "D2")
	assert.Equal(t, "Budi", customerCell)

	// anonymous sale leaves the customer column blank
	customerCell, _ = f.GetCellValue(sheet, "D3")
	assert.Empty(t, customerCell)

	label, _ := f.GetCellValue(sheet, "A4")
	assert.Equal(t, "TOTAL", label)

	total, _ := f.GetCellValue(sheet, "H4")
	assert.Equal(t, "149000", total)
}

func TestBuildSalesWorkbookEmpty(t *testing.T) {
	f, err := BuildSalesWorkbook(nil, nil)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	label, _ := f.GetCellValue(sheet, "A2")
	assert.Equal(t, "TOTAL", label)
}
