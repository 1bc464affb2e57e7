package stock

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"kasirpos-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWasteCSVHeaderOnly(t *testing.T) {
	data, err := BuildWasteCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Date", "Product", "SKU", "Quantity", "Unit", "Unit Cost", "Total Value", "Reason"}, rows[0])
}

func TestBuildWasteCSVRows(t *testing.T) {
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	entries := []models.StockWaste{
		{
			Product:  models.Product{Name: "Susu UHT", SKU: "SUSU-01"},
			Date:     date,
			Quantity: 2,
			Unit:     "box",
			BaseQty:  24,
			UnitCost: 5000,
			Reason:   "expired",
		},
	}

	data, err := BuildWasteCSV(entries)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// total value is unit cost times the base quantity
	assert.Equal(t, []string{"2026-08-20", "Susu UHT", "SUSU-01", "2.00", "box", "5000.00", "120000.00", "expired"}, rows[1])
}

func TestBuildWasteCSVQuotesReason(t *testing.T) {
	entries := []models.StockWaste{
		{
			Product:  models.Product{Name: "Gula", SKU: "GULA-01"},
			Date:     time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC),
			Quantity: 1,
			Unit:     "kg",
			BaseQty:  1,
			UnitCost: 15000,
			Reason:   `spilled, bag torn "badly"`,
		},
	}

	data, err := BuildWasteCSV(entries)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `spilled, bag torn "badly"`, rows[1][7])
}
