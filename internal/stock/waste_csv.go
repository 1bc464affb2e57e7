package stock

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"kasirpos-backend/internal/models"
)

// Fixed column set of the waste-history download.
var wasteCSVHeader = []string{"Date", "Product", "SKU", "Quantity", "Unit", "Unit Cost", "Total Value", "Reason"}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// BuildWasteCSV renders waste entries (with Product preloaded) into the
// export format. Total value is unit cost times the base quantity.
func BuildWasteCSV(entries []models.StockWaste) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(wasteCSVHeader); err != nil {
		return nil, err
	}

	for _, e := range entries {
		record := []string{
			e.Date.Format("2006-01-02"),
			e.Product.Name,
			e.Product.SKU,
			formatAmount(e.Quantity),
			e.Unit,
			formatAmount(e.UnitCost),
			formatAmount(e.UnitCost * e.BaseQty),
			e.Reason,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
