package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type BulkImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Expected columns: Name | SKU | Category | Unit | Price | Cost | Stock | Min Stock
const bulkImportColumns = 8

func parseCell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// commas are stripped only when they form proper thousands groups
// ("1,500" or "12,345.67"); anything else ("1,5") could be a decimal
// comma and is rejected instead of silently misread.
var thousandsPattern = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)

func parseFloatCell(row []string, idx int) (float64, error) {
	raw := parseCell(row, idx)
	if raw == "" {
		return 0, nil
	}
	if strings.Contains(raw, ",") {
		if !thousandsPattern.MatchString(raw) {
			return 0, fmt.Errorf("ambiguous number %q", raw)
		}
		raw = strings.ReplaceAll(raw, ",", "")
	}
	return strconv.ParseFloat(raw, 64)
}

// POST /api/admin/products/import (admin only, multipart "file")
// Rows with a known SKU are skipped, never overwritten.
func BulkImportProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Only .xlsx files are supported")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not open uploaded file: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read Excel file: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel file has no sheets")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read sheet: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel file is empty")
		}

		// first row is a header when it mentions name/product
		startIndex := 0
		firstCell := strings.ToUpper(parseCell(rows[0], 0))
		if strings.Contains(firstCell, "NAME") || strings.Contains(firstCell, "PRODUCT") || strings.Contains(firstCell, "NAMA") {
			startIndex = 1
		}

		result := BulkImportResponse{Errors: make([]string, 0)}
		categoryCache := make(map[string]uint)

		for i := startIndex; i < len(rows); i++ {
			row := rows[i]
			rowNum := i + 1

			name := parseCell(row, 0)
			sku := strings.ToUpper(parseCell(row, 1))
			if name == "" && sku == "" {
				continue
			}
			if name == "" || sku == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: name and sku are required", rowNum))
				result.Skipped++
				continue
			}

			var existing models.Product
			if err := database.DB.Unscoped().Where("sku = ?", sku).First(&existing).Error; err == nil {
				result.Skipped++
				continue
			}

			unit := parseCell(row, 3)
			if unit == "" {
				unit = "pcs"
			}

			price, err := parseFloatCell(row, 4)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid price", rowNum))
				result.Skipped++
				continue
			}
			cost, err := parseFloatCell(row, 5)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid cost", rowNum))
				result.Skipped++
				continue
			}
			stock, err := parseFloatCell(row, 6)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid stock", rowNum))
				result.Skipped++
				continue
			}
			minStock, err := parseFloatCell(row, 7)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid min stock", rowNum))
				result.Skipped++
				continue
			}

			var categoryID *uint
			if categoryName := parseCell(row, 2); categoryName != "" {
				if id, ok := categoryCache[strings.ToLower(categoryName)]; ok {
					categoryID = &id
				} else {
					var category models.Category
					err := database.DB.Where("LOWER(name) = ?", strings.ToLower(categoryName)).First(&category).Error
					if err != nil {
						category = models.Category{Name: categoryName}
						if err := database.DB.Create(&category).Error; err != nil {
							result.Errors = append(result.Errors, fmt.Sprintf("row %d: could not create category %q", rowNum, categoryName))
							result.Skipped++
							continue
						}
					}
					categoryCache[strings.ToLower(categoryName)] = category.ID
					categoryID = &category.ID
				}
			}

			p := models.Product{
				Name:         name,
				SKU:          sku,
				CategoryID:   categoryID,
				Type:         models.ProductTypeFinished,
				Price:        price,
				Cost:         cost,
				CurrentStock: stock,
				MinStock:     minStock,
				Unit:         unit,
			}
			if err := database.DB.Create(&p).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
				result.Skipped++
				continue
			}

			if p.CurrentStock > 0 {
				database.DB.Create(&models.StockMovement{
					ProductID: p.ID,
					Type:      models.MovementTypeIn,
					Quantity:  p.CurrentStock,
					Note:      "bulk import",
				})
			}

			result.Imported++
		}

		return c.JSON(result)
	}
}
