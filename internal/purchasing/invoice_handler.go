package purchasing

import (
	"errors"
	"strings"
	"time"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/catalog"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"
	"kasirpos-backend/internal/notification"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"` // empty means the product's base unit
	UnitCost  float64 `json:"unit_cost"`
}

type CreateInvoiceRequest struct {
	SupplierID    uint                 `json:"supplier_id"`
	Date          string               `json:"date"` // "2026-08-28"
	InvoiceNumber string               `json:"invoice_number"` // optional, generated when empty
	Items         []InvoiceItemRequest `json:"items"`
	PaidAmount    float64              `json:"paid_amount"` // down payment, may be 0
	Note          string               `json:"note"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Note   string  `json:"note"`
}

type InvoiceItemView struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
	Subtotal    float64 `json:"subtotal"`
}

type InvoiceResponse struct {
	ID            uint                 `json:"id"`
	InvoiceNumber string               `json:"invoice_number"`
	SupplierID    uint                 `json:"supplier_id"`
	SupplierName  string               `json:"supplier_name"`
	Date          string               `json:"date"`
	Items         []InvoiceItemView    `json:"items,omitempty"`
	Total         float64              `json:"total"`
	PaidAmount    float64              `json:"paid_amount"`
	RemainingDebt float64              `json:"remaining_debt"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	Note          string               `json:"note,omitempty"`
}

type PaymentView struct {
	ID        uint    `json:"id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

func toInvoiceResponse(inv models.PurchaseInvoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		SupplierID:    inv.SupplierID,
		SupplierName:  inv.Supplier.Name,
		Date:          inv.Date.Format("2006-01-02"),
		Total:         inv.Total,
		PaidAmount:    inv.PaidAmount,
		RemainingDebt: RemainingDebt(inv.Total, inv.PaidAmount),
		PaymentStatus: inv.PaymentStatus,
		Note:          inv.Note,
	}
	for _, it := range inv.Items {
		res.Items = append(res.Items, InvoiceItemView{
			ProductID:   it.ProductID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal,
		})
	}
	return res
}

// POST /api/invoices
// Receiving a purchase invoice increments stock for every line and
// writes the matching movement rows, all in one transaction.
func CreateInvoiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body CreateInvoiceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.SupplierID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "supplier_id is required")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "At least one item is required")
		}
		if body.PaidAmount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "paid_amount cannot be negative")
		}

		var supplier models.Supplier
		if err := database.DB.First(&supplier, "id = ?", body.SupplierID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Supplier not found")
		}

		date := time.Now()
		if body.Date != "" {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date format must be 'YYYY-MM-DD'")
			}
			date = d
		}

		number := strings.TrimSpace(body.InvoiceNumber)
		if number == "" {
			number = newInvoiceNumber()
		}

		inv := models.PurchaseInvoice{
			InvoiceNumber: number,
			SupplierID:    supplier.ID,
			Supplier:      supplier,
			Date:          date,
			Note:          strings.TrimSpace(body.Note),
			CreatedBy:     userID,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var total float64
			type received struct {
				productID uint
				baseQty   float64
			}
			var receipts []received

			for _, item := range body.Items {
				if item.ProductID == 0 || item.Quantity <= 0 || item.UnitCost < 0 {
					return errors.New("each item needs a product, a positive quantity and a non-negative unit cost")
				}

				var product models.Product
				if err := tx.Preload("Conversions").First(&product, "id = ?", item.ProductID).Error; err != nil {
					return errors.New("product not found")
				}

				unit := item.Unit
				if unit == "" {
					unit = product.Unit
				}
				baseQty, err := catalog.ToBaseQuantity(product, item.Quantity, unit)
				if err != nil {
					return err
				}

				subtotal := item.Quantity * item.UnitCost
				total += subtotal
				inv.Items = append(inv.Items, models.PurchaseInvoiceItem{
					ProductID: product.ID,
					Quantity:  item.Quantity,
					Unit:      unit,
					UnitCost:  item.UnitCost,
					Subtotal:  subtotal,
				})
				receipts = append(receipts, received{productID: product.ID, baseQty: baseQty})
			}

			if body.PaidAmount > total {
				return ErrOverpayment
			}

			inv.Total = total
			inv.PaidAmount = body.PaidAmount
			inv.PaymentStatus = DerivePaymentStatus(total, body.PaidAmount)

			if err := tx.Create(&inv).Error; err != nil {
				return err
			}

			if body.PaidAmount > 0 {
				payment := models.InvoicePayment{
					PurchaseInvoiceID: inv.ID,
					Amount:            body.PaidAmount,
					Method:            "cash",
					Note:              "down payment",
					CreatedBy:         userID,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
			}

			for _, r := range receipts {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", r.productID).
					UpdateColumn("current_stock", gorm.Expr("current_stock + ?", r.baseQty)).Error; err != nil {
					return err
				}
				movement := models.StockMovement{
					ProductID: r.productID,
					Type:      models.MovementTypeIn,
					Quantity:  r.baseQty,
					Reference: "invoice:" + inv.InvoiceNumber,
				}
				if err := tx.Create(&movement).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// surface the open debt, outside the transaction and non-fatal
		if inv.PaymentStatus != models.PaymentStatusPaid {
			_ = notification.NotifyUnpaidInvoice(inv, RemainingDebt(inv.Total, inv.PaidAmount))
		}

		// reload items with product names for the response
		database.DB.Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			First(&inv, inv.ID)

		return c.Status(fiber.StatusCreated).JSON(toInvoiceResponse(inv))
	}
}

// GET /api/invoices?supplier_id=&status=
func ListInvoicesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Preload("Supplier", func(db *gorm.DB) *gorm.DB { return db.Unscoped() })

		if supplierID := c.QueryInt("supplier_id", 0); supplierID > 0 {
			query = query.Where("supplier_id = ?", supplierID)
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("payment_status = ?", status)
		}

		var invoices []models.PurchaseInvoice
		if err := query.Order("date DESC, created_at DESC").Find(&invoices).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list invoices")
		}

		res := make([]InvoiceResponse, 0, len(invoices))
		for _, inv := range invoices {
			res = append(res, toInvoiceResponse(inv))
		}
		return c.JSON(res)
	}
}

// GET /api/invoices/:id
func GetInvoiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var inv models.PurchaseInvoice
		if err := database.DB.
			Preload("Supplier", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			First(&inv, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}

		return c.JSON(toInvoiceResponse(inv))
	}
}

// POST /api/invoices/:id/payments
func RecordPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var body RecordPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Method == "" {
			body.Method = "cash"
		}

		var inv models.PurchaseInvoice
		if err := database.DB.Preload("Supplier", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			First(&inv, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}

		if err := ValidatePayment(inv.Total, inv.PaidAmount, body.Amount); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			payment := models.InvoicePayment{
				PurchaseInvoiceID: inv.ID,
				Amount:            body.Amount,
				Method:            body.Method,
				Note:              strings.TrimSpace(body.Note),
				CreatedBy:         userID,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			inv.PaidAmount += body.Amount
			inv.PaymentStatus = DerivePaymentStatus(inv.Total, inv.PaidAmount)
			return tx.Save(&inv).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record payment")
		}

		return c.JSON(toInvoiceResponse(inv))
	}
}

// GET /api/invoices/:id/payments
func ListPaymentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var inv models.PurchaseInvoice
		if err := database.DB.First(&inv, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}

		var payments []models.InvoicePayment
		if err := database.DB.Where("purchase_invoice_id = ?", inv.ID).
			Order("created_at ASC").
			Find(&payments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list payments")
		}

		res := make([]PaymentView, 0, len(payments))
		for _, p := range payments {
			res = append(res, PaymentView{
				ID:        p.ID,
				Amount:    p.Amount,
				Method:    p.Method,
				Note:      p.Note,
				CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(res)
	}
}
