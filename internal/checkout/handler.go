package checkout

import (
	"fmt"
	"strings"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"
	"kasirpos-backend/internal/notification"
	"kasirpos-backend/internal/settings"
	"kasirpos-backend/internal/shift"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  float64 `json:"quantity"` // defaults to 1
}

type UpdateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

type SetDiscountRequest struct {
	DiscountPct float64 `json:"discount_pct"`
}

type SelectCustomerRequest struct {
	CustomerID *uint `json:"customer_id"` // null detaches
}

type CheckoutRequest struct {
	Method models.PaymentMethod `json:"method"`
	Amount float64              `json:"amount"`
}

type CartResponse struct {
	Items        []CartItem `json:"items"`
	CustomerID   *uint      `json:"customer_id,omitempty"`
	CustomerName string     `json:"customer_name,omitempty"`
	Totals       Totals     `json:"totals"`
}

func newTransactionNumber() string {
	return "TRX-" + strings.ToUpper(uuid.NewString()[:8])
}

func cartResponse(c *Cart) (CartResponse, error) {
	tax, err := settings.GetTaxSetting()
	if err != nil {
		return CartResponse{}, err
	}
	rate := 0.0
	if tax.Enabled {
		rate = tax.Rate
	}
	totals := ComputeTotals(c.Subtotal(), c.DiscountPct, rate, TaxMode(tax.Mode))

	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	return CartResponse{
		Items:        items,
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
		Totals:       totals,
	}, nil
}

// GET /api/cart
func GetCartHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		return c.JSON(res)
	}
}

// POST /api/cart/items
func AddToCartHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body AddItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
		}

		var product models.Product
		if err := database.DB.First(&product, "id = ?", body.ProductID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		if err := EnsureInStock(product); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Product is out of stock")
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			cart.AddItem(product, body.Quantity)
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}
		return c.JSON(res)
	}
}

// PUT /api/cart/items/:productId
// A quantity of zero or less removes the line.
func UpdateQuantityHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		productID, err := c.ParamsInt("productId")
		if err != nil || productID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
		}

		var body UpdateQuantityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			cart.UpdateQuantity(uint(productID), body.Quantity)
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}
		return c.JSON(res)
	}
}

// DELETE /api/cart/items/:productId
func RemoveFromCartHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		productID, err := c.ParamsInt("productId")
		if err != nil || productID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			cart.RemoveItem(uint(productID))
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}
		return c.JSON(res)
	}
}

// DELETE /api/cart
func ClearCartHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		carts.Drop(userID)
		return c.JSON(fiber.Map{"message": "Cart cleared"})
	}
}

// PUT /api/cart/discount
func SetDiscountHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body SetDiscountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.DiscountPct < 0 || body.DiscountPct > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "discount_pct must be between 0 and 100")
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			cart.DiscountPct = body.DiscountPct
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}
		return c.JSON(res)
	}
}

// PUT /api/cart/customer
// Attaches or detaches (customer_id: null) a customer. Has no effect on
// already-completed transactions.
func SelectCustomerHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var body SelectCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var customer *models.Customer
		if body.CustomerID != nil {
			var cust models.Customer
			if err := database.DB.First(&cust, "id = ?", *body.CustomerID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Customer not found")
			}
			customer = &cust
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			cart.SelectCustomer(customer)
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}
		return c.JSON(res)
	}
}

// POST /api/cart/checkout
// The only cart operation with side effects: persists the transaction,
// decrements stock and writes movement rows atomically, then clears the
// cart and the selected customer.
func CheckoutHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		currentShift, err := shift.CurrentOpen(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check shift status")
		}
		if currentShift == nil {
			return fiber.NewError(fiber.StatusConflict, "Open a shift before selling")
		}

		var body CheckoutRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		switch body.Method {
		case models.PaymentMethodCash, models.PaymentMethodCard, models.PaymentMethodQRIS, models.PaymentMethodTransfer:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Unknown payment method")
		}

		// snapshot under the store lock so a concurrent mutation cannot
		// change the cart between validation and persistence
		var snapshot Cart
		if err := carts.With(userID, func(cart *Cart) error {
			if cart.IsEmpty() {
				return ErrEmptyCart
			}
			snapshot = *cart
			snapshot.Items = make([]CartItem, len(cart.Items))
			copy(snapshot.Items, cart.Items)
			return nil
		}); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cart is empty")
		}

		tax, err := settings.GetTaxSetting()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load tax setting")
		}
		rate := 0.0
		if tax.Enabled {
			rate = tax.Rate
		}
		totals := ComputeTotals(snapshot.Subtotal(), snapshot.DiscountPct, rate, TaxMode(tax.Mode))

		if err := ValidatePayment(body.Amount, totals.Total); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "InsufficientPayment: paid amount is less than the total")
		}

		shiftID := currentShift.ID
		trx := models.Transaction{
			Number:         newTransactionNumber(),
			ShiftID:        &shiftID,
			UserID:         userID,
			CustomerID:     snapshot.CustomerID,
			Subtotal:       totals.Subtotal,
			DiscountPct:    totals.DiscountPct,
			DiscountAmount: totals.DiscountAmount,
			TaxRate:        totals.TaxRate,
			TaxMode:        tax.Mode,
			TaxAmount:      totals.TaxAmount,
			Total:          totals.Total,
			PaymentMethod:  body.Method,
			PaidAmount:     body.Amount,
			ChangeAmount:   body.Amount - totals.Total,
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			for _, item := range snapshot.Items {
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					return fmt.Errorf("product %d not found", item.ProductID)
				}
				if product.CurrentStock < item.Quantity {
					return fmt.Errorf("not enough stock for %s", product.Name)
				}
				trx.Items = append(trx.Items, models.TransactionItem{
					ProductID:   item.ProductID,
					ProductName: item.Name,
					SKU:         item.SKU,
					Price:       item.Price,
					Quantity:    item.Quantity,
					Subtotal:    item.Price * item.Quantity,
				})
			}

			if err := tx.Create(&trx).Error; err != nil {
				return err
			}

			for _, item := range snapshot.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					UpdateColumn("current_stock", gorm.Expr("current_stock - ?", item.Quantity)).Error; err != nil {
					return err
				}
				movement := models.StockMovement{
					ProductID: item.ProductID,
					Type:      models.MovementTypeOut,
					Quantity:  item.Quantity,
					Reference: "sale:" + trx.Number,
				}
				if err := tx.Create(&movement).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}

		// low-stock notifications, outside the transaction and non-fatal
		for _, item := range snapshot.Items {
			var product models.Product
			if err := database.DB.First(&product, "id = ?", item.ProductID).Error; err == nil {
				if product.MinStock > 0 && product.CurrentStock <= product.MinStock {
					_ = notification.NotifyLowStock(product)
				}
			}
		}

		carts.Drop(userID)

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":            trx.ID,
			"number":        trx.Number,
			"total":         trx.Total,
			"paid_amount":   trx.PaidAmount,
			"change_amount": trx.ChangeAmount,
			"created_at":    trx.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}
