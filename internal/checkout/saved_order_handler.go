package checkout

import (
	"fmt"
	"strings"
	"time"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"
	"kasirpos-backend/internal/notification"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavedOrderResponse struct {
	ID          uint                    `json:"id"`
	Number      string                  `json:"number"`
	CustomerID  *uint                   `json:"customer_id,omitempty"`
	Items       []SavedOrderItemView    `json:"items"`
	DiscountPct float64                 `json:"discount_pct"`
	Total       float64                 `json:"total"`
	Status      models.SavedOrderStatus `json:"status"`
	SavedAt     string                  `json:"saved_at"`
}

type SavedOrderItemView struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

func newSavedOrderNumber() string {
	return "SO-" + strings.ToUpper(uuid.NewString()[:8])
}

// savedItemsFromCart and cartItemsFromSaved are inverses: a line set aside
// and loaded back must come out field-for-field identical, SKU included,
// so the resulting transaction items denormalize the same way as a direct
// checkout.
func savedItemsFromCart(items []CartItem) []models.SavedOrderItem {
	out := make([]models.SavedOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.SavedOrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			SKU:         it.SKU,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Subtotal:    it.Price * it.Quantity,
		})
	}
	return out
}

func cartItemsFromSaved(items []models.SavedOrderItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, CartItem{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			SKU:       it.SKU,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Subtotal:  it.Price * it.Quantity,
		})
	}
	return out
}

func toSavedOrderResponse(o models.SavedOrder) SavedOrderResponse {
	items := make([]SavedOrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, SavedOrderItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
	}
	return SavedOrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		CustomerID:  o.CustomerID,
		Items:       items,
		DiscountPct: o.DiscountPct,
		Total:       o.Total,
		Status:      o.Status,
		SavedAt:     o.SavedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/saved-orders
// Persists the active cart as a saved order and clears the cart.
func SaveOrderHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

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

		order := models.SavedOrder{
			Number:      newSavedOrderNumber(),
			UserID:      userID,
			CustomerID:  snapshot.CustomerID,
			DiscountPct: snapshot.DiscountPct,
			Total:       snapshot.Subtotal(),
			Status:      models.SavedOrderStatusSaved,
			SavedAt:     time.Now(),
			Items:       savedItemsFromCart(snapshot.Items),
		}

		if err := database.DB.Create(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save order")
		}

		carts.Drop(userID)

		_ = notification.Notify(notification.Options{
			Type:    models.NotificationSavedOrder,
			Title:   "Order saved",
			Message: fmt.Sprintf("Order %s set aside (%.0f)", order.Number, order.Total),
			Data:    map[string]any{"saved_order_id": order.ID, "number": order.Number},
		})

		return c.Status(fiber.StatusCreated).JSON(toSavedOrderResponse(order))
	}
}

// GET /api/saved-orders
func ListSavedOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		var orders []models.SavedOrder
		if err := database.DB.Preload("Items").
			Where("user_id = ?", userID).
			Order("saved_at DESC").
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list saved orders")
		}

		res := make([]SavedOrderResponse, 0, len(orders))
		for _, o := range orders {
			res = append(res, toSavedOrderResponse(o))
		}
		return c.JSON(res)
	}
}

// POST /api/saved-orders/:id/load
// Repopulates the active cart from the saved order and removes it from
// the registry; the completed checkout is the durable record.
func LoadSavedOrderHandler(carts *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var order models.SavedOrder
		if err := database.DB.Preload("Items").Preload("Customer").
			First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Saved order not found")
		}

		var res CartResponse
		err = carts.With(userID, func(cart *Cart) error {
			cart.Clear()
			cart.DiscountPct = order.DiscountPct
			if order.Customer != nil {
				cart.SelectCustomer(order.Customer)
			}
			cart.Items = cartItemsFromSaved(order.Items)
			var err error
			res, err = cartResponse(cart)
			return err
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load saved order")
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("saved_order_id = ?", order.ID).Delete(&models.SavedOrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not consume saved order")
		}

		return c.JSON(res)
	}
}
