package notification

import (
	"encoding/json"

	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type NotificationResponse struct {
	ID        uint                    `json:"id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Data      json.RawMessage         `json:"data"`
	Read      bool                    `json:"read"`
	CreatedAt string                  `json:"created_at"`
}

// GET /api/notifications
func ListNotificationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 50)
		if limit <= 0 || limit > 200 {
			limit = 50
		}

		query := database.DB.Model(&models.Notification{})
		if c.Query("unread") == "true" {
			query = query.Where("read = ?", false)
		}

		var notifications []models.Notification
		if err := query.Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list notifications")
		}

		var unreadCount int64
		database.DB.Model(&models.Notification{}).Where("read = ?", false).Count(&unreadCount)

		items := make([]NotificationResponse, 0, len(notifications))
		for _, n := range notifications {
			items = append(items, NotificationResponse{
				ID:        n.ID,
				Type:      n.Type,
				Title:     n.Title,
				Message:   n.Message,
				Data:      json.RawMessage(n.Data),
				Read:      n.Read,
				CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(fiber.Map{
			"unread_count":  unreadCount,
			"notifications": items,
		})
	}
}

// PUT /api/notifications/:id/read
func MarkAsReadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var n models.Notification
		if err := database.DB.First(&n, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}

		if err := database.DB.Model(&n).Update("read", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update notification")
		}

		return c.JSON(fiber.Map{"message": "Notification marked as read"})
	}
}

// PUT /api/notifications/read-all
func MarkAllAsReadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Model(&models.Notification{}).
			Where("read = ?", false).
			Update("read", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update notifications")
		}

		return c.JSON(fiber.Map{"message": "All notifications marked as read"})
	}
}

// DELETE /api/notifications/:id
func DeleteNotificationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var n models.Notification
		if err := database.DB.First(&n, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}

		if err := database.DB.Delete(&n).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete notification")
		}

		return c.JSON(fiber.Map{"message": "Notification deleted"})
	}
}
