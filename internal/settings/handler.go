package settings

import (
	"encoding/json"
	"errors"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedBy uint            `json:"updated_by,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

// GET /api/settings/:key
// Returns the persisted blob, or the hard-coded default when nothing has
// been saved for that key yet.
func GetSettingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if !IsKnownKey(key) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown setting key")
		}

		var row models.Setting
		err := database.DB.Where("key = ?", key).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def, _ := DefaultValue(key)
			b, _ := json.Marshal(def)
			return c.JSON(SettingResponse{Key: key, Value: b})
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load setting")
		}

		return c.JSON(SettingResponse{
			Key:       row.Key,
			Value:     json.RawMessage(row.Value),
			UpdatedBy: row.UpdatedBy,
			UpdatedAt: row.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// PUT /api/admin/settings/:key
// Overwrites the blob for the key. The value must unmarshal into that
// key's variant so a broken shape never reaches the database.
func UpdateSettingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if !IsKnownKey(key) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown setting key")
		}

		userID, err := auth.UserIDFromContext(c)
		if err != nil {
			return err
		}

		body := c.Body()
		if len(body) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Request body is required")
		}

		value, err := decodeValue(key, body)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		normalized, err := json.Marshal(value)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not encode setting")
		}

		var row models.Setting
		err = database.DB.Where("key = ?", key).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = models.Setting{Key: key, Value: string(normalized), UpdatedBy: userID}
			if err := database.DB.Create(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not save setting")
			}
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load setting")
		} else {
			row.Value = string(normalized)
			row.UpdatedBy = userID
			if err := database.DB.Save(&row).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not save setting")
			}
		}

		return c.JSON(SettingResponse{
			Key:       row.Key,
			Value:     json.RawMessage(row.Value),
			UpdatedBy: row.UpdatedBy,
			UpdatedAt: row.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// DELETE /api/admin/settings/:key
// Dropping the row falls back to the default on the next read.
func ResetSettingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if !IsKnownKey(key) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown setting key")
		}

		if err := database.DB.Where("key = ?", key).Delete(&models.Setting{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not reset setting")
		}

		def, _ := DefaultValue(key)
		b, _ := json.Marshal(def)
		return c.JSON(SettingResponse{Key: key, Value: b})
	}
}
