package controllers

import (
	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// userPayload is the public view of an account: no id, no password hash, the
// photo expanded to an absolute URL.
func userPayload(cfg *config.Config, user *models.User) fiber.Map {
	return fiber.Map{
		"foto":     utils.PhotoURL(cfg.BaseURL, user.Photo),
		"nombre":   user.Name,
		"correo":   user.Email,
		"racha":    user.Streak,
		"registro": user.CreatedAt.Format("2006-01-02"),
	}
}

// progressPayload summarizes every progress row of the user as the clients
// expect it: language name plus completion percentage.
func progressPayload(db *gorm.DB, userID uint) ([]fiber.Map, error) {
	var rows []models.Progress
	if err := db.Preload("Language").Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	payload := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		payload = append(payload, fiber.Map{
			"lenguajeNombre":    row.Language.Name,
			"progresoLenguaje":  row.Percent,
			"puntos":            row.Points,
			"nivelesPermitidos": row.Unlocks,
		})
	}
	return payload, nil
}
