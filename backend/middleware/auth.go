package middleware

import (
	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the access token and stores the user id in the
// request locals for handlers to pick up.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "El token de acceso que has proporcionado no es válido o tiene un formato incorrecto. Por favor, revisa y asegúrate de que el token sea correcto")
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// AdminMiddleware additionally requires the authenticated account to carry
// the admin flag.
func AdminMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "El token de acceso que has proporcionado no es válido o tiene un formato incorrecto. Por favor, revisa y asegúrate de que el token sea correcto")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil || !user.Admin {
			return utils.Fail(c, fiber.StatusForbidden, "Lo siento, esta sección está reservada para administradores")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
