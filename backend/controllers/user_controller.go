package controllers

import (
	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security ApiKeyAuth
// @Router /profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(uint)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.BadRequest(c, "Lo siento, no hemos podido encontrar la cuenta solicitada. Por favor, inicia sesión nuevamente")
	}

	progress, err := progressPayload(uc.DB, user.ID)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.OK(c, "¡Excelente! La información ha sido procesada exitosamente", fiber.Map{
		"usuario":  userPayload(uc.Cfg, &user),
		"progreso": progress,
	})
}

type editInput struct {
	Photo    string `json:"foto"`
	Name     string `json:"nombre"`
	Password string `json:"password"`
}

// EditProfile godoc
// @Summary Update photo, name and/or password
// @Description Partial update: omitted fields keep their previous value
// @Tags users
// @Accept json
// @Produce json
// @Param input body editInput true "Fields to change"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security ApiKeyAuth
// @Router /edit [put]
func (uc *UserController) EditProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(uint)

	var input editInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.BadRequest(c, "Lo siento, no hemos podido encontrar la cuenta solicitada. Por favor, inicia sesión nuevamente")
	}

	if input.Photo != "" {
		raw, ext, err := utils.DecodePhoto(input.Photo)
		if err != nil {
			return utils.BadRequest(c, "Por favor, asegúrate de cargar una imagen en formato JPG o PNG para completar el proceso")
		}
		if err := utils.DeletePhoto(uc.Cfg.UploadDir, user.Photo); err != nil {
			return utils.ServerError(c, err.Error())
		}
		stored, err := utils.SavePhoto(uc.Cfg.UploadDir, raw, ext)
		if err != nil {
			return utils.ServerError(c, err.Error())
		}
		user.Photo = stored
	}

	if input.Name != "" {
		if err := utils.ValidateName(input.Name); err != nil {
			return utils.BadRequest(c, err.Error())
		}
		user.Name = input.Name
	}

	if input.Password != "" {
		if err := utils.ValidatePassword(input.Password, user.Name, user.Email); err != nil {
			return utils.BadRequest(c, err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return utils.ServerError(c, err.Error())
		}
		user.PasswordHash = string(hashed)
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.OK(c, "¡Información actualizada exitosamente!", fiber.Map{
		"foto":   utils.PhotoURL(uc.Cfg.BaseURL, user.Photo),
		"nombre": user.Name,
		"correo": user.Email,
	})
}

type contactInput struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"correo"`
	Message string `json:"mensaje"`
}

// Contact godoc
// @Summary Leave a support message
// @Tags users
// @Accept json
// @Produce json
// @Param input body contactInput true "Contact data"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /contact [post]
func (uc *UserController) Contact(c *fiber.Ctx) error {
	var input contactInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	if input.Name == "" || input.Message == "" {
		return utils.BadRequest(c, msgMissingFields)
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	message := models.ContactMessage{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := uc.DB.Create(&message).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.Created(c, "¡Gracias por escribirnos! Nuestro equipo de soporte se pondrá en contacto contigo pronto")
}
