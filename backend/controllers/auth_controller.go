package controllers

import (
	"errors"
	"fmt"

	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Message every handler returns when a required body field is missing.
const msgMissingFields = "Por favor, proporciona los datos obligatorios que faltan en la solicitud"

// Both login failure modes collapse into this message so a caller cannot
// probe which accounts exist or are validated.
const msgBadCredentials = "Lo siento, el correo y/o contraseña ingresados son incorrectos. Por favor, inténtalo nuevamente"

type AuthController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Mailer utils.Mailer
}

func NewAuthController(db *gorm.DB, cfg *config.Config, mailer utils.Mailer) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Mailer: mailer}
}

type registerInput struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an inactive account and emails a validation link valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerInput true "Registration data"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	if err := utils.ValidateName(input.Name); err != nil {
		return utils.BadRequest(c, err.Error())
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	// An active account owns its email; an unvalidated one is superseded by
	// the new registration.
	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		if existing.Active {
			return utils.BadRequest(c, "Por favor selecciona otro correo electrónico, debido a que ya existe una cuenta asociada a este correo")
		}
		if err := ac.DB.Unscoped().Delete(&existing).Error; err != nil {
			return utils.ServerError(c, err.Error())
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ServerError(c, err.Error())
	}

	if err := utils.ValidatePassword(input.Password, input.Name, input.Email); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	photo, err := utils.RandomDefaultPhoto(ac.DB)
	if err != nil {
		return utils.ServerError(c, "Lo siento, no se pudo asignar una foto a tu perfil durante el registro. Por favor, inténtalo de nuevo")
	}

	user := models.User{
		Photo:        photo,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Streak:       models.NewStreak(),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	token, err := utils.GenerateToken(user.ID, utils.PurposeValidate, utils.EmailTokenTTL, ac.Cfg)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	link := fmt.Sprintf("%s/api/v1/validate/%s/", ac.Cfg.BaseURL, token)
	subject, body := utils.ValidationEmail(user.Name, link)
	if err := ac.Mailer.Send(user.Email, subject, body); err != nil {
		return utils.ServerError(c, "Lo siento, ha habido un problema al enviar el correo electrónico. Por favor, intenta nuevamente más tarde")
	}

	return utils.Created(c, "¡Registro completado! Revisa tu bandeja de entrada para confirmar tu cuenta. No olvides verificar la carpeta de spam si no encuentras el correo en tu bandeja principal")
}

// Validate godoc
// @Summary Activate an account from its emailed validation link
// @Tags auth
// @Produce json
// @Param token path string true "Validation token"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /validate/{token} [get]
func (ac *AuthController) Validate(c *fiber.Ctx) error {
	userID, err := utils.ParseToken(c.Params("token"), utils.PurposeValidate, ac.Cfg)
	if err != nil {
		return utils.BadRequest(c, "Lo siento, pero el tiempo límite para activar su cuenta ha expirado. Por favor, solicite un nuevo correo de activación")
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return utils.BadRequest(c, "Lo siento, pero el tiempo límite para activar su cuenta ha expirado. Por favor, solicite un nuevo correo de activación")
	}

	// Activation is one-way; a second click on the link just confirms it.
	if user.Active {
		return utils.OK(c, "Tu cuenta ya se encuentra validada. ¡Inicia sesión y continúa aprendiendo!")
	}

	user.Active = true
	if err := ac.DB.Save(&user).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.OK(c, "¡Bienvenido de nuevo a SaddWy! Estamos encantados de tenerte de regreso")
}

type loginInput struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// Login godoc
// @Summary User login
// @Description Authenticates a validated account and returns an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginInput true "Credentials"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	if input.Email == "" {
		return utils.BadRequest(c, "Por favor, asegúrate de ingresar tu correo electrónico. Este campo no puede estar vacío")
	}
	if input.Password == "" {
		return utils.BadRequest(c, "Por favor, asegúrate de ingresar tu contraseña. Este campo no puede estar vacío")
	}

	var user models.User
	if err := ac.DB.Where("email = ? AND active = ?", input.Email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, msgBadCredentials)
		}
		return utils.ServerError(c, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.BadRequest(c, msgBadCredentials)
	}

	access, refresh, err := utils.GenerateTokenPair(user.ID, ac.Cfg)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	if err := SeedProgress(ac.DB, &user); err != nil {
		return utils.ServerError(c, err.Error())
	}

	progress, err := progressPayload(ac.DB, user.ID)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	payload := userPayload(ac.Cfg, &user)
	payload["acceso"] = access
	payload["actualizar"] = refresh

	return utils.OK(c, "¡Inicio de sesión exitoso!", fiber.Map{
		"usuario":  payload,
		"progreso": progress,
	})
}

type refreshInput struct {
	Refresh string `json:"refresh"`
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param input body refreshInput true "Refresh token"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /refresh [post]
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	var input refreshInput
	if err := c.BodyParser(&input); err != nil || input.Refresh == "" {
		return utils.BadRequest(c, msgMissingFields)
	}

	userID, err := utils.ParseToken(input.Refresh, utils.PurposeRefresh, ac.Cfg)
	if err != nil {
		return utils.BadRequest(c, "El token de acceso que has proporcionado no es válido o tiene un formato incorrecto. Por favor, revisa y asegúrate de que el token sea correcto")
	}

	access, refresh, err := utils.GenerateTokenPair(userID, ac.Cfg)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.OK(c, "¡Token actualizado exitosamente!", fiber.Map{
		"acceso":     access,
		"actualizar": refresh,
	})
}

type recoveryInput struct {
	Email string `json:"correo"`
}

// RequestRecovery godoc
// @Summary Request a password-recovery email
// @Tags auth
// @Accept json
// @Produce json
// @Param input body recoveryInput true "Account email"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Router /recovery [post]
func (ac *AuthController) RequestRecovery(c *fiber.Ctx) error {
	var input recoveryInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	if err := utils.ValidateEmail(input.Email); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var user models.User
	if err := ac.DB.Where("email = ? AND active = ?", input.Email, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "Lo siento, los datos ingresados son incorrectos. Por favor, inténtalo nuevamente")
		}
		return utils.ServerError(c, err.Error())
	}

	token, err := utils.GenerateToken(user.ID, utils.PurposeRecovery, utils.EmailTokenTTL, ac.Cfg)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	link := fmt.Sprintf("%s/api/v1/recover/%s/", ac.Cfg.BaseURL, token)
	subject, body := utils.RecoveryEmail(user.Name, link)
	if err := ac.Mailer.Send(user.Email, subject, body); err != nil {
		return utils.ServerError(c, "Lo siento, ha habido un problema al enviar el correo electrónico. Por favor, intenta nuevamente más tarde")
	}

	return utils.OK(c, "¡Solicitud de recuperación de contraseña enviada! Hemos enviado un correo electrónico a la dirección proporcionada con un enlace para que puedas restablecer tu contraseña. Por favor, revisa tu bandeja de entrada dentro de las próximas 24 horas. Si no encuentras el correo en tu bandeja principal, asegúrate de verificar la carpeta de spam")
}

type recoverInput struct {
	Password string `json:"password"`
}

// RecoverAccount godoc
// @Summary Set a new password from a recovery link
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Recovery token"
// @Param input body recoverInput true "New password"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /recover/{token} [post]
func (ac *AuthController) RecoverAccount(c *fiber.Ctx) error {
	userID, err := utils.ParseToken(c.Params("token"), utils.PurposeRecovery, ac.Cfg)
	if err != nil {
		return utils.BadRequest(c, "Lo siento, pero el tiempo límite para recuperar su cuenta ha expirado. Por favor, solicite un nuevo correo")
	}

	var input recoverInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	var user models.User
	if err := ac.DB.Where("id = ? AND active = ?", userID, true).First(&user).Error; err != nil {
		return utils.BadRequest(c, "Lo siento, pero el tiempo límite para recuperar su cuenta ha expirado. Por favor, solicite un nuevo correo")
	}

	if err := utils.ValidatePassword(input.Password, user.Name, user.Email); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	user.PasswordHash = string(hashed)
	if err := ac.DB.Save(&user).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.OK(c, "¡Contraseña actualizada correctamente!")
}
