package controllers

import (
	"errors"

	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const msgEntityNotFound = "Lo siento, el registro solicitado no existe en el sistema"

// AdminController exposes the raw collections behind the platform. Every
// route here sits behind the admin middleware.
type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

// RecountLevelQuestions recomputes the denormalized active-question count of
// a level. Called on every question create, update and delete so the stored
// count never drifts from the actual rows.
func RecountLevelQuestions(db *gorm.DB, levelID uint) error {
	var count int64
	if err := db.Model(&models.Question{}).
		Where("level_id = ? AND active = ?", levelID, true).
		Count(&count).Error; err != nil {
		return err
	}
	return db.Model(&models.Level{}).Where("id = ?", levelID).
		Update("total_questions", uint(count)).Error
}

// find loads the record addressed by the :id param. On failure it writes the
// error response itself; the boolean reports whether the handler may proceed.
func (ad *AdminController) find(c *fiber.Ctx, out interface{}) (bool, error) {
	err := ad.DB.First(out, c.Params("id")).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, utils.BadRequest(c, msgEntityNotFound)
	}
	return false, utils.ServerError(c, err.Error())
}

// --- users ---

func (ad *AdminController) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := ad.DB.Find(&users).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", users)
}

func (ad *AdminController) UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if ok, err := ad.find(c, &user); !ok {
		return err
	}

	var input struct {
		Name   *string `json:"nombre"`
		Active *bool   `json:"estado"`
		Admin  *bool   `json:"administrador"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Admin != nil {
		user.Admin = *input.Admin
	}

	if err := ad.DB.Save(&user).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Información actualizada exitosamente!", user)
}

func (ad *AdminController) DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if ok, err := ad.find(c, &user); !ok {
		return err
	}
	// Progress rows belong to the (user, language) pair and go with either
	// parent.
	if err := ad.DB.Where("user_id = ?", user.ID).Unscoped().Delete(&models.Progress{}).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	if err := ad.DB.Unscoped().Delete(&user).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Registro eliminado exitosamente!")
}

// --- languages ---

type languageInput struct {
	Logo    *string `json:"logo"`
	DocsURL *string `json:"urlDocumentation"`
	Color   *string `json:"color"`
	Name    *string `json:"nombre"`
	Active  *bool   `json:"estado"`
}

func (ad *AdminController) ListLanguages(c *fiber.Ctx) error {
	var languages []models.Language
	if err := ad.DB.Find(&languages).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", languages)
}

func (ad *AdminController) CreateLanguage(c *fiber.Ctx) error {
	var input languageInput
	if err := c.BodyParser(&input); err != nil || input.Name == nil || *input.Name == "" {
		return utils.BadRequest(c, msgMissingFields)
	}

	language := models.Language{Name: *input.Name}
	applyLanguageInput(&language, &input)

	if err := ad.DB.Create(&language).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.Created(c, "¡Registro creado exitosamente!", language)
}

func (ad *AdminController) UpdateLanguage(c *fiber.Ctx) error {
	var language models.Language
	if ok, err := ad.find(c, &language); !ok {
		return err
	}

	var input languageInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}
	if input.Name != nil {
		language.Name = *input.Name
	}
	applyLanguageInput(&language, &input)

	if err := ad.DB.Save(&language).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Información actualizada exitosamente!", language)
}

func (ad *AdminController) DeleteLanguage(c *fiber.Ctx) error {
	var language models.Language
	if ok, err := ad.find(c, &language); !ok {
		return err
	}

	if err := ad.DB.Where("language_id = ?", language.ID).Unscoped().Delete(&models.Progress{}).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	var levels []models.Level
	if err := ad.DB.Where("language_id = ?", language.ID).Find(&levels).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	for _, level := range levels {
		if err := ad.DB.Where("level_id = ?", level.ID).Unscoped().Delete(&models.Question{}).Error; err != nil {
			return utils.ServerError(c, err.Error())
		}
	}
	if err := ad.DB.Where("language_id = ?", language.ID).Unscoped().Delete(&models.Level{}).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	if err := ad.DB.Unscoped().Delete(&language).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Registro eliminado exitosamente!")
}

func applyLanguageInput(language *models.Language, input *languageInput) {
	if input.Logo != nil {
		language.Logo = *input.Logo
	}
	if input.DocsURL != nil {
		language.DocsURL = *input.DocsURL
	}
	if input.Color != nil {
		language.Color = *input.Color
	}
	if input.Active != nil {
		language.Active = *input.Active
	}
}

// --- levels ---

type levelInput struct {
	LanguageID  *uint   `json:"lenguaje"`
	Name        *string `json:"nombre"`
	Explanation *string `json:"explanation"`
	Active      *bool   `json:"estado"`
}

func (ad *AdminController) ListLevels(c *fiber.Ctx) error {
	var levels []models.Level
	if err := ad.DB.Order("id").Find(&levels).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", levels)
}

func (ad *AdminController) CreateLevel(c *fiber.Ctx) error {
	var input levelInput
	if err := c.BodyParser(&input); err != nil || input.LanguageID == nil || input.Name == nil || *input.Name == "" {
		return utils.BadRequest(c, msgMissingFields)
	}

	var language models.Language
	if err := ad.DB.Where("id = ? AND active = ?", *input.LanguageID, true).First(&language).Error; err != nil {
		return utils.BadRequest(c, "Lo siento, el lenguaje especificado no existe o no está activo")
	}

	level := models.Level{LanguageID: language.ID, Name: *input.Name}
	if input.Explanation != nil {
		level.Explanation = *input.Explanation
	}
	if input.Active != nil {
		level.Active = *input.Active
	}

	if err := ad.DB.Create(&level).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	// Users already playing this language get the new level appended,
	// locked, to their unlock map.
	if err := SeedLevel(ad.DB, &level); err != nil {
		return utils.ServerError(c, err.Error())
	}

	return utils.Created(c, "¡Registro creado exitosamente!", level)
}

func (ad *AdminController) UpdateLevel(c *fiber.Ctx) error {
	var level models.Level
	if ok, err := ad.find(c, &level); !ok {
		return err
	}

	var input levelInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}
	if input.Name != nil {
		level.Name = *input.Name
	}
	if input.Explanation != nil {
		level.Explanation = *input.Explanation
	}
	if input.Active != nil {
		level.Active = *input.Active
	}

	if err := ad.DB.Save(&level).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Información actualizada exitosamente!", level)
}

func (ad *AdminController) DeleteLevel(c *fiber.Ctx) error {
	var level models.Level
	if ok, err := ad.find(c, &level); !ok {
		return err
	}
	if err := ad.DB.Where("level_id = ?", level.ID).Unscoped().Delete(&models.Question{}).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	if err := ad.DB.Unscoped().Delete(&level).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Registro eliminado exitosamente!")
}

// --- questions ---

type questionInput struct {
	LevelID     *uint          `json:"nivel"`
	Explanation *string        `json:"explanation"`
	Prompt      *string        `json:"pregunta"`
	Answer      datatypes.JSON `json:"respuesta"`
	Active      *bool          `json:"estado"`
}

func (ad *AdminController) ListQuestions(c *fiber.Ctx) error {
	var questions []models.Question
	if err := ad.DB.Order("id").Find(&questions).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", questions)
}

func (ad *AdminController) CreateQuestion(c *fiber.Ctx) error {
	var input questionInput
	if err := c.BodyParser(&input); err != nil || input.LevelID == nil || input.Prompt == nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	var level models.Level
	if err := ad.DB.Where("id = ? AND active = ?", *input.LevelID, true).First(&level).Error; err != nil {
		return utils.BadRequest(c, "Lo siento, el nivel especificado no existe o no está activo")
	}

	question := models.Question{
		LevelID: level.ID,
		Prompt:  *input.Prompt,
		Answer:  input.Answer,
	}
	if input.Explanation != nil {
		question.Explanation = *input.Explanation
	}
	if input.Active != nil {
		question.Active = *input.Active
	}

	if err := ad.DB.Create(&question).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	if err := RecountLevelQuestions(ad.DB, question.LevelID); err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.Created(c, "¡Registro creado exitosamente!", question)
}

func (ad *AdminController) UpdateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if ok, err := ad.find(c, &question); !ok {
		return err
	}

	var input questionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, msgMissingFields)
	}
	if input.Explanation != nil {
		question.Explanation = *input.Explanation
	}
	if input.Prompt != nil {
		question.Prompt = *input.Prompt
	}
	if input.Answer != nil {
		question.Answer = input.Answer
	}
	if input.Active != nil {
		question.Active = *input.Active
	}

	if err := ad.DB.Save(&question).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	if err := RecountLevelQuestions(ad.DB, question.LevelID); err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Información actualizada exitosamente!", question)
}

func (ad *AdminController) DeleteQuestion(c *fiber.Ctx) error {
	var question models.Question
	if ok, err := ad.find(c, &question); !ok {
		return err
	}
	if err := ad.DB.Unscoped().Delete(&question).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	if err := RecountLevelQuestions(ad.DB, question.LevelID); err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Registro eliminado exitosamente!")
}

// --- progress ---

func (ad *AdminController) ListProgress(c *fiber.Ctx) error {
	var rows []models.Progress
	if err := ad.DB.Find(&rows).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", rows)
}

func (ad *AdminController) DeleteProgress(c *fiber.Ctx) error {
	var progress models.Progress
	if ok, err := ad.find(c, &progress); !ok {
		return err
	}
	if err := ad.DB.Unscoped().Delete(&progress).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Registro eliminado exitosamente!")
}

// --- default photos ---

func (ad *AdminController) ListPhotos(c *fiber.Ctx) error {
	var photos []models.DefaultPhoto
	if err := ad.DB.Find(&photos).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", photos)
}

func (ad *AdminController) CreatePhoto(c *fiber.Ctx) error {
	var input struct {
		Photo string `json:"foto"`
	}
	if err := c.BodyParser(&input); err != nil || input.Photo == "" {
		return utils.BadRequest(c, msgMissingFields)
	}

	raw, ext, err := utils.DecodePhoto(input.Photo)
	if err != nil {
		return utils.BadRequest(c, "Por favor, asegúrate de cargar una imagen en formato JPG o PNG para completar el proceso")
	}
	stored, err := utils.SaveDefaultPhoto(ad.Cfg.UploadDir, raw, ext)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	photo := models.DefaultPhoto{Photo: stored}
	if err := ad.DB.Create(&photo).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.Created(c, "¡Registro creado exitosamente!", photo)
}

func (ad *AdminController) DeletePhoto(c *fiber.Ctx) error {
	var photo models.DefaultPhoto
	if ok, err := ad.find(c, &photo); !ok {
		return err
	}
	if err := ad.DB.Unscoped().Delete(&photo).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "¡Registro eliminado exitosamente!")
}

// --- contact messages ---

func (ad *AdminController) ListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := ad.DB.Find(&messages).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}
	return utils.OK(c, "", messages)
}
