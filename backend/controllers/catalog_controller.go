package controllers

import (
	"errors"

	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatalogController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCatalogController(db *gorm.DB, cfg *config.Config) *CatalogController {
	return &CatalogController{DB: db, Cfg: cfg}
}

// Cards godoc
// @Summary Language cards for the start screen
// @Description Lists every active language with its active levels and whether the caller may enter each one
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security ApiKeyAuth
// @Router /start [get]
func (cc *CatalogController) Cards(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(uint)

	var languages []models.Language
	if err := cc.DB.Where("active = ?", true).Find(&languages).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	cards := make([]fiber.Map, 0, len(languages))
	for _, language := range languages {
		var progress models.Progress
		var unlocks models.UnlockList
		err := cc.DB.Where("user_id = ? AND language_id = ?", userID, language.ID).First(&progress).Error
		if err == nil {
			unlocks = progress.Unlocks
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ServerError(c, err.Error())
		}

		var levels []models.Level
		if err := cc.DB.Where("language_id = ? AND active = ?", language.ID, true).
			Order("id").Find(&levels).Error; err != nil {
			return utils.ServerError(c, err.Error())
		}

		levelData := make([]fiber.Map, 0, len(levels))
		for _, level := range levels {
			levelData = append(levelData, fiber.Map{
				"nombre":      level.Name,
				"explanation": level.Explanation,
				"permitido":   unlocks.Unlocked(level.Name),
			})
		}

		cards = append(cards, fiber.Map{
			"logo":             utils.PhotoURL(cc.Cfg.BaseURL, language.Logo),
			"urlDocumentation": language.DocsURL,
			"color":            language.Color,
			"nombre":           language.Name,
			"niveles":          levelData,
		})
	}

	return utils.OK(c, "¡Excelente! La información ha sido procesada exitosamente", cards)
}

// Questions godoc
// @Summary Active questions of a level
// @Tags catalog
// @Produce json
// @Param level path string true "Level name"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security ApiKeyAuth
// @Router /questions/{level} [get]
func (cc *CatalogController) Questions(c *fiber.Ctx) error {
	var level models.Level
	if err := cc.DB.Where("name = ? AND active = ?", c.Params("level"), true).First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "El nivel especificado no existe o no está disponible en este momento")
		}
		return utils.ServerError(c, err.Error())
	}

	var questions []models.Question
	if err := cc.DB.Where("level_id = ? AND active = ?", level.ID, true).
		Order("id").Find(&questions).Error; err != nil {
		return utils.ServerError(c, err.Error())
	}

	payload := make([]fiber.Map, 0, len(questions))
	for _, question := range questions {
		payload = append(payload, fiber.Map{
			"nivel": fiber.Map{
				"nombre":    level.Name,
				"detalle":   level.Explanation,
				"preguntas": level.TotalQuestions,
			},
			"explanation": question.Explanation,
			"pregunta":    question.Prompt,
			"respuesta":   question.Answer,
		})
	}

	return utils.OK(c, "", payload)
}
