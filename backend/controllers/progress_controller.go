package controllers

import (
	"errors"
	"time"

	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg}
}

// computePoints is the completion reward for a level of totalQuestions active
// questions finished in attempts tries. Spending fewer attempts than there
// are questions earns double the savings on top of the base reward; anything
// else clamps to the base reward.
func computePoints(totalQuestions, attempts uint) uint {
	if attempts >= totalQuestions {
		return totalQuestions
	}
	return (totalQuestions-attempts)*2 + totalQuestions
}

// levelNames returns the names of every level of a language in creation
// order. That order defines the unlock sequence.
func levelNames(db *gorm.DB, languageID uint) ([]string, error) {
	var levels []models.Level
	if err := db.Where("language_id = ?", languageID).Order("id").Find(&levels).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(levels))
	for _, level := range levels {
		names = append(names, level.Name)
	}
	return names, nil
}

// SeedProgress lazily creates the missing progress rows of a user: one per
// active language, first level unlocked, the rest locked. Admin accounts do
// not play and are skipped entirely.
func SeedProgress(db *gorm.DB, user *models.User) error {
	if user.Admin {
		return nil
	}

	var languages []models.Language
	if err := db.Where("active = ?", true).Find(&languages).Error; err != nil {
		return err
	}

	for _, language := range languages {
		var count int64
		if err := db.Model(&models.Progress{}).
			Where("user_id = ? AND language_id = ?", user.ID, language.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		names, err := levelNames(db, language.ID)
		if err != nil {
			return err
		}

		progress := models.Progress{
			UserID:     user.ID,
			LanguageID: language.ID,
			Unlocks:    models.NewUnlockList(names),
		}
		if err := db.Create(&progress).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedLevel appends a newly created level, locked, to every existing progress
// row of its language. Existing unlock entries are never touched.
func SeedLevel(db *gorm.DB, level *models.Level) error {
	var rows []models.Progress
	if err := db.Where("language_id = ?", level.LanguageID).Find(&rows).Error; err != nil {
		return err
	}

	for i := range rows {
		rows[i].Unlocks = rows[i].Unlocks.Append(level.Name)
		if err := db.Save(&rows[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

type answerInput struct {
	Attempts *uint `json:"intentos"`
}

// AnswerLevel godoc
// @Summary Record the completion of a level
// @Description Marks today's streak day, unlocks the next level, awards points and recomputes the language percentage
// @Tags progress
// @Accept json
// @Produce json
// @Param level path string true "Level name"
// @Param input body answerInput true "Attempts used"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security ApiKeyAuth
// @Router /questions/{level} [put]
func (pc *ProgressController) AnswerLevel(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(uint)

	var input answerInput
	if err := c.BodyParser(&input); err != nil || input.Attempts == nil {
		return utils.BadRequest(c, msgMissingFields)
	}

	var user models.User
	repeated := false

	// The whole read-modify-write runs in one transaction with the progress
	// row locked, so two concurrent completions cannot lose points or
	// unlock state.
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var level models.Level
		if err := tx.Where("name = ? AND active = ?", c.Params("level"), true).First(&level).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errLevelNotFound
			}
			return err
		}

		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if len(user.Streak) == 0 {
			user.Streak = models.NewStreak()
		}
		user.Streak.MarkDay(time.Now())
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		query := tx.Where("user_id = ? AND language_id = ?", userID, level.LanguageID)
		// sqlite has no row locks; there the transaction alone serializes.
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var progress models.Progress
		if err := query.First(&progress).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProgressMissing
			}
			return err
		}

		// A successor already open means this level was completed before:
		// the call is a repeat and awards nothing.
		successor := progress.Unlocks.Successor(level.Name)
		if successor != "" && progress.Unlocks.Unlocked(successor) {
			repeated = true
			return nil
		}
		if successor != "" {
			progress.Unlocks.Unlock(successor)
		}

		if level.TotalQuestions == 0 {
			return errDataConsistency
		}

		progress.Points += computePoints(level.TotalQuestions, *input.Attempts)
		// Percentage is derived from the just-completed level's question
		// count, as the clients expect it.
		unlocked := progress.Unlocks.CountUnlocked()
		progress.Percent = float64(unlocked-1) * 100 / float64(level.TotalQuestions)

		return tx.Save(&progress).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, errLevelNotFound):
			return utils.BadRequest(c, "Lo siento, el nivel especificado no existe en el sistema. Por favor, verifica el nombre del nivel e inténtalo nuevamente")
		case errors.Is(err, errProgressMissing):
			return utils.ServerError(c, "Lo siento, no hemos podido encontrar el progreso asignado automáticamente para este usuario. Por favor, comunícate con el equipo de soporte para obtener asistencia")
		case errors.Is(err, errDataConsistency):
			return utils.ServerError(c, "Lo siento, no pudimos completar la operación debido a una inconsistencia en los datos del nivel. Por favor, comunícate con el equipo de soporte para obtener asistencia")
		default:
			return utils.ServerError(c, err.Error())
		}
	}

	progress, perr := progressPayload(pc.DB, userID)
	if perr != nil {
		return utils.ServerError(c, perr.Error())
	}

	payload := fiber.Map{
		"usuario":  userPayload(pc.Cfg, &user),
		"progreso": progress,
	}

	if repeated {
		return utils.OK(c, "Ya habías completado este nivel anteriormente. ¡Sigue avanzando con los siguientes desafíos!", payload)
	}

	return utils.OK(c, "¡Fantástico! ¡Has completado todas las preguntas! ¡Sigue así y estarás dominando la programación en poco tiempo!", payload)
}

var (
	errLevelNotFound   = errors.New("level not found")
	errProgressMissing = errors.New("progress row missing")
	errDataConsistency = errors.New("level has no active questions")
)
