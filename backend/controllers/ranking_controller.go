package controllers

import (
	"strconv"

	"saddwy/backend/config"
	"saddwy/backend/models"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// The leaderboard shown to clients stops here; the caller's own position is
// computed before the cut, so it is correct even past the window.
const rankingLimit = 50

type RankingController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRankingController(db *gorm.DB, cfg *config.Config) *RankingController {
	return &RankingController{DB: db, Cfg: cfg}
}

type rankingRow struct {
	UserID uint
	Name   string
	Points uint
}

// rankingRows sums the points of every user across languages, ordered by
// points descending with earlier registration winning ties.
func rankingRows(db *gorm.DB) ([]rankingRow, error) {
	var rows []rankingRow
	err := db.Model(&models.Progress{}).
		Select("progresses.user_id AS user_id, users.name AS name, SUM(progresses.points) AS points, MIN(users.created_at) AS registered").
		Joins("JOIN users ON users.id = progresses.user_id").
		Group("progresses.user_id, users.name").
		Order("points DESC, registered ASC").
		Scan(&rows).Error
	return rows, err
}

// Ranking godoc
// @Summary User leaderboard
// @Description Top positions by accumulated points plus the caller's own position
// @Tags ranking
// @Produce json
// @Success 200 {object} utils.Envelope
// @Failure 500 {object} utils.Envelope
// @Security ApiKeyAuth
// @Router /ranking [get]
func (rc *RankingController) Ranking(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(uint)

	rows, err := rankingRows(rc.DB)
	if err != nil {
		return utils.ServerError(c, err.Error())
	}

	listing := make(map[string]fiber.Map, rankingLimit)
	var own fiber.Map
	for i, row := range rows {
		position := i + 1
		entry := fiber.Map{
			"puesto": position,
			"nombre": row.Name,
			"puntos": row.Points,
		}
		if position <= rankingLimit {
			listing[strconv.Itoa(position)] = entry
		}
		if row.UserID == userID {
			own = entry
		}
	}

	return utils.OK(c, "¡Explora el ranking de los usuarios y compara tus puntos!", fiber.Map{
		"listado": listing,
		"usuario": own,
	})
}
