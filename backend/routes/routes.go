package routes

import (
	"saddwy/backend/config"
	"saddwy/backend/controllers"
	"saddwy/backend/middleware"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, mailer utils.Mailer) {
	authController := controllers.NewAuthController(db, cfg, mailer)
	userController := controllers.NewUserController(db, cfg)
	catalogController := controllers.NewCatalogController(db, cfg)
	progressController := controllers.NewProgressController(db, cfg)
	rankingController := controllers.NewRankingController(db, cfg)
	adminController := controllers.NewAdminController(db, cfg)

	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	api := app.Group("/api/v1")

	// Account lifecycle
	api.Post("/register", authController.Register)
	api.Get("/validate/:token", authController.Validate)
	api.Post("/login", authController.Login)
	api.Post("/refresh", authController.Refresh)
	api.Post("/recovery", authController.RequestRecovery)
	api.Post("/recover/:token", authController.RecoverAccount)
	api.Post("/contact", userController.Contact)

	// Authenticated surface
	api.Get("/start", authMiddleware, catalogController.Cards)
	api.Get("/ranking", authMiddleware, rankingController.Ranking)
	api.Get("/profile", authMiddleware, userController.GetProfile)
	api.Put("/edit", authMiddleware, userController.EditProfile)
	api.Get("/questions/:level", authMiddleware, catalogController.Questions)
	api.Put("/questions/:level", authMiddleware, progressController.AnswerLevel)

	// Docs and stored photos
	api.Get("/documentation/*", fiberSwagger.WrapHandler)
	app.Static("/api/v1/uploads", cfg.UploadDir)

	// Admin collections
	admin := api.Group("/admin", adminMiddleware)
	admin.Get("/users", adminController.ListUsers)
	admin.Put("/users/:id", adminController.UpdateUser)
	admin.Delete("/users/:id", adminController.DeleteUser)

	admin.Get("/languages", adminController.ListLanguages)
	admin.Post("/languages", adminController.CreateLanguage)
	admin.Put("/languages/:id", adminController.UpdateLanguage)
	admin.Delete("/languages/:id", adminController.DeleteLanguage)

	admin.Get("/levels", adminController.ListLevels)
	admin.Post("/levels", adminController.CreateLevel)
	admin.Put("/levels/:id", adminController.UpdateLevel)
	admin.Delete("/levels/:id", adminController.DeleteLevel)

	admin.Get("/questions", adminController.ListQuestions)
	admin.Post("/questions", adminController.CreateQuestion)
	admin.Put("/questions/:id", adminController.UpdateQuestion)
	admin.Delete("/questions/:id", adminController.DeleteQuestion)

	admin.Get("/progress", adminController.ListProgress)
	admin.Delete("/progress/:id", adminController.DeleteProgress)

	admin.Get("/photos", adminController.ListPhotos)
	admin.Post("/photos", adminController.CreatePhoto)
	admin.Delete("/photos/:id", adminController.DeletePhoto)

	admin.Get("/contact", adminController.ListContactMessages)
}
