package main

import (
	"log"

	"saddwy/backend/config"
	"saddwy/backend/middleware"
	"saddwy/backend/routes"
	"saddwy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// @title SaddWy API
// @version 1.0
// @description Backend of the SaddWy programming-logic learning platform.
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	logger := utils.InitLogger()
	mailer := utils.NewMailer(cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	routes.SetupRoutes(app, db, cfg, mailer)

	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
