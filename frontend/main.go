package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/config"
	"tutordash/frontend/mailer"
	"tutordash/frontend/middleware"
	"tutordash/frontend/routes"
	"tutordash/frontend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Backend API client
	client := api.NewClient(cfg.BackendURL)

	// Mail relay: SendGrid when a key is configured, console otherwise
	var m mailer.Mailer
	if cfg.SendgridAPIKey != "" {
		m = mailer.NewSendgrid(cfg.SendgridAPIKey, cfg.AppName, cfg.ContactFrom)
	} else {
		logger.Println("SENDGRID_API_KEY not set, contact mail goes to the console")
		m = &mailer.Console{Logger: logger}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: cfg.AppName,
	})

	// Middleware
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, client, cfg, m)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
