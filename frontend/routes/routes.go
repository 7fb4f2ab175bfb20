package routes

import (
	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/config"
	"tutordash/frontend/controllers"
	"tutordash/frontend/mailer"
	"tutordash/frontend/middleware"
)

func SetupRoutes(app *fiber.App, client *api.Client, cfg *config.Config, m mailer.Mailer) {
	// Auth routes
	authController := controllers.NewAuthController(client, cfg)
	app.Get("/login", authController.ShowLogin)
	app.Post("/login", authController.Login)
	app.Post("/logout", authController.Logout)

	// Contact form (public, no session)
	contactController := controllers.NewContactController(m, cfg)
	app.Get("/contact", contactController.Show)
	app.Post("/contact", contactController.Send)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Middleware
	identity := middleware.RequireIdentity(client, cfg)
	adminOnly := middleware.AdminOnly()

	// Student dashboard
	studentController := controllers.NewStudentController(client, cfg)
	app.Get("/", identity, studentController.Dashboard)
	app.Post("/progress", identity, studentController.Submit)

	// Charts
	chartController := controllers.NewChartController(client, cfg)
	app.Get("/student/chart.png", identity, chartController.StudentChart)
	app.Get("/admin/students/:id/chart.png", identity, adminOnly, chartController.AdminStudentChart)

	// Admin dashboard
	adminController := controllers.NewAdminController(client, cfg)
	admin := app.Group("/admin", identity, adminOnly)
	admin.Get("/", adminController.Dashboard)
	admin.Post("/students", adminController.CreateStudent)
	admin.Post("/students/:id", adminController.UpdateStudent)
	admin.Post("/students/:id/delete", adminController.DeleteStudent)
	admin.Post("/students/:id/progress/:progressId/delete", adminController.DeleteProgress)
	admin.Post("/courses", adminController.CreateCourse)
	admin.Post("/courses/:id", adminController.UpdateCourse)
	admin.Post("/courses/:id/delete", adminController.DeleteCourse)
}
