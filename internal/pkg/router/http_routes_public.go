package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flixhive/FlixHive/app/controllers"
	"github.com/flixhive/FlixHive/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleHome)
	app.Get("/home", controllers.HandleHome)

	app.Get("/plans", controllers.HandlePlans)

	app.Post("/login", controllers.HandleLogin)
	app.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)
}
