package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flixhive/FlixHive/app/controllers"
	"github.com/flixhive/FlixHive/app/repository"
	"github.com/flixhive/FlixHive/internal/pkg/middleware"
	"github.com/flixhive/FlixHive/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// UserContext first, then the per-request activity touch-up which
	// depends on a populated context.
	app.Use(middleware.UserContextMiddleware)

	repos := repository.GetGlobalRepositories()
	app.Use(middleware.NewActivityMiddleware(repos.User, repos.Subscription, nil))

	controllers.InitializeAuthController()
	controllers.InitializeHomeController()
	controllers.InitializeAdminUserController()
	controllers.InitializeAdminPlanController()
	controllers.InitializeAdminSubscriptionController()
	controllers.InitializeAdminCategoryController()
	controllers.InitializeAdminVideoController()
	controllers.InitializeAdminSectionController()
	controllers.InitializeAdminSliderController()
	controllers.InitializeAdminButtonController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
