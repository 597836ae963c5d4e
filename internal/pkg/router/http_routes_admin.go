package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flixhive/FlixHive/app/controllers"
	"github.com/flixhive/FlixHive/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)

	// User management
	adminGroup.Get("/users", controllers.HandleAdminUsers)
	adminGroup.Get("/users/:id", controllers.HandleAdminUserShow)
	adminGroup.Put("/users/:id", controllers.HandleAdminUserUpdate)
	adminGroup.Delete("/users/:id", controllers.HandleAdminUserDelete)

	// Subscription plans
	adminGroup.Get("/plans", controllers.HandleAdminPlans)
	adminGroup.Post("/plans", controllers.HandleAdminPlanStore)
	adminGroup.Get("/plans/:id", controllers.HandleAdminPlanShow)
	adminGroup.Put("/plans/:id", controllers.HandleAdminPlanUpdate)
	adminGroup.Delete("/plans/:id", controllers.HandleAdminPlanDelete)

	// Subscriptions
	adminGroup.Get("/subscriptions", controllers.HandleAdminSubscriptions)
	adminGroup.Post("/subscriptions", controllers.HandleAdminSubscriptionGrant)
	adminGroup.Get("/subscriptions/:id", controllers.HandleAdminSubscriptionShow)
	adminGroup.Post("/subscriptions/:id/cancel", controllers.HandleAdminSubscriptionCancel)

	// Categories
	adminGroup.Get("/categories", controllers.HandleAdminCategories)
	adminGroup.Post("/categories", controllers.HandleAdminCategoryStore)
	adminGroup.Get("/categories/:id", controllers.HandleAdminCategoryShow)
	adminGroup.Put("/categories/:id", controllers.HandleAdminCategoryUpdate)
	adminGroup.Delete("/categories/:id", controllers.HandleAdminCategoryDelete)

	// Videos
	adminGroup.Get("/videos", controllers.HandleAdminVideos)
	adminGroup.Post("/videos", controllers.HandleAdminVideoStore)
	adminGroup.Get("/videos/:id", controllers.HandleAdminVideoShow)
	adminGroup.Put("/videos/:id", controllers.HandleAdminVideoUpdate)
	adminGroup.Delete("/videos/:id", controllers.HandleAdminVideoDelete)

	// Home sections
	adminGroup.Get("/sections", controllers.HandleAdminSections)
	adminGroup.Post("/sections", controllers.HandleAdminSectionStore)
	adminGroup.Get("/sections/:id", controllers.HandleAdminSectionShow)
	adminGroup.Put("/sections/:id", controllers.HandleAdminSectionUpdate)
	adminGroup.Post("/sections/:id/move-up", controllers.HandleAdminSectionMoveUp)
	adminGroup.Post("/sections/:id/move-down", controllers.HandleAdminSectionMoveDown)
	adminGroup.Delete("/sections/:id", controllers.HandleAdminSectionDelete)

	// Home sliders
	adminGroup.Get("/sliders", controllers.HandleAdminSliders)
	adminGroup.Post("/sliders", controllers.HandleAdminSliderStore)
	adminGroup.Post("/sliders/upload", controllers.HandleAdminSliderUpload)
	adminGroup.Get("/sliders/:id", controllers.HandleAdminSliderShow)
	adminGroup.Put("/sliders/:id", controllers.HandleAdminSliderUpdate)
	adminGroup.Get("/sliders/:id/image-status", controllers.HandleAdminSliderImageStatus)
	adminGroup.Delete("/sliders/:id", controllers.HandleAdminSliderDelete)

	// Queue monitor
	adminGroup.Get("/queues", controllers.HandleAdminQueueStats)

	// Home category buttons
	adminGroup.Get("/buttons", controllers.HandleAdminButtons)
	adminGroup.Post("/buttons", controllers.HandleAdminButtonStore)
	adminGroup.Get("/buttons/:id", controllers.HandleAdminButtonShow)
	adminGroup.Put("/buttons/:id", controllers.HandleAdminButtonUpdate)
	adminGroup.Delete("/buttons/:id", controllers.HandleAdminButtonDelete)
}
