package controllers

import (
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/gofiber/fiber/v2"

	"github.com/flixhive/FlixHive/app/repository"
	"github.com/flixhive/FlixHive/internal/pkg/homecontent"
)

// HomeController assembles the public home page payload: active sliders,
// the two quick-access buttons and the resolved content sections.
type HomeController struct {
	sliderRepo  repository.SliderRepository
	buttonRepo  repository.ButtonRepository
	sectionRepo repository.SectionRepository
	resolver    *homecontent.Resolver
}

var homeController *HomeController

// InitializeHomeController wires the controller with the global repositories.
func InitializeHomeController() {
	factory := repository.GetGlobalFactory()
	homeController = &HomeController{
		sliderRepo:  factory.GetSliderRepository(),
		buttonRepo:  factory.GetButtonRepository(),
		sectionRepo: factory.GetSectionRepository(),
		resolver:    homecontent.NewResolver(factory.GetVideoRepository()),
	}
}

// HandleHome returns the assembled home page. A section whose content no
// longer resolves is skipped rather than failing the whole page.
func HandleHome(c *fiber.Ctx) error {
	sliders, err := homeController.sliderRepo.GetActiveOrdered()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load sliders")
	}

	buttons, err := homeController.buttonRepo.GetActive()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load buttons")
	}

	sections, err := homeController.sectionRepo.GetActiveOrdered()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load sections")
	}

	resolved := make([]fiber.Map, 0, len(sections))
	for i := range sections {
		videos, err := homeController.resolver.Resolve(&sections[i])
		if err != nil {
			fiberlog.Warnf("[Home] Skipping section %d: %v", sections[i].ID, err)
			continue
		}
		resolved = append(resolved, fiber.Map{
			"id":           sections[i].ID,
			"title":        sections[i].Title,
			"content_type": sections[i].ContentType,
			"videos":       videos,
		})
	}

	return c.JSON(fiber.Map{
		"sliders":  sliders,
		"buttons":  buttons,
		"sections": resolved,
	})
}
