package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// AdminButtonController handles the two quick-access category buttons
type AdminButtonController struct {
	buttonRepo   repository.ButtonRepository
	categoryRepo repository.CategoryRepository
}

var adminButtonController *AdminButtonController

// InitializeAdminButtonController wires the controller with the global repositories.
func InitializeAdminButtonController() {
	factory := repository.GetGlobalFactory()
	adminButtonController = &AdminButtonController{
		buttonRepo:   factory.GetButtonRepository(),
		categoryRepo: factory.GetCategoryRepository(),
	}
}

// HandleAdminButtons lists both slots.
func HandleAdminButtons(c *fiber.Ctx) error {
	buttons, err := adminButtonController.buttonRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load buttons")
	}
	return c.JSON(fiber.Map{"buttons": buttons})
}

type buttonRequest struct {
	Position   int   `json:"position"`
	CategoryID uint  `json:"category_id"`
	IsActive   *bool `json:"is_active"`
}

// HandleAdminButtonStore claims one of the two slots. Both slots taken or
// the requested position occupied come back as a conflict.
func HandleAdminButtonStore(c *fiber.Ctx) error {
	var req buttonRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if req.Position < 1 || req.Position > models.HomeCategoryButtonSlots {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "position must be 1 or 2")
	}

	if _, err := adminButtonController.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "category not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load category")
	}

	button := &models.HomeCategoryButton{
		Position:   req.Position,
		CategoryID: req.CategoryID,
		IsActive:   true,
	}
	if req.IsActive != nil {
		button.IsActive = *req.IsActive
	}

	if err := adminButtonController.buttonRepo.Create(button); err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotsFull):
			return jsonError(c, fiber.StatusConflict, "conflict", "all button slots are occupied")
		case errors.Is(err, repository.ErrPositionTaken), errors.Is(err, gorm.ErrDuplicatedKey):
			return jsonError(c, fiber.StatusConflict, "conflict", "position already occupied")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create button")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(button)
}

// HandleAdminButtonShow returns a single button.
func HandleAdminButtonShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid button id")
	}

	button, err := adminButtonController.buttonRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "button not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load button")
	}
	return c.JSON(button)
}

// HandleAdminButtonUpdate retargets a slot's category or toggles it. The
// position itself is fixed after creation.
func HandleAdminButtonUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid button id")
	}

	button, err := adminButtonController.buttonRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "button not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load button")
	}

	var req buttonRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.Position != 0 {
		button.Position = req.Position
	}
	if req.CategoryID != 0 {
		if _, err := adminButtonController.categoryRepo.GetByID(req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, fiber.StatusNotFound, "not_found", "category not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load category")
		}
		button.CategoryID = req.CategoryID
	}
	if req.IsActive != nil {
		button.IsActive = *req.IsActive
	}

	if err := adminButtonController.buttonRepo.Update(button); err != nil {
		if errors.Is(err, repository.ErrPositionImmutable) {
			return jsonError(c, fiber.StatusConflict, "conflict", "position cannot be changed after creation")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update button")
	}
	return c.JSON(button)
}

// HandleAdminButtonDelete frees a slot.
func HandleAdminButtonDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid button id")
	}
	if err := adminButtonController.buttonRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete button")
	}
	return c.JSON(fiber.Map{"message": "button deleted"})
}
