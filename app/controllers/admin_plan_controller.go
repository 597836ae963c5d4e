package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// AdminPlanController handles subscription plan management
type AdminPlanController struct {
	planRepo repository.PlanRepository
}

var adminPlanController *AdminPlanController

// InitializeAdminPlanController wires the controller with the global repositories.
func InitializeAdminPlanController() {
	adminPlanController = &AdminPlanController{
		planRepo: repository.GetGlobalFactory().GetPlanRepository(),
	}
}

// HandleAdminPlans lists all plans.
func HandleAdminPlans(c *fiber.Ctx) error {
	plans, err := adminPlanController.planRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load plans")
	}
	return c.JSON(fiber.Map{"plans": plans})
}

// HandlePlans is the public pricing listing: active plans only.
func HandlePlans(c *fiber.Ctx) error {
	plans, err := adminPlanController.planRepo.GetActive()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load plans")
	}
	return c.JSON(fiber.Map{"plans": plans})
}

type planRequest struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	IsActive     *bool   `json:"is_active"`
}

// HandleAdminPlanStore creates a plan.
func HandleAdminPlanStore(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	plan := &models.SubscriptionPlan{
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		IsActive:     true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminPlanController.planRepo.Create(plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonError(c, fiber.StatusConflict, "conflict", "a plan with this name already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create plan")
	}
	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleAdminPlanShow returns a single plan.
func HandleAdminPlanShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid plan id")
	}

	plan, err := adminPlanController.planRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "plan not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load plan")
	}
	return c.JSON(plan)
}

// HandleAdminPlanUpdate edits a plan. Existing subscriptions keep their
// own expiry and are not recomputed.
func HandleAdminPlanUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid plan id")
	}

	plan, err := adminPlanController.planRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "plan not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load plan")
	}

	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.Price >= 0 {
		plan.Price = req.Price
	}
	if req.DurationDays > 0 {
		plan.DurationDays = req.DurationDays
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := plan.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminPlanController.planRepo.Update(plan); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update plan")
	}
	return c.JSON(plan)
}

// HandleAdminPlanDelete removes a plan.
func HandleAdminPlanDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid plan id")
	}
	if err := adminPlanController.planRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete plan")
	}
	return c.JSON(fiber.Map{"message": "plan deleted"})
}
