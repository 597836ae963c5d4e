package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// AdminSubscriptionController handles subscription management
type AdminSubscriptionController struct {
	subRepo  repository.SubscriptionRepository
	planRepo repository.PlanRepository
	userRepo repository.UserRepository
}

var adminSubscriptionController *AdminSubscriptionController

// InitializeAdminSubscriptionController wires the controller with the global repositories.
func InitializeAdminSubscriptionController() {
	factory := repository.GetGlobalFactory()
	adminSubscriptionController = &AdminSubscriptionController{
		subRepo:  factory.GetSubscriptionRepository(),
		planRepo: factory.GetPlanRepository(),
		userRepo: factory.GetUserRepository(),
	}
}

// HandleAdminSubscriptions lists subscriptions with pagination.
func HandleAdminSubscriptions(c *fiber.Ctx) error {
	offset, limit := paginationParams(c)
	subs, err := adminSubscriptionController.subRepo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load subscriptions")
	}
	total, err := adminSubscriptionController.subRepo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to count subscriptions")
	}
	return c.JSON(fiber.Map{"subscriptions": subs, "total": total})
}

// HandleAdminSubscriptionShow returns one subscription with its manual/paid
// classification.
func HandleAdminSubscriptionShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid subscription id")
	}

	sub, err := adminSubscriptionController.subRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "subscription not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load subscription")
	}
	return c.JSON(fiber.Map{"subscription": sub, "is_manual": sub.IsManual()})
}

type grantSubscriptionRequest struct {
	UserID       uint       `json:"user_id"`
	PlanID       *uint      `json:"plan_id"`
	DurationDays int        `json:"duration_days"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

// HandleAdminSubscriptionGrant creates a subscription for a user. With a
// plan the expiry follows the plan's duration; without one it is a manual
// grant and needs either duration_days or an explicit expires_at.
func HandleAdminSubscriptionGrant(c *fiber.Ctx) error {
	var req grantSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if _, err := adminSubscriptionController.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load user")
	}

	// One meaningful active subscription per user: expire the current one
	// before granting a replacement instead of stacking active rows.
	if current, err := adminSubscriptionController.subRepo.FindActiveByUser(req.UserID); err == nil && current != nil {
		if err := adminSubscriptionController.subRepo.MarkExpired(current.ID); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to replace active subscription")
		}
	}

	now := time.Now()
	sub := &models.UserSubscription{
		UserID: req.UserID,
		Status: models.SubscriptionStatusActive,
	}

	if req.PlanID != nil {
		plan, err := adminSubscriptionController.planRepo.GetByID(*req.PlanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, fiber.StatusNotFound, "not_found", "plan not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load plan")
		}
		sub.PlanID = &plan.ID
		sub.ExpiresAt = now.AddDate(0, 0, plan.DurationDays)
	} else {
		switch {
		case req.ExpiresAt != nil:
			sub.ExpiresAt = *req.ExpiresAt
		case req.DurationDays > 0:
			sub.ExpiresAt = now.AddDate(0, 0, req.DurationDays)
		default:
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "manual grants need duration_days or expires_at")
		}
	}

	if err := adminSubscriptionController.subRepo.Create(sub); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create subscription")
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// HandleAdminSubscriptionCancel marks a subscription canceled.
func HandleAdminSubscriptionCancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid subscription id")
	}

	if _, err := adminSubscriptionController.subRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "subscription not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load subscription")
	}

	if err := adminSubscriptionController.subRepo.MarkCanceled(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to cancel subscription")
	}
	return c.JSON(fiber.Map{"message": "subscription canceled"})
}
