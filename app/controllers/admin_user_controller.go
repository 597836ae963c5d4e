package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/repository"
)

// AdminUserController handles admin user management requests
type AdminUserController struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
}

var adminUserController *AdminUserController

// InitializeAdminUserController wires the controller with the global repositories.
func InitializeAdminUserController() {
	factory := repository.GetGlobalFactory()
	adminUserController = &AdminUserController{
		userRepo: factory.GetUserRepository(),
		subRepo:  factory.GetSubscriptionRepository(),
	}
}

// HandleAdminUsers lists users with pagination, or searches with ?q=.
func HandleAdminUsers(c *fiber.Ctx) error {
	if query := c.Query("q"); query != "" {
		users, err := adminUserController.userRepo.Search(query)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to search users")
		}
		return c.JSON(fiber.Map{"users": users})
	}

	offset, limit := paginationParams(c)
	users, err := adminUserController.userRepo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load users")
	}
	total, err := adminUserController.userRepo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to count users")
	}
	return c.JSON(fiber.Map{"users": users, "total": total})
}

// HandleAdminUserShow returns a single user with their subscription history.
func HandleAdminUserShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid user id")
	}

	user, err := adminUserController.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load user")
	}

	subs, err := adminUserController.subRepo.ListByUser(id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load subscriptions")
	}
	return c.JSON(fiber.Map{"user": user, "subscriptions": subs})
}

type adminUserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
}

// HandleAdminUserUpdate applies a partial update to a user.
func HandleAdminUserUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid user id")
	}

	user, err := adminUserController.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "user not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load user")
	}

	var req adminUserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to hash password")
		}
	}

	if err := user.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}
	if err := adminUserController.userRepo.Update(user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update user")
	}
	return c.JSON(user)
}

// HandleAdminUserDelete removes a user.
func HandleAdminUserDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid user id")
	}
	if err := adminUserController.userRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete user")
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}
