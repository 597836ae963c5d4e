package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/repository"
	"github.com/flixhive/FlixHive/internal/pkg/session"
	"github.com/flixhive/FlixHive/internal/pkg/usercontext"
)

// AuthController handles login and logout for the admin surface.
type AuthController struct {
	userRepo repository.UserRepository
}

var authController *AuthController

// InitializeAuthController wires the controller with the global repositories.
func InitializeAuthController() {
	authController = &AuthController{
		userRepo: repository.GetGlobalFactory().GetUserRepository(),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates by email and password and opens a session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "email and password are required")
	}

	user, err := authController.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "invalid credentials")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load user")
	}

	if !user.CheckPassword(req.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "invalid credentials")
	}
	if !user.IsActive {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "account is disabled")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to open session")
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.IsAdmin)
	if err := sess.Save(); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to save session")
	}

	return c.JSON(fiber.Map{
		"id":       user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}

// HandleLogout destroys the current session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}
