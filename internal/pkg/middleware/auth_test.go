package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixhive/FlixHive/internal/pkg/usercontext"
)

func newGateTestApp(gate fiber.Handler, userCtx usercontext.UserContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		usercontext.SetUserContext(c, userCtx)
		return c.Next()
	})
	app.Get("/", gate, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app := newGateTestApp(RequireAuth, usercontext.UserContext{})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthPassesLoggedInUser(t *testing.T) {
	app := newGateTestApp(RequireAuth, usercontext.UserContext{UserID: 42, IsLoggedIn: true})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	app := newGateTestApp(RequireAdmin, usercontext.UserContext{})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	app := newGateTestApp(RequireAdmin, usercontext.UserContext{UserID: 42, IsLoggedIn: true})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	app := newGateTestApp(RequireAdmin, usercontext.UserContext{UserID: 1, IsLoggedIn: true, IsAdmin: true})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
