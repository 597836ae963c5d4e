package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flixhive/FlixHive/internal/pkg/session"
	"github.com/flixhive/FlixHive/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes session handling; controllers only read the context.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: treat as anonymous
		usercontext.SetUserContext(c, usercontext.UserContext{})
		return c.Next()
	}

	userID, ok := sess.Get(usercontext.KeyUserID).(uint)
	if !ok || userID == 0 {
		usercontext.SetUserContext(c, usercontext.UserContext{})
		return c.Next()
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	usercontext.SetUserContext(c, usercontext.UserContext{
		UserID:     userID,
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	})

	return c.Next()
}
