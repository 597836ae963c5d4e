package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/flixhive/FlixHive/app/repository"
	"github.com/flixhive/FlixHive/internal/pkg/usercontext"
)

// NewActivityMiddleware builds the per-request subscription touch-up.
//
// For every authenticated request it stamps the user's last_activity_at
// and lazily expires their active subscription once its expiry has
// passed. There is no background sweep: a subscription that ran out stays
// marked active until its owner issues the next request. Anonymous
// requests pass through untouched.
func NewActivityMiddleware(users repository.UserRepository, subs repository.SubscriptionRepository, now func() time.Time) fiber.Handler {
	if now == nil {
		now = time.Now
	}

	return func(c *fiber.Ctx) error {
		if !usercontext.IsLoggedIn(c) {
			return c.Next()
		}
		userID := usercontext.GetUserID(c)

		requestTime := now()

		if err := users.UpdateLastActivity(userID, requestTime); err != nil {
			log.Errorf("[Activity] Failed to touch user %d: %v", userID, err)
		}

		sub, err := subs.FindActiveByUser(userID)
		if err != nil {
			log.Errorf("[Activity] Failed to load subscription for user %d: %v", userID, err)
			return c.Next()
		}
		if sub != nil && sub.IsExpired(requestTime) {
			if err := subs.MarkExpired(sub.ID); err != nil {
				log.Errorf("[Activity] Failed to expire subscription %d: %v", sub.ID, err)
			}
		}

		return c.Next()
	}
}
