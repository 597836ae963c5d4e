package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/internal/pkg/usercontext"
)

type fakeUserRepo struct {
	touchedID uint
	touchedAt time.Time
	touches   int
}

func (f *fakeUserRepo) Create(*models.User) error                   { return nil }
func (f *fakeUserRepo) GetByID(uint) (*models.User, error)          { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)     { return nil, nil }
func (f *fakeUserRepo) Update(*models.User) error                   { return nil }
func (f *fakeUserRepo) Delete(uint) error                           { return nil }
func (f *fakeUserRepo) List(int, int) ([]models.User, error)        { return nil, nil }
func (f *fakeUserRepo) Count() (int64, error)                       { return 0, nil }
func (f *fakeUserRepo) Search(string) ([]models.User, error)        { return nil, nil }

func (f *fakeUserRepo) UpdateLastActivity(id uint, at time.Time) error {
	f.touchedID = id
	f.touchedAt = at
	f.touches++
	return nil
}

type fakeSubRepo struct {
	active  *models.UserSubscription
	expired []uint
}

func (f *fakeSubRepo) Create(*models.UserSubscription) error                  { return nil }
func (f *fakeSubRepo) GetByID(uint) (*models.UserSubscription, error)         { return nil, nil }
func (f *fakeSubRepo) ListByUser(uint) ([]models.UserSubscription, error)     { return nil, nil }
func (f *fakeSubRepo) List(int, int) ([]models.UserSubscription, error)       { return nil, nil }
func (f *fakeSubRepo) Count() (int64, error)                                  { return 0, nil }
func (f *fakeSubRepo) MarkCanceled(uint) error                                { return nil }

func (f *fakeSubRepo) FindActiveByUser(userID uint) (*models.UserSubscription, error) {
	return f.active, nil
}

func (f *fakeSubRepo) MarkExpired(id uint) error {
	f.expired = append(f.expired, id)
	if f.active != nil && f.active.ID == id {
		f.active.Status = models.SubscriptionStatusExpired
		f.active = nil
	}
	return nil
}

func newActivityTestApp(users *fakeUserRepo, subs *fakeSubRepo, now time.Time, loggedIn bool) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if loggedIn {
			usercontext.SetUserContext(c, usercontext.UserContext{UserID: 42, Username: "viewer", IsLoggedIn: true})
		} else {
			usercontext.SetUserContext(c, usercontext.UserContext{})
		}
		return c.Next()
	})
	app.Use(NewActivityMiddleware(users, subs, func() time.Time { return now }))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestActivityMiddlewareTouchesLoggedInUser(t *testing.T) {
	users := &fakeUserRepo{}
	subs := &fakeSubRepo{}
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

	app := newActivityTestApp(users, subs, now, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, uint(42), users.touchedID)
	assert.Equal(t, now, users.touchedAt)
	assert.Empty(t, subs.expired)
}

func TestActivityMiddlewareExpiresRunOutSubscription(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	users := &fakeUserRepo{}
	subs := &fakeSubRepo{active: &models.UserSubscription{
		ID:        7,
		UserID:    42,
		Status:    models.SubscriptionStatusActive,
		ExpiresAt: now.Add(-time.Minute),
	}}

	app := newActivityTestApp(users, subs, now, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, []uint{7}, subs.expired)

	// second request: already expired, nothing left to mark
	resp, err = app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{7}, subs.expired)
	assert.Equal(t, 2, users.touches)
}

func TestActivityMiddlewareLeavesValidSubscriptionAlone(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	users := &fakeUserRepo{}
	subs := &fakeSubRepo{active: &models.UserSubscription{
		ID:        7,
		UserID:    42,
		Status:    models.SubscriptionStatusActive,
		ExpiresAt: now.Add(24 * time.Hour),
	}}

	app := newActivityTestApp(users, subs, now, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Empty(t, subs.expired)
	assert.Equal(t, models.SubscriptionStatusActive, subs.active.Status)
}

func TestActivityMiddlewareIgnoresAnonymousRequests(t *testing.T) {
	users := &fakeUserRepo{}
	subs := &fakeSubRepo{}

	app := newActivityTestApp(users, subs, time.Now(), false)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Zero(t, users.touches)
}
