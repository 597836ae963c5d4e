package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
)

type fakeSectionRepo struct {
	created   []*models.HomeSection
	next      int
	movedUp   []uint
	movedDown []uint
	moveErr   error
}

func (f *fakeSectionRepo) Create(s *models.HomeSection) error {
	cp := *s
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeSectionRepo) GetByID(uint) (*models.HomeSection, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSectionRepo) GetAllOrdered() ([]models.HomeSection, error)    { return nil, nil }
func (f *fakeSectionRepo) GetActiveOrdered() ([]models.HomeSection, error) { return nil, nil }
func (f *fakeSectionRepo) Update(*models.HomeSection) error                { return nil }
func (f *fakeSectionRepo) Delete(uint) error                               { return nil }

func (f *fakeSectionRepo) MoveUp(id uint) error {
	f.movedUp = append(f.movedUp, id)
	return f.moveErr
}

func (f *fakeSectionRepo) MoveDown(id uint) error {
	f.movedDown = append(f.movedDown, id)
	return f.moveErr
}

func (f *fakeSectionRepo) NextSortOrder() (int, error) { return f.next, nil }

func newSectionTestApp(repo *fakeSectionRepo) *fiber.App {
	adminSectionController = &AdminSectionController{sectionRepo: repo}

	app := fiber.New()
	app.Post("/admin/sections", HandleAdminSectionStore)
	app.Post("/admin/sections/:id/move-up", HandleAdminSectionMoveUp)
	app.Post("/admin/sections/:id/move-down", HandleAdminSectionMoveDown)
	return app
}

func TestAdminSectionStoreRejectsNonPositiveSortOrder(t *testing.T) {
	for _, rank := range []int{0, -3} {
		repo := &fakeSectionRepo{next: 1}
		app := newSectionTestApp(repo)

		resp, err := app.Test(jsonRequest("POST", "/admin/sections", fiber.Map{
			"title":        "Recently Added",
			"content_type": "recent",
			"sort_order":   rank,
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "rank %d", rank)
		assert.Empty(t, repo.created, "rank %d", rank)
	}
}

func TestAdminSectionStoreUsesExplicitRank(t *testing.T) {
	repo := &fakeSectionRepo{next: 9}
	app := newSectionTestApp(repo)

	resp, err := app.Test(jsonRequest("POST", "/admin/sections", fiber.Map{
		"title":        "Recently Added",
		"content_type": "recent",
		"sort_order":   2,
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 2, repo.created[0].SortOrder)
}

func TestAdminSectionStoreAppendsAfterLastRank(t *testing.T) {
	repo := &fakeSectionRepo{next: 6}
	app := newSectionTestApp(repo)

	resp, err := app.Test(jsonRequest("POST", "/admin/sections", fiber.Map{
		"title":        "Recently Added",
		"content_type": "recent",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 6, repo.created[0].SortOrder)
}

func TestAdminSectionMoveDelegatesToRepository(t *testing.T) {
	repo := &fakeSectionRepo{}
	app := newSectionTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("POST", "/admin/sections/5/move-up", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{5}, repo.movedUp)

	resp, err = app.Test(httptest.NewRequest("POST", "/admin/sections/5/move-down", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{5}, repo.movedDown)
}

func TestAdminSectionMoveReturnsNotFoundForMissingSection(t *testing.T) {
	repo := &fakeSectionRepo{moveErr: gorm.ErrRecordNotFound}
	app := newSectionTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("POST", "/admin/sections/99/move-up", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
