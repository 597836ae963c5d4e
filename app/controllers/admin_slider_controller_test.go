package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/internal/pkg/sliderimage"
)

type fakeSliderRepo struct {
	sliders map[uint]*models.HomeSlider
	creates int
	updates int
}

func (f *fakeSliderRepo) Create(s *models.HomeSlider) error {
	f.creates++
	if s.ID == 0 {
		s.ID = uint(len(f.sliders) + 1)
	}
	cp := *s
	f.sliders[s.ID] = &cp
	return nil
}

func (f *fakeSliderRepo) CreateWithNextOrder(s *models.HomeSlider) error {
	s.SortOrder = len(f.sliders) + 1
	return f.Create(s)
}

func (f *fakeSliderRepo) GetByID(id uint) (*models.HomeSlider, error) {
	s, ok := f.sliders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSliderRepo) GetAllOrdered() ([]models.HomeSlider, error)    { return nil, nil }
func (f *fakeSliderRepo) GetActiveOrdered() ([]models.HomeSlider, error) { return nil, nil }

func (f *fakeSliderRepo) Update(s *models.HomeSlider) error {
	f.updates++
	cp := *s
	f.sliders[s.ID] = &cp
	return nil
}

func (f *fakeSliderRepo) UpdateImagePath(id uint, path string) error {
	if s, ok := f.sliders[id]; ok {
		s.ImagePath = path
	}
	return nil
}

func (f *fakeSliderRepo) Delete(id uint) error {
	delete(f.sliders, id)
	return nil
}

// fakeSliderDisk is an in-memory storage.Ops for controller tests.
type fakeSliderDisk struct {
	files map[string]bool
}

func (d *fakeSliderDisk) Move(src, dst string) error {
	delete(d.files, src)
	d.files[dst] = true
	return nil
}

func (d *fakeSliderDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

func (d *fakeSliderDisk) Exists(path string) bool { return d.files[path] }
func (d *fakeSliderDisk) Abs(path string) string  { return path }

func newSliderTestApp(repo *fakeSliderRepo, disk *fakeSliderDisk) *fiber.App {
	adminSliderController = &AdminSliderController{
		sliderRepo: repo,
		disk:       disk,
		finalizer:  sliderimage.NewFinalizer(disk, func(uint, string) error { return nil }),
	}

	app := fiber.New()
	app.Post("/admin/sliders", HandleAdminSliderStore)
	app.Put("/admin/sliders/:id", HandleAdminSliderUpdate)
	return app
}

func jsonRequest(method, target string, body fiber.Map) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAdminSliderStoreRejectsStoredPathImageBeforeCreate(t *testing.T) {
	repo := &fakeSliderRepo{sliders: map[uint]*models.HomeSlider{}}
	disk := &fakeSliderDisk{files: map[string]bool{"sliders/already-stored.jpg": true}}
	app := newSliderTestApp(repo, disk)

	resp, err := app.Test(jsonRequest("POST", "/admin/sliders", fiber.Map{
		"title": "Summer Hits",
		"image": "sliders/already-stored.jpg",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// the rejected request must not leave a record behind
	assert.Zero(t, repo.creates)
	assert.Empty(t, repo.sliders)
}

func TestAdminSliderStoreRejectsVanishedTempImageBeforeCreate(t *testing.T) {
	repo := &fakeSliderRepo{sliders: map[uint]*models.HomeSlider{}}
	disk := &fakeSliderDisk{files: map[string]bool{}}
	app := newSliderTestApp(repo, disk)

	resp, err := app.Test(jsonRequest("POST", "/admin/sliders", fiber.Map{
		"title": "Summer Hits",
		"image": "tmp/gone.jpg",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, repo.creates)
}

func TestAdminSliderStoreFinalizesTempImage(t *testing.T) {
	repo := &fakeSliderRepo{sliders: map[uint]*models.HomeSlider{}}
	disk := &fakeSliderDisk{files: map[string]bool{"tmp/fresh.jpg": true}}
	app := newSliderTestApp(repo, disk)

	resp, err := app.Test(jsonRequest("POST", "/admin/sliders", fiber.Map{
		"title": "Summer Hits",
		"image": "tmp/fresh.jpg",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Equal(t, 1, repo.creates)
	stored := repo.sliders[1]
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.ImagePath, sliderimage.FinalDir+"/"))
	assert.False(t, disk.Exists("tmp/fresh.jpg"))
}

func TestAdminSliderUpdateRejectsBadImageWithoutPersisting(t *testing.T) {
	repo := &fakeSliderRepo{sliders: map[uint]*models.HomeSlider{
		1: {ID: 1, Title: "Originals", ImagePath: "sliders/current.jpg", IsActive: true},
	}}
	disk := &fakeSliderDisk{files: map[string]bool{"sliders/current.jpg": true}}
	app := newSliderTestApp(repo, disk)

	resp, err := app.Test(jsonRequest("PUT", "/admin/sliders/1", fiber.Map{
		"title": "Rebranded",
		"image": "sliders/someone-elses.jpg",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// no field edit survives a rejected image path
	assert.Zero(t, repo.updates)
	assert.Equal(t, "Originals", repo.sliders[1].Title)
	assert.Equal(t, "sliders/current.jpg", repo.sliders[1].ImagePath)
}

func TestAdminSliderUpdateKeepsStoredImagePath(t *testing.T) {
	repo := &fakeSliderRepo{sliders: map[uint]*models.HomeSlider{
		1: {ID: 1, Title: "Originals", ImagePath: "sliders/current.jpg", IsActive: true},
	}}
	disk := &fakeSliderDisk{files: map[string]bool{"sliders/current.jpg": true}}
	app := newSliderTestApp(repo, disk)

	resp, err := app.Test(jsonRequest("PUT", "/admin/sliders/1", fiber.Map{
		"title": "Rebranded",
		"image": "sliders/current.jpg",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, "Rebranded", repo.sliders[1].Title)
	assert.Equal(t, "sliders/current.jpg", repo.sliders[1].ImagePath)
	assert.True(t, disk.Exists("sliders/current.jpg"))
}

func TestAdminSliderUpdateReplacesImageFromTempPath(t *testing.T) {
	repo := &fakeSliderRepo{sliders: map[uint]*models.HomeSlider{
		1: {ID: 1, Title: "Originals", ImagePath: "sliders/current.jpg", IsActive: true},
	}}
	disk := &fakeSliderDisk{files: map[string]bool{
		"sliders/current.jpg": true,
		"tmp/replacement.jpg": true,
	}}
	app := newSliderTestApp(repo, disk)

	resp, err := app.Test(jsonRequest("PUT", "/admin/sliders/1", fiber.Map{
		"title": "Originals",
		"image": "tmp/replacement.jpg",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored := repo.sliders[1]
	assert.True(t, strings.HasPrefix(stored.ImagePath, sliderimage.FinalDir+"/"))
	assert.NotEqual(t, "sliders/current.jpg", stored.ImagePath)
	assert.False(t, disk.Exists("sliders/current.jpg"))
	assert.False(t, disk.Exists("tmp/replacement.jpg"))
}
