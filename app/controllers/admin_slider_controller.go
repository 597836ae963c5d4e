package controllers

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
	"github.com/flixhive/FlixHive/internal/pkg/jobqueue"
	"github.com/flixhive/FlixHive/internal/pkg/sliderimage"
	"github.com/flixhive/FlixHive/internal/pkg/storage"
	"github.com/flixhive/FlixHive/internal/pkg/upload"
)

// AdminSliderController handles home slider management and the two-phase
// image upload: POST /sliders/upload lands the file in temp storage, the
// create/update call finalizes it.
type AdminSliderController struct {
	sliderRepo repository.SliderRepository
	disk       storage.Ops
	finalizer  *sliderimage.Finalizer
}

var adminSliderController *AdminSliderController

// InitializeAdminSliderController wires the controller with the global
// repositories, the public disk and the job queue dispatcher.
func InitializeAdminSliderController() {
	disk := storage.NewPublicDisk()
	adminSliderController = &AdminSliderController{
		sliderRepo: repository.GetGlobalFactory().GetSliderRepository(),
		disk:       disk,
		finalizer:  sliderimage.NewFinalizer(disk, jobqueue.DispatchSliderImage),
	}
}

// HandleAdminSliders lists sliders in display order.
func HandleAdminSliders(c *fiber.Ctx) error {
	sliders, err := adminSliderController.sliderRepo.GetAllOrdered()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load sliders")
	}
	return c.JSON(fiber.Map{"sliders": sliders})
}

// HandleAdminSliderShow returns a single slider.
func HandleAdminSliderShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid slider id")
	}

	slider, err := adminSliderController.sliderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "slider not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load slider")
	}
	return c.JSON(slider)
}

// HandleAdminSliderUpload lands an image in temp storage and returns its
// temporary path for a later create/update call.
func HandleAdminSliderUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "image file is required")
	}

	src, err := file.Open()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to open upload")
	}
	head := make([]byte, 512)
	n, _ := io.ReadFull(src, head)
	_ = src.Close()
	if _, err := upload.ValidateImageBySniff(file.Filename, head[:n]); err != nil {
		return jsonError(c, fiber.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())
	}

	tempPath := upload.NewTempPath(file.Filename)
	absPath := adminSliderController.disk.Abs(tempPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to prepare temp storage")
	}
	if err := c.SaveFile(file, absPath); err != nil {
		fiberlog.Errorf("[Slider] Failed to save temp upload: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to store upload")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"temp_path": tempPath})
}

type sliderRequest struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Image      string `json:"image"` // temp path from the upload call, or the stored path
	VideoID    *uint  `json:"video_id"`
	SortOrder  *int   `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

// HandleAdminSliderStore creates a slider. Without an explicit sort_order
// the slider gets max(sort_order)+1. A provided temp image is finalized
// after the record exists and its processing job dispatched.
func HandleAdminSliderStore(c *fiber.Ctx) error {
	var req sliderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	slider := &models.HomeSlider{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		ButtonText: req.ButtonText,
		ButtonLink: req.ButtonLink,
		VideoID:    req.VideoID,
		IsActive:   true,
	}
	if req.IsActive != nil {
		slider.IsActive = *req.IsActive
	}
	if err := slider.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}
	// A bad image path rejects the request before the record exists.
	if req.Image != "" {
		if !upload.IsTempPath(req.Image) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "image must be a temp path from the upload endpoint")
		}
		if !adminSliderController.disk.Exists(req.Image) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "uploaded image no longer exists")
		}
	}

	var err error
	if req.SortOrder != nil {
		slider.SortOrder = *req.SortOrder
		err = adminSliderController.sliderRepo.Create(slider)
	} else {
		err = adminSliderController.sliderRepo.CreateWithNextOrder(slider)
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create slider")
	}

	if req.Image != "" {
		if err := adminSliderController.finalizer.Finalize(slider, req.Image, adminSliderController.sliderRepo); err != nil {
			if errors.Is(err, sliderimage.ErrTempMissing) {
				return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "uploaded image no longer exists")
			}
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to finalize slider image")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(slider)
}

// HandleAdminSliderUpdate edits a slider. Submitting the stored image path
// unchanged leaves storage untouched; a new temp path replaces the old
// file and re-dispatches processing.
func HandleAdminSliderUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid slider id")
	}

	slider, err := adminSliderController.sliderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "slider not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load slider")
	}

	var req sliderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	// A new temp path replaces the stored image; the stored path itself or
	// an empty value leaves storage untouched. A bad path rejects the whole
	// edit before any field is persisted.
	if req.Image != "" && req.Image != slider.ImagePath {
		if !upload.IsTempPath(req.Image) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "image must be a temp path from the upload endpoint")
		}
		if !adminSliderController.disk.Exists(req.Image) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "uploaded image no longer exists")
		}
	}

	if req.Title != "" {
		slider.Title = req.Title
	}
	slider.Subtitle = req.Subtitle
	slider.ButtonText = req.ButtonText
	slider.ButtonLink = req.ButtonLink
	if req.VideoID != nil {
		slider.VideoID = req.VideoID
	}
	if req.SortOrder != nil {
		slider.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		slider.IsActive = *req.IsActive
	}
	if err := slider.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminSliderController.sliderRepo.Update(slider); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update slider")
	}

	if err := adminSliderController.finalizer.Finalize(slider, req.Image, adminSliderController.sliderRepo); err != nil {
		if errors.Is(err, sliderimage.ErrTempMissing) {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "uploaded image no longer exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to finalize slider image")
	}

	return c.JSON(slider)
}

// HandleAdminSliderImageStatus reports the async processing state for a
// slider's image.
func HandleAdminSliderImageStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid slider id")
	}

	status := sliderimage.GetStatus(id)
	if status == "" {
		status = "unknown"
	}
	return c.JSON(fiber.Map{
		"status":   status,
		"complete": sliderimage.IsComplete(id),
	})
}

// HandleAdminSliderDelete removes a slider and its stored image.
func HandleAdminSliderDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid slider id")
	}

	slider, err := adminSliderController.sliderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "slider not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load slider")
	}

	if err := adminSliderController.sliderRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete slider")
	}

	if slider.ImagePath != "" {
		if err := adminSliderController.disk.Delete(slider.ImagePath); err != nil {
			fiberlog.Warnf("[Slider] Could not delete image %s for slider %d: %v", slider.ImagePath, id, err)
		}
	}

	return c.JSON(fiber.Map{"message": "slider deleted"})
}
