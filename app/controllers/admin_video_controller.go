package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// AdminVideoController handles the video catalog entries the home page
// modules point at.
type AdminVideoController struct {
	videoRepo    repository.VideoRepository
	categoryRepo repository.CategoryRepository
}

var adminVideoController *AdminVideoController

// InitializeAdminVideoController wires the controller with the global repositories.
func InitializeAdminVideoController() {
	factory := repository.GetGlobalFactory()
	adminVideoController = &AdminVideoController{
		videoRepo:    factory.GetVideoRepository(),
		categoryRepo: factory.GetCategoryRepository(),
	}
}

// HandleAdminVideos lists recent videos.
func HandleAdminVideos(c *fiber.Ctx) error {
	_, limit := paginationParams(c)
	videos, err := adminVideoController.videoRepo.ListRecent(limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load videos")
	}
	total, err := adminVideoController.videoRepo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to count videos")
	}
	return c.JSON(fiber.Map{"videos": videos, "total": total})
}

type videoRequest struct {
	Title       string `json:"title"`
	CategoryID  uint   `json:"category_id"`
	IsPublished *bool  `json:"is_published"`
}

// HandleAdminVideoStore creates a catalog entry. Publishing stamps
// published_at so recency ordering has something to sort on.
func HandleAdminVideoStore(c *fiber.Ctx) error {
	var req videoRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.CategoryID != 0 {
		if _, err := adminVideoController.categoryRepo.GetByID(req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, fiber.StatusNotFound, "not_found", "category not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load category")
		}
	}

	video := &models.Video{
		Title:      req.Title,
		CategoryID: req.CategoryID,
	}
	if req.IsPublished != nil && *req.IsPublished {
		now := time.Now()
		video.IsPublished = true
		video.PublishedAt = &now
	}
	if err := video.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminVideoController.videoRepo.Create(video); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create video")
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// HandleAdminVideoShow returns a single video.
func HandleAdminVideoShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}

	video, err := adminVideoController.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "video not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load video")
	}
	return c.JSON(video)
}

// HandleAdminVideoUpdate edits a video. First transition to published sets
// published_at; unpublishing keeps the original stamp.
func HandleAdminVideoUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}

	video, err := adminVideoController.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "video not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load video")
	}

	var req videoRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.Title != "" {
		video.Title = req.Title
	}
	if req.CategoryID != 0 {
		if _, err := adminVideoController.categoryRepo.GetByID(req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return jsonError(c, fiber.StatusNotFound, "not_found", "category not found")
			}
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load category")
		}
		video.CategoryID = req.CategoryID
	}
	if req.IsPublished != nil {
		if *req.IsPublished && !video.IsPublished {
			now := time.Now()
			video.PublishedAt = &now
		}
		video.IsPublished = *req.IsPublished
	}
	if err := video.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminVideoController.videoRepo.Update(video); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update video")
	}
	return c.JSON(video)
}

// HandleAdminVideoDelete removes a video.
func HandleAdminVideoDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid video id")
	}
	if err := adminVideoController.videoRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete video")
	}
	return c.JSON(fiber.Map{"message": "video deleted"})
}
