package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// AdminSectionController handles home section management
type AdminSectionController struct {
	sectionRepo repository.SectionRepository
}

var adminSectionController *AdminSectionController

// InitializeAdminSectionController wires the controller with the global repositories.
func InitializeAdminSectionController() {
	adminSectionController = &AdminSectionController{
		sectionRepo: repository.GetGlobalFactory().GetSectionRepository(),
	}
}

// sectionRequest is the edit-facing shape: the type-specific fields live
// at the top level and only the selected type's fields are persisted.
type sectionRequest struct {
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	VideoIDs    []uint `json:"video_ids"`
	CategoryID  uint   `json:"category_id"`
	Days        int    `json:"days"`
	Limit       int    `json:"limit"`
	SortOrder   *int   `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

// sectionResponse projects the stored payload back into the edit-facing
// top-level fields, so read(write(x)) round-trips.
func sectionResponse(section *models.HomeSection) (fiber.Map, error) {
	content, err := section.Content()
	if err != nil {
		return nil, err
	}

	resp := fiber.Map{
		"id":           section.ID,
		"title":        section.Title,
		"content_type": section.ContentType,
		"limit":        section.Limit,
		"sort_order":   section.SortOrder,
		"is_active":    section.IsActive,
		"created_at":   section.CreatedAt,
		"updated_at":   section.UpdatedAt,
	}
	switch content.Type {
	case models.SectionContentVideoIDs:
		resp["video_ids"] = content.VideoIDs
	case models.SectionContentCategory:
		resp["category_id"] = content.CategoryID
	case models.SectionContentTrending:
		resp["days"] = content.Days
	}
	return resp, nil
}

// HandleAdminSections lists sections in display order.
func HandleAdminSections(c *fiber.Ctx) error {
	sections, err := adminSectionController.sectionRepo.GetAllOrdered()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load sections")
	}

	out := make([]fiber.Map, 0, len(sections))
	for i := range sections {
		resp, err := sectionResponse(&sections[i])
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to project section content")
		}
		out = append(out, resp)
	}
	return c.JSON(fiber.Map{"sections": out})
}

// HandleAdminSectionShow returns a section in its edit-facing projection.
func HandleAdminSectionShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid section id")
	}

	section, err := adminSectionController.sectionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "section not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load section")
	}

	resp, err := sectionResponse(section)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to project section content")
	}
	return c.JSON(resp)
}

func (req sectionRequest) content() models.SectionContent {
	return models.SectionContent{
		Type:       models.SectionContentType(req.ContentType),
		VideoIDs:   req.VideoIDs,
		CategoryID: req.CategoryID,
		Days:       req.Days,
	}
}

// HandleAdminSectionStore creates a section. Without an explicit sort_order
// the section is appended after the current last rank.
func HandleAdminSectionStore(c *fiber.Ctx) error {
	var req sectionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}
	if req.Title == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "title is required")
	}
	if req.Limit == 0 {
		req.Limit = 10
	}
	if req.Limit < 1 || req.Limit > 50 {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "limit must be between 1 and 50")
	}

	section := &models.HomeSection{
		Title:    req.Title,
		Limit:    req.Limit,
		IsActive: true,
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if err := section.SetContent(req.content()); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if req.SortOrder != nil {
		// Ranks are 1-based.
		if *req.SortOrder < 1 {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "sort_order must be positive")
		}
		section.SortOrder = *req.SortOrder
	} else {
		next, err := adminSectionController.sectionRepo.NextSortOrder()
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to assign sort order")
		}
		section.SortOrder = next
	}

	if err := adminSectionController.sectionRepo.Create(section); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonError(c, fiber.StatusConflict, "conflict", "sort order already in use")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create section")
	}

	resp, err := sectionResponse(section)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to project section content")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleAdminSectionUpdate rewrites a section, replacing its content payload.
func HandleAdminSectionUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid section id")
	}

	section, err := adminSectionController.sectionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "section not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load section")
	}

	var req sectionRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.Title != "" {
		section.Title = req.Title
	}
	if req.Limit != 0 {
		if req.Limit < 1 || req.Limit > 50 {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", "limit must be between 1 and 50")
		}
		section.Limit = req.Limit
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}
	if req.ContentType != "" {
		if err := section.SetContent(req.content()); err != nil {
			return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
		}
	}

	if err := adminSectionController.sectionRepo.Update(section); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update section")
	}

	resp, err := sectionResponse(section)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to project section content")
	}
	return c.JSON(resp)
}

// HandleAdminSectionMoveUp swaps the section with its predecessor; already
// first is a no-op.
func HandleAdminSectionMoveUp(c *fiber.Ctx) error {
	return handleSectionMove(c, adminSectionController.sectionRepo.MoveUp)
}

// HandleAdminSectionMoveDown swaps the section with its successor; already
// last is a no-op.
func HandleAdminSectionMoveDown(c *fiber.Ctx) error {
	return handleSectionMove(c, adminSectionController.sectionRepo.MoveDown)
}

func handleSectionMove(c *fiber.Ctx, move func(uint) error) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid section id")
	}

	if err := move(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "section not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to move section")
	}
	return c.JSON(fiber.Map{"message": "section moved"})
}

// HandleAdminSectionDelete removes a section.
func HandleAdminSectionDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid section id")
	}
	if err := adminSectionController.sectionRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete section")
	}
	return c.JSON(fiber.Map{"message": "section deleted"})
}
