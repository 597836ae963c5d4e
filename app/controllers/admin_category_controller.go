package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/app/repository"
)

// AdminCategoryController handles category reference data
type AdminCategoryController struct {
	categoryRepo repository.CategoryRepository
}

var adminCategoryController *AdminCategoryController

// InitializeAdminCategoryController wires the controller with the global repositories.
func InitializeAdminCategoryController() {
	adminCategoryController = &AdminCategoryController{
		categoryRepo: repository.GetGlobalFactory().GetCategoryRepository(),
	}
}

// HandleAdminCategories lists all categories.
func HandleAdminCategories(c *fiber.Ctx) error {
	categories, err := adminCategoryController.categoryRepo.GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load categories")
	}
	return c.JSON(fiber.Map{"categories": categories})
}

type categoryRequest struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	IsActive *bool  `json:"is_active"`
}

// HandleAdminCategoryStore creates a category.
func HandleAdminCategoryStore(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	category := &models.Category{
		Title:    req.Title,
		Slug:     req.Slug,
		IsActive: true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := category.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminCategoryController.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonError(c, fiber.StatusConflict, "conflict", "a category with this slug already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleAdminCategoryShow returns a single category.
func HandleAdminCategoryShow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid category id")
	}

	category, err := adminCategoryController.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "category not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load category")
	}
	return c.JSON(category)
}

// HandleAdminCategoryUpdate edits a category.
func HandleAdminCategoryUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid category id")
	}

	category, err := adminCategoryController.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "category not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load category")
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	if req.Title != "" {
		category.Title = req.Title
	}
	if req.Slug != "" {
		category.Slug = req.Slug
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := category.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation", err.Error())
	}

	if err := adminCategoryController.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return jsonError(c, fiber.StatusConflict, "conflict", "a category with this slug already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to update category")
	}
	return c.JSON(category)
}

// HandleAdminCategoryDelete removes a category.
func HandleAdminCategoryDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid category id")
	}
	if err := adminCategoryController.categoryRepo.Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to delete category")
	}
	return c.JSON(fiber.Map{"message": "category deleted"})
}
