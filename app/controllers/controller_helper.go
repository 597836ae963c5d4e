package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// jsonError writes the uniform error body used across the admin API.
func jsonError(c *fiber.Ctx, status int, code string, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// parseIDParam reads the :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// paginationParams reads ?page and ?per_page with sane bounds.
func paginationParams(c *fiber.Ctx) (offset, limit int) {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.Query("per_page", "25"))
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}
	return (page - 1) * perPage, perPage
}
