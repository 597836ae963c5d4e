package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flixhive/FlixHive/internal/pkg/jobqueue"
)

// HandleAdminQueueStats reports queue depth and per-status job counters so
// operators can watch the image processing backlog.
func HandleAdminQueueStats(c *fiber.Ctx) error {
	queue := jobqueue.GetManager().GetQueue()
	ctx := c.UserContext()

	stats, err := queue.GetJobStats(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load queue stats")
	}
	pending, err := queue.GetQueueSize(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load queue size")
	}
	processing, err := queue.GetProcessingSize(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "failed to load processing size")
	}

	return c.JSON(fiber.Map{
		"stats":      stats,
		"pending":    pending,
		"processing": processing,
	})
}
