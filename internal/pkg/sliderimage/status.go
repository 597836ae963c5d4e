package sliderimage

import (
	"fmt"
	"time"

	"github.com/flixhive/FlixHive/internal/pkg/cache"
)

const (
	STATUS_PENDING    = "pending"
	STATUS_PROCESSING = "processing"
	STATUS_COMPLETED  = "completed"
	STATUS_FAILED     = "failed"
)

const statusTTL = 24 * time.Hour

func statusKey(sliderID uint) string {
	return fmt.Sprintf("slider_image_status:%d", sliderID)
}

// SetStatus records the processing state of a slider's image so the admin
// surface can poll job progress.
func SetStatus(sliderID uint, status string) error {
	return cache.Set(statusKey(sliderID), status, statusTTL)
}

// GetStatus returns the recorded state, or empty when nothing is known.
func GetStatus(sliderID uint) string {
	status, err := cache.Get(statusKey(sliderID))
	if err != nil {
		return ""
	}
	return status
}

// IsComplete reports whether processing finished successfully.
func IsComplete(sliderID uint) bool {
	return GetStatus(sliderID) == STATUS_COMPLETED
}
