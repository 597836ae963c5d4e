package jobqueue

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/internal/pkg/database"
	"github.com/flixhive/FlixHive/internal/pkg/sliderimage"
	"github.com/flixhive/FlixHive/internal/pkg/storage"
)

// processSliderImageJob generates the resized variants for a finalized
// slider image and records the outcome in the status cache.
func (q *Queue) processSliderImageJob(job *Job) error {
	payload, err := SliderImageJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("failed to parse slider image payload: %w", err)
	}

	db := database.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var slider models.HomeSlider
	if err := db.First(&slider, payload.SliderID).Error; err != nil {
		return fmt.Errorf("failed to find slider %d: %w", payload.SliderID, err)
	}

	disk := storage.NewPublicDisk()
	if !disk.Exists(payload.ImagePath) {
		return fmt.Errorf("slider image not found: %s", payload.ImagePath)
	}

	if err := sliderimage.SetStatus(payload.SliderID, sliderimage.STATUS_PROCESSING); err != nil {
		log.Errorf("[JobQueue] Failed to set processing status for slider %d: %v", payload.SliderID, err)
	}

	if err := sliderimage.ProcessSync(disk.Abs(payload.ImagePath)); err != nil {
		if statusErr := sliderimage.SetStatus(payload.SliderID, sliderimage.STATUS_FAILED); statusErr != nil {
			log.Errorf("[JobQueue] Failed to set failed status for slider %d: %v", payload.SliderID, statusErr)
		}
		return fmt.Errorf("slider image processing failed for %d: %w", payload.SliderID, err)
	}

	if err := sliderimage.SetStatus(payload.SliderID, sliderimage.STATUS_COMPLETED); err != nil {
		log.Errorf("[JobQueue] Failed to set completed status for slider %d: %v", payload.SliderID, err)
		return fmt.Errorf("failed to set completed status: %w", err)
	}

	log.Infof("[JobQueue] Slider image processing completed for slider %d", payload.SliderID)

	return nil
}

// DispatchSliderImage enqueues the processing job for a finalized slider
// image and marks its status pending. The caller does not wait for the
// result; progress is observable through the status cache.
func DispatchSliderImage(sliderID uint, imagePath string) error {
	if err := sliderimage.SetStatus(sliderID, sliderimage.STATUS_PENDING); err != nil {
		log.Errorf("[JobQueue] Failed to set pending status for slider %d: %v", sliderID, err)
	}

	payload := SliderImageJobPayload{SliderID: sliderID, ImagePath: imagePath}
	_, err := GetManager().GetQueue().EnqueueJob(JobTypeSliderImage, payload.ToMap())
	return err
}
