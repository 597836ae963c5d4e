package sliderimage

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/flixhive/FlixHive/app/models"
	"github.com/flixhive/FlixHive/internal/pkg/storage"
)

// ErrTempMissing is returned when the temp upload vanished before finalize.
var ErrTempMissing = errors.New("temporary upload file not found")

// DispatchFunc hands a finalized image to the async processing pipeline.
type DispatchFunc func(sliderID uint, imagePath string) error

// ImagePathUpdater persists the finalized path on the slider record.
type ImagePathUpdater interface {
	UpdateImagePath(id uint, path string) error
}

// Finalizer relocates temp uploads to their permanent path and dispatches
// the processing job. Now and Token are swappable for tests.
type Finalizer struct {
	Disk     storage.Ops
	Dispatch DispatchFunc
	Now      func() time.Time
	Token    func() string
}

// NewFinalizer wires a finalizer over the given disk and dispatcher.
func NewFinalizer(disk storage.Ops, dispatch DispatchFunc) *Finalizer {
	return &Finalizer{
		Disk:     disk,
		Dispatch: dispatch,
		Now:      time.Now,
		Token:    func() string { return uuid.New().String() },
	}
}

// Finalize moves the temp image into the permanent segment, updates the
// slider's image path and dispatches the async processing job.
//
// Submitting the already-stored path is a no-op: no storage call is made
// and no job is dispatched. When the slider carried a different image
// before, the old file is deleted best-effort; a failed delete is logged
// and does not abort the finalize.
func (f *Finalizer) Finalize(slider *models.HomeSlider, tempPath string, repo ImagePathUpdater) error {
	if tempPath == "" || tempPath == slider.ImagePath {
		return nil
	}

	if !f.Disk.Exists(tempPath) {
		return fmt.Errorf("%w: %s", ErrTempMissing, tempPath)
	}

	if slider.ImagePath != "" {
		if err := f.Disk.Delete(slider.ImagePath); err != nil {
			log.Warnf("[SliderImage] Could not delete replaced image %s for slider %d: %v",
				slider.ImagePath, slider.ID, err)
		}
	}

	finalPath := FinalPath(f.Token(), f.Now(), filepath.Ext(tempPath))
	if err := f.Disk.Move(tempPath, finalPath); err != nil {
		return fmt.Errorf("failed to move slider image into place: %w", err)
	}

	if err := repo.UpdateImagePath(slider.ID, finalPath); err != nil {
		return err
	}
	slider.ImagePath = finalPath

	if err := f.Dispatch(slider.ID, finalPath); err != nil {
		// The record already points at the finalized file; processing can
		// be retried from the queue side.
		log.Errorf("[SliderImage] Failed to dispatch processing job for slider %d: %v", slider.ID, err)
	}

	return nil
}
