package sliderimage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixhive/FlixHive/app/models"
)

type fakeDisk struct {
	files   map[string]bool
	moves   [][2]string
	deletes []string
	moveErr error
	delErr  error
}

func newFakeDisk(paths ...string) *fakeDisk {
	d := &fakeDisk{files: map[string]bool{}}
	for _, p := range paths {
		d.files[p] = true
	}
	return d
}

func (d *fakeDisk) Exists(path string) bool { return d.files[path] }
func (d *fakeDisk) Abs(path string) string  { return "/srv/uploads/" + path }

func (d *fakeDisk) Move(src, dst string) error {
	if d.moveErr != nil {
		return d.moveErr
	}
	d.moves = append(d.moves, [2]string{src, dst})
	delete(d.files, src)
	d.files[dst] = true
	return nil
}

func (d *fakeDisk) Delete(path string) error {
	d.deletes = append(d.deletes, path)
	if d.delErr != nil {
		return d.delErr
	}
	delete(d.files, path)
	return nil
}

type fakeUpdater struct {
	id   uint
	path string
	err  error
}

func (u *fakeUpdater) UpdateImagePath(id uint, path string) error {
	u.id = id
	u.path = path
	return u.err
}

func newTestFinalizer(disk *fakeDisk, dispatched *[]string) *Finalizer {
	return &Finalizer{
		Disk: disk,
		Dispatch: func(sliderID uint, imagePath string) error {
			if dispatched != nil {
				*dispatched = append(*dispatched, imagePath)
			}
			return nil
		},
		Now:   func() time.Time { return time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC) },
		Token: func() string { return "abc123" },
	}
}

func TestFinalizeMovesTempAndDispatches(t *testing.T) {
	disk := newFakeDisk("tmp/upload.jpg")
	var dispatched []string
	f := newTestFinalizer(disk, &dispatched)
	updater := &fakeUpdater{}
	slider := &models.HomeSlider{ID: 5}

	err := f.Finalize(slider, "tmp/upload.jpg", updater)
	require.NoError(t, err)

	wantPath := FinalPath("abc123", f.Now(), ".jpg")
	require.Len(t, disk.moves, 1)
	assert.Equal(t, "tmp/upload.jpg", disk.moves[0][0])
	assert.Equal(t, wantPath, disk.moves[0][1])
	assert.Equal(t, uint(5), updater.id)
	assert.Equal(t, wantPath, updater.path)
	assert.Equal(t, wantPath, slider.ImagePath)
	assert.Equal(t, []string{wantPath}, dispatched)
}

func TestFinalizeUnchangedPathIsNoOp(t *testing.T) {
	disk := newFakeDisk()
	var dispatched []string
	f := newTestFinalizer(disk, &dispatched)
	updater := &fakeUpdater{}
	slider := &models.HomeSlider{ID: 5, ImagePath: "sliders/temp-abc-1.jpg"}

	require.NoError(t, f.Finalize(slider, "sliders/temp-abc-1.jpg", updater))
	require.NoError(t, f.Finalize(slider, "", updater))

	assert.Empty(t, disk.moves)
	assert.Empty(t, disk.deletes)
	assert.Empty(t, dispatched)
	assert.Zero(t, updater.id)
}

func TestFinalizeMissingTempFile(t *testing.T) {
	disk := newFakeDisk()
	f := newTestFinalizer(disk, nil)
	slider := &models.HomeSlider{ID: 5}

	err := f.Finalize(slider, "tmp/gone.jpg", &fakeUpdater{})
	assert.ErrorIs(t, err, ErrTempMissing)
	assert.Empty(t, slider.ImagePath)
}

func TestFinalizeReplacesOldImage(t *testing.T) {
	disk := newFakeDisk("tmp/new.png", "sliders/temp-old-1.png")
	var dispatched []string
	f := newTestFinalizer(disk, &dispatched)
	slider := &models.HomeSlider{ID: 9, ImagePath: "sliders/temp-old-1.png"}

	require.NoError(t, f.Finalize(slider, "tmp/new.png", &fakeUpdater{}))

	assert.Equal(t, []string{"sliders/temp-old-1.png"}, disk.deletes)
	assert.Equal(t, ".png", filepath.Ext(slider.ImagePath))
	assert.Len(t, dispatched, 1)
}

func TestFinalizeToleratesFailedOldImageDelete(t *testing.T) {
	disk := newFakeDisk("tmp/new.png", "sliders/temp-old-1.png")
	disk.delErr = errors.New("device busy")
	f := newTestFinalizer(disk, nil)
	slider := &models.HomeSlider{ID: 9, ImagePath: "sliders/temp-old-1.png"}

	err := f.Finalize(slider, "tmp/new.png", &fakeUpdater{})
	require.NoError(t, err)
	assert.NotEqual(t, "sliders/temp-old-1.png", slider.ImagePath)
}

func TestFinalizeMoveFailure(t *testing.T) {
	disk := newFakeDisk("tmp/new.png")
	disk.moveErr = errors.New("disk full")
	f := newTestFinalizer(disk, nil)
	updater := &fakeUpdater{}
	slider := &models.HomeSlider{ID: 9}

	err := f.Finalize(slider, "tmp/new.png", updater)
	require.Error(t, err)
	assert.Zero(t, updater.id)
	assert.Empty(t, slider.ImagePath)
}
