package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, disk *Disk, rel, content string) {
	t.Helper()
	abs := disk.Abs(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0644))
}

func TestDiskExists(t *testing.T) {
	disk := NewDisk(t.TempDir())

	assert.False(t, disk.Exists("tmp/missing.jpg"))
	writeFile(t, disk, "tmp/here.jpg", "data")
	assert.True(t, disk.Exists("tmp/here.jpg"))
}

func TestDiskMove(t *testing.T) {
	disk := NewDisk(t.TempDir())
	writeFile(t, disk, "tmp/upload.jpg", "image-bytes")

	require.NoError(t, disk.Move("tmp/upload.jpg", "sliders/final.jpg"))

	assert.False(t, disk.Exists("tmp/upload.jpg"))
	assert.True(t, disk.Exists("sliders/final.jpg"))

	got, err := os.ReadFile(disk.Abs("sliders/final.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(got))
}

func TestDiskMoveMissingSource(t *testing.T) {
	disk := NewDisk(t.TempDir())
	assert.Error(t, disk.Move("tmp/nope.jpg", "sliders/final.jpg"))
}

func TestDiskDelete(t *testing.T) {
	disk := NewDisk(t.TempDir())
	writeFile(t, disk, "sliders/old.jpg", "x")

	require.NoError(t, disk.Delete("sliders/old.jpg"))
	assert.False(t, disk.Exists("sliders/old.jpg"))

	// deleting a file that is already gone is fine
	assert.NoError(t, disk.Delete("sliders/old.jpg"))
}
