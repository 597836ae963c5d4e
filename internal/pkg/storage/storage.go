package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"

	"github.com/flixhive/FlixHive/internal/pkg/env"
)

// Ops is the path-addressed blob interface the slider image pipeline works
// against. Paths are relative to the disk root.
type Ops interface {
	Move(src, dst string) error
	Delete(path string) error
	Exists(path string) bool
	Abs(path string) string
}

// Disk is the public-visibility local disk backing slider images. Files
// under its root are served at /uploads.
type Disk struct {
	root string
}

// NewPublicDisk opens the disk rooted at STORAGE_PUBLIC_ROOT.
func NewPublicDisk() *Disk {
	return &Disk{root: env.GetEnv("STORAGE_PUBLIC_ROOT", "uploads")}
}

// NewDisk opens a disk rooted at the given directory. Used by tests.
func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Abs resolves a storage-relative path to an absolute filesystem path.
func (d *Disk) Abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

// Exists reports whether a regular file exists at the given path.
func (d *Disk) Exists(path string) bool {
	info, err := os.Stat(d.Abs(path))
	return err == nil && info.Mode().IsRegular()
}

// Move relocates a file inside the disk, creating target directories as
// needed. Falls back to copy+remove when rename crosses devices.
func (d *Disk) Move(src, dst string) error {
	srcAbs := d.Abs(src)
	dstAbs := d.Abs(dst)

	if err := os.MkdirAll(filepath.Dir(dstAbs), 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	if err := os.Rename(srcAbs, dstAbs); err == nil {
		return nil
	}

	in, err := os.Open(srcAbs)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dstAbs)
	if err != nil {
		return fmt.Errorf("failed to create target file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dstAbs)
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Remove(srcAbs); err != nil {
		log.Warnf("[Storage] Could not remove source after copy %s: %v", src, err)
	}
	return nil
}

// Delete removes a file. A missing file is not an error.
func (d *Disk) Delete(path string) error {
	err := os.Remove(d.Abs(path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
