package upload

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TempDir is the scratch segment on the public disk where uploads land
// before finalization.
const TempDir = "tmp"

// NewTempPath returns a fresh storage-relative path for an incoming upload,
// keyed by a random UUID so concurrent uploads never collide.
func NewTempPath(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(TempDir, uuid.New().String()+ext)
}

// IsTempPath reports whether the given storage path points into the
// scratch segment.
func IsTempPath(p string) bool {
	return strings.HasPrefix(path.Clean(p), TempDir+"/")
}
