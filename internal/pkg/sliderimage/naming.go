package sliderimage

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// FinalDir is the permanent segment for slider images on the public disk.
const FinalDir = "sliders"

// FinalPath builds the permanent storage path for a finalized slider image.
// The name is deterministic given the uniqueness token and timestamp, so a
// retried finalize lands on the same path.
func FinalPath(token string, at time.Time, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(FinalDir, fmt.Sprintf("temp-%s-%d%s", token, at.Unix(), ext))
}
