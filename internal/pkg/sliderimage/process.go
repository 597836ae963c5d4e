package sliderimage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
)

// variantWidths are the render sizes generated for each slider image.
// The hero banner is served at 1920, tablets at 1280, phones at 640.
var variantWidths = []int{1920, 1280, 640}

// ProcessSync generates resized variants next to the original file. The
// original stays untouched so a reprocess can always start over.
func ProcessSync(absPath string) error {
	src, err := imaging.Open(absPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to open slider image: %w", err)
	}

	ext := filepath.Ext(absPath)
	base := strings.TrimSuffix(absPath, ext)

	for _, width := range variantWidths {
		if src.Bounds().Dx() <= width {
			continue
		}
		resized := imaging.Resize(src, width, 0, imaging.Lanczos)
		variantPath := fmt.Sprintf("%s_w%d%s", base, width, ext)
		if err := imaging.Save(resized, variantPath); err != nil {
			return fmt.Errorf("failed to save %dpx variant: %w", width, err)
		}
		log.Debugf("[SliderImage] Wrote variant %s", variantPath)
	}

	return nil
}
