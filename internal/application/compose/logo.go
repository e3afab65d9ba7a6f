package compose

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Logo dimensions on the printed document.
const (
	logoWidth  = 200
	logoHeight = 100
)

// LoadLogo opens the logo asset and resizes it for the thermal head. The
// resized image is held in memory for the process lifetime; no per-print
// file round-trips.
func LoadLogo(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compose: failed to load logo %s: %w", path, err)
	}
	return imaging.Resize(img, logoWidth, logoHeight, imaging.Lanczos), nil
}
