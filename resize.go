package mono

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// FitWidth scales img to the given width using Lanczos resampling. The
// height is scaled to preserve the aspect ratio, rounded to the nearest
// pixel, never below one.
func FitWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}
