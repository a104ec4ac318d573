package mono

import (
	"image"
	"image/color"
)

// DefaultCutoff is the luminance below which a pixel prints black.
const DefaultCutoff = 128

const (
	black = 0x00
	white = 0xff
)

// Threshold produces a two-level image from img: black where the pixel's
// luminance is strictly below cutoff, white otherwise. With the default
// cutoff, 127 maps to black and 128 to white. Each pixel is decided alone,
// with no dithering or neighborhood dependency, so re-applying Threshold
// to its own output changes nothing.
func Threshold(img image.Image, cutoff uint8) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)

	// An image's bounds do not necessarily start at (0, 0), so the two loops
	// start at bounds.Min.Y and bounds.Min.X. Looping over Y first and X
	// second is more likely to result in better memory access patterns than
	// X first and Y second.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			lum := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if lum < cutoff {
				out.SetGray(x, y, color.Gray{Y: black})
			} else {
				out.SetGray(x, y, color.Gray{Y: white})
			}
		}
	}
	return out
}
