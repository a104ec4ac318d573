package mono

import (
	"image"

	"github.com/disintegration/imaging"
)

// Grayscale maps every pixel to its perceptual luminance
// 0.299 R + 0.587 G + 0.114 B and returns the single-channel result.
// Gray input values pass through unchanged.
func Grayscale(img image.Image) *image.Gray {
	nrgba := imaging.Grayscale(img)

	// imaging normalizes bounds to a zero origin, so the channels can be
	// copied row by row. All four channels are equal after Grayscale; take
	// the first.
	bounds := nrgba.Bounds()
	gray := image.NewGray(bounds)
	for y := 0; y < bounds.Dy(); y++ {
		i := y * nrgba.Stride
		o := y * gray.Stride
		for x := 0; x < bounds.Dx(); x++ {
			gray.Pix[o+x] = nrgba.Pix[i+x*4]
		}
	}
	return gray
}
