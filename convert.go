package mono

import (
	"image"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// Rotation is a quarter turn applied before any other processing step.
// Turns are counter-clockwise.
type Rotation int

const (
	RotateNone Rotation = 0
	Rotate90   Rotation = 90
	Rotate180  Rotation = 180
	Rotate270  Rotation = 270
)

type Option func(c *Converter)

// WithCutoff sets the luminance cutoff. Pixels strictly below it come out
// black, everything else white.
func WithCutoff(cutoff uint8) Option {
	return func(c *Converter) {
		c.cutoff = cutoff
	}
}

// WithTargetWidth scales the image to the given width before binarization,
// with the height kept proportional. Scaling never runs after binarization:
// a resampling filter on two-level pixels would reintroduce gray values
// that nothing re-thresholds.
func WithTargetWidth(width int) Option {
	return func(c *Converter) {
		c.targetWidth = width
	}
}

// If used, the image is rotated before any other step.
func WithRotation(r Rotation) Option {
	return func(c *Converter) {
		c.rotation = r
	}
}

// Converter turns a PNG into a two-level black and white image.
type Converter struct {
	cutoff      uint8    // Luminance cutoff
	targetWidth int      // Zero means no scaling
	rotation    Rotation // Quarter turns only
}

func NewConverter(opts ...Option) *Converter {
	c := Converter{
		cutoff: DefaultCutoff,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Convert reads a PNG from r and writes it to w as a black and white BMP
// using the default conversion settings.
func Convert(w io.Writer, r io.Reader) error {
	return NewConverter().Convert(w, r)
}

/*
Convert reads a PNG from r, rotates and scales it if the converter is set up
to, maps every pixel to its luminance, binarizes the result, and writes it
to w as a BMP. The BMP holds only the two levels 0x00 and 0xff, so the
image round-trips faithfully regardless of the container's bit depth.
*/
func (c *Converter) Convert(w io.Writer, r io.Reader) error {
	bw, err := c.convert(r)
	if err != nil {
		return err
	}
	return bmp.Encode(w, bw)
}

// ConvertFile converts the PNG at src into a BMP at dst. An existing dst is
// overwritten without confirmation; concurrent runs against the same dst
// race and the last writer wins. dst is only created once src has fully
// decoded and converted, so a decode failure leaves no output behind. A
// failed write may leave a truncated dst.
func (c *Converter) ConvertFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	bw, err := c.convert(in)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := bmp.Encode(out, bw); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (c *Converter) convert(r io.Reader) (*image.Gray, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	switch c.rotation {
	case Rotate90:
		img = imaging.Rotate90(img)
	case Rotate180:
		img = imaging.Rotate180(img)
	case Rotate270:
		img = imaging.Rotate270(img)
	}

	if c.targetWidth > 0 {
		img = FitWidth(img, c.targetWidth)
	}

	return Threshold(Grayscale(img), c.cutoff), nil
}
