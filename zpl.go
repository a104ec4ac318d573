package mono

import (
	"bytes"
	"fmt"
	"image"
	"io"
)

type ZPLOpt func(enc *ZPLEncoder)

// WithZPLCutoff sets the luminance below which a pixel prints.
func WithZPLCutoff(cutoff uint8) ZPLOpt {
	return func(enc *ZPLEncoder) {
		enc.cutoff = cutoff
	}
}

// WithoutCompression emits plain ASCII hex instead of the run-length scheme.
func WithoutCompression() ZPLOpt {
	return func(enc *ZPLEncoder) {
		enc.compress = false
	}
}

// WithLabelWrap wraps the graphics field in a complete ^XA..^XZ label
// positioned at the label origin, ready to send to a printer as-is.
func WithLabelWrap() ZPLOpt {
	return func(enc *ZPLEncoder) {
		enc.wrap = true
	}
}

// ZPLEncoder writes an image as a ZPL ^GFA graphics field, the form Zebra
// label printers take raster data in.
type ZPLEncoder struct {
	w        io.Writer
	cutoff   uint8
	compress bool
	wrap     bool
}

func NewZPLEncoder(w io.Writer, opts ...ZPLOpt) *ZPLEncoder {
	enc := ZPLEncoder{
		w:        w,
		cutoff:   DefaultCutoff,
		compress: true,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

const hexDigits = "0123456789ABCDEF"

/*
Encode binarizes img with the encoder's cutoff and writes it to w as
^GFA,<total>,<total>,<bytesPerRow>,<data>. Rows are packed one pixel per
bit, high bit first, padded to a byte boundary with non-printing bits, and
rendered as uppercase ASCII hex.

Unless compression is off, the data uses the run-length scheme the printer
firmware understands: counts 1-19 are G-Y, multiples of 20 up to 400 are
g-z, a comma fills the rest of a row with zeros, an exclamation mark fills
it with ones, and a colon repeats the previous row.
*/
func (enc *ZPLEncoder) Encode(img image.Image) error {
	bw := Threshold(img, enc.cutoff)
	bounds := bw.Bounds()
	bytesPerRow := (bounds.Dx() + 7) / 8
	total := bytesPerRow * bounds.Dy()

	var body bytes.Buffer
	var prev []byte
	row := make([]byte, bytesPerRow)
	line := make([]byte, bytesPerRow*2)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if bw.GrayAt(x, y).Y == black {
				i := x - bounds.Min.X
				row[i/8] |= 0x80 >> uint(i%8)
			}
		}
		for i, b := range row {
			line[i*2] = hexDigits[b>>4]
			line[i*2+1] = hexDigits[b&0x0f]
		}
		switch {
		case !enc.compress:
			body.Write(line)
		case bytes.Equal(line, prev):
			body.WriteByte(':')
		default:
			compressRow(&body, line)
		}
		prev = append(prev[:0], line...)
	}

	if enc.wrap {
		if _, err := io.WriteString(enc.w, "^XA^FO0,0"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(enc.w, "^GFA,%d,%d,%d,%s", total, total, bytesPerRow, body.Bytes()); err != nil {
		return err
	}
	if enc.wrap {
		if _, err := io.WriteString(enc.w, "^FS^XZ"); err != nil {
			return err
		}
	}
	return nil
}

// compressRow run-length encodes one row of ASCII hex. A run that reaches
// the end of the row collapses to "," for zeros and "!" for ones.
func compressRow(body *bytes.Buffer, line []byte) {
	for i := 0; i < len(line); {
		j := i
		for j < len(line) && line[j] == line[i] {
			j++
		}
		if j == len(line) {
			if line[i] == '0' {
				body.WriteByte(',')
				return
			}
			if line[i] == 'F' {
				body.WriteByte('!')
				return
			}
		}
		writeRepeatCode(body, j-i)
		body.WriteByte(line[i])
		i = j
	}
}

// writeRepeatCode emits the count prefix for a run: 1-19 as G-Y, multiples
// of 20 up to 400 as g-z, longer runs as a sequence of z's.
func writeRepeatCode(body *bytes.Buffer, n int) {
	for n > 400 {
		body.WriteByte('z')
		n -= 400
	}
	if n >= 20 {
		body.WriteByte(byte('g' + n/20 - 1))
		n %= 20
	}
	if n > 0 {
		body.WriteByte(byte('G' + n - 1))
	}
}
