package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Ramp returns a horizontal grayscale ramp, darkest at the left edge and
// brightest at the right. It stands in for an image when none was given.
func Ramp(w, h int) *Buffer {
	b := New(w, h)
	if b.w < 2 {
		return b
	}
	for x := 0; x < b.w; x++ {
		shade := uint8(x * 255 / (b.w - 1))
		for y := 0; y < b.h; y++ {
			b.SetRGB(x, y, shade, shade, shade)
		}
	}
	return b
}

// labelBaseline converts a top-left Label origin to the font baseline.
const labelBaseline = 7

// Label burns a text line into the buffer with (x, y) at its top left.
// Glyph pixels falling outside the buffer are clipped.
func Label(b *Buffer, x, y int, s string, c color.RGBA) {
	d := &bufDisplayer{b: b}
	tinyfont.WriteLine(d, &tinyfont.Org01, int16(x), int16(y)+labelBaseline, s, c)
}

// bufDisplayer adapts Buffer to the displayer contract tinyfont draws on.
type bufDisplayer struct {
	b *Buffer
}

var _ drivers.Displayer = (*bufDisplayer)(nil)

func (d *bufDisplayer) Size() (x, y int16) {
	return int16(d.b.w), int16(d.b.h)
}

func (d *bufDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.b.SetRGB(int(x), int(y), c.R, c.G, c.B)
}

func (d *bufDisplayer) Display() error { return nil }
