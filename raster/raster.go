// Package raster owns the flat RGB pixel buffer the display presents.
package raster

import "ppmview/ppm"

const bytesPerPixel = 3

// Buffer is a row-major, channel-interleaved RGB pixel buffer. One
// pixel's three channel bytes are adjacent in memory.
type Buffer struct {
	w   int
	h   int
	pix []byte
}

// New returns a zeroed buffer of the given dimensions. Negative
// dimensions are treated as zero.
func New(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, pix: make([]byte, w*h*bytesPerPixel)}
}

// FromImage interleaves the image's channel planes into a fresh buffer.
func FromImage(img *ppm.Image) *Buffer {
	b := New(img.Width, img.Height)
	n := b.w * b.h
	for _, plane := range [][]uint8{img.R, img.G, img.B} {
		if n > len(plane) {
			n = len(plane)
		}
	}
	for i := 0; i < n; i++ {
		b.pix[bytesPerPixel*i+0] = img.R[i]
		b.pix[bytesPerPixel*i+1] = img.G[i]
		b.pix[bytesPerPixel*i+2] = img.B[i]
	}
	return b
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// StrideBytes is the byte length of one pixel row.
func (b *Buffer) StrideBytes() int { return b.w * bytesPerPixel }

// Bytes returns the live pixel storage, not a copy.
func (b *Buffer) Bytes() []byte { return b.pix }

// ClearRGB fills the whole buffer with one color.
func (b *Buffer) ClearRGB(r, g, bl uint8) {
	for i := 0; i+2 < len(b.pix); i += bytesPerPixel {
		b.pix[i] = r
		b.pix[i+1] = g
		b.pix[i+2] = bl
	}
}

// SetRGB writes one pixel. Out-of-range coordinates are clipped.
func (b *Buffer) SetRGB(x, y int, r, g, bl uint8) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	off := (y*b.w + x) * bytesPerPixel
	b.pix[off] = r
	b.pix[off+1] = g
	b.pix[off+2] = bl
}

// RGBAt reads one pixel. Out-of-range coordinates read as black.
func (b *Buffer) RGBAt(x, y int) (r, g, bl uint8) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0, 0, 0
	}
	off := (y*b.w + x) * bytesPerPixel
	return b.pix[off], b.pix[off+1], b.pix[off+2]
}
