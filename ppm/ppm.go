// Package ppm decodes and encodes the binary pixmap (P6) container.
package ppm

import (
	"image"
	"image/color"
)

// Image is a decoded P6 pixmap held as three channel planes.
//
// Each plane holds one byte per pixel in row-major order, top to bottom,
// so the pixel at (x, y) lives at index y*Width+x in R, G and B.
type Image struct {
	Width  int
	Height int

	// MaxVal is the maximum channel value declared by the file header.
	// It is stored as parsed; values above 255 are not rejected.
	MaxVal int

	R []uint8
	G []uint8
	B []uint8
}

// New returns an all-zero image of the given dimensions. Negative
// dimensions are treated as zero.
func New(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	size := w * h
	return &Image{
		Width:  w,
		Height: h,
		MaxVal: 255,
		R:      make([]uint8, size),
		G:      make([]uint8, size),
		B:      make([]uint8, size),
	}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// At implements image.Image. Points outside Bounds read as opaque black.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return color.RGBA{A: 0xFF}
	}
	i := y*m.Width + x
	return color.RGBA{R: m.R[i], G: m.G[i], B: m.B[i], A: 0xFF}
}
