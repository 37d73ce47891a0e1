package raster

import (
	"bytes"
	"image/color"
	"testing"

	"ppmview/ppm"
)

func testImage2x2(t *testing.T) *ppm.Image {
	t.Helper()
	img := ppm.New(2, 2)
	copy(img.R, []uint8{255, 0, 0, 255})
	copy(img.G, []uint8{0, 255, 0, 255})
	copy(img.B, []uint8{0, 0, 255, 255})
	return img
}

func TestFromImageInterleave(t *testing.T) {
	b := FromImage(testImage2x2(t))
	want := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("Bytes = %v, want %v", b.Bytes(), want)
	}
	if b.StrideBytes() != 6 {
		t.Errorf("StrideBytes = %d, want 6", b.StrideBytes())
	}
}

func TestSetRGBClipping(t *testing.T) {
	b := New(2, 2)
	cases := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 2, 0},
		{"y at height", 0, 2},
		{"far out", 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b.SetRGB(tc.x, tc.y, 255, 0, 0)
			for _, v := range b.Bytes() {
				if v != 0 {
					t.Fatalf("SetRGB(%d, %d) wrote into the buffer", tc.x, tc.y)
				}
			}
		})
	}

	b.SetRGB(1, 1, 10, 20, 30)
	if r, g, bl := b.RGBAt(1, 1); r != 10 || g != 20 || bl != 30 {
		t.Errorf("RGBAt(1,1) = %d,%d,%d, want 10,20,30", r, g, bl)
	}
	if r, g, bl := b.RGBAt(-1, 5); r != 0 || g != 0 || bl != 0 {
		t.Errorf("RGBAt out of range = %d,%d,%d, want zeros", r, g, bl)
	}
}

func TestClearRGB(t *testing.T) {
	b := New(3, 2)
	b.ClearRGB(1, 2, 3)
	for i := 0; i+2 < len(b.Bytes()); i += 3 {
		pix := b.Bytes()[i : i+3]
		if pix[0] != 1 || pix[1] != 2 || pix[2] != 3 {
			t.Fatalf("pixel %d = %v, want [1 2 3]", i/3, pix)
		}
	}
}

func TestRamp(t *testing.T) {
	b := Ramp(16, 4)
	if r, _, _ := b.RGBAt(0, 0); r != 0 {
		t.Errorf("left edge = %d, want 0", r)
	}
	if r, _, _ := b.RGBAt(15, 0); r != 255 {
		t.Errorf("right edge = %d, want 255", r)
	}
	prev := uint8(0)
	for x := 0; x < 16; x++ {
		r, g, bl := b.RGBAt(x, 2)
		if r != g || g != bl {
			t.Fatalf("column %d = %d,%d,%d, want gray", x, r, g, bl)
		}
		if r < prev {
			t.Fatalf("ramp not monotonic at column %d: %d < %d", x, r, prev)
		}
		prev = r
	}
}

func TestLabel(t *testing.T) {
	b := New(64, 16)
	Label(b, 2, 2, "hi", color.RGBA{R: 255, A: 255})

	changed := 0
	for _, v := range b.Bytes() {
		if v != 0 {
			changed++
		}
	}
	if changed == 0 {
		t.Fatal("Label wrote no pixels")
	}
	if r, g, bl := b.RGBAt(63, 15); r != 0 || g != 0 || bl != 0 {
		t.Errorf("far corner touched by Label: %d,%d,%d", r, g, bl)
	}

	// Glyphs hanging off the edge must clip, not panic.
	Label(b, -3, -3, "clip", color.RGBA{R: 255, A: 255})
	Label(b, 62, 14, "clip", color.RGBA{R: 255, A: 255})
}
