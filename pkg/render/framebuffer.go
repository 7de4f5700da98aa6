// Package render turns a mesh into pixels on the CPU: transform, cull,
// depth sort and scanline rasterization into an ARGB color buffer.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// ErrInvalidSize is returned for non-positive or overflowing buffer sizes.
var ErrInvalidSize = errors.New("invalid buffer size")

// ColorBuffer is a row-major ARGB pixel grid. Row stride is Width*4 bytes.
type ColorBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewColorBuffer allocates a width x height buffer.
func NewColorBuffer(width, height int) (*ColorBuffer, error) {
	if width <= 0 || height <= 0 || width > math.MaxInt32/4/height {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &ColorBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}, nil
}

// Stride returns the number of bytes per row.
func (cb *ColorBuffer) Stride() int {
	return cb.Width * 4
}

// Clear fills the buffer with a solid color.
func (cb *ColorBuffer) Clear(c uint32) {
	for i := range cb.Pixels {
		cb.Pixels[i] = c
	}
}

// SetPixel writes a pixel. Writes outside the buffer are dropped.
func (cb *ColorBuffer) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= cb.Width || y < 0 || y >= cb.Height {
		return
	}
	cb.Pixels[y*cb.Width+x] = c
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (cb *ColorBuffer) At(x, y int) uint32 {
	if x < 0 || x >= cb.Width || y < 0 || y >= cb.Height {
		return 0
	}
	return cb.Pixels[y*cb.Width+x]
}

// DrawLine draws a line with a DDA walk: one step per pixel along the
// longer axis, each position rounded to the nearest pixel. Both endpoints
// are drawn.
func (cb *ColorBuffer) DrawLine(x0, y0, x1, y1 int, c uint32) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		cb.SetPixel(x0, y0, c)
		return
	}

	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)
	lo, hi := lineSteps(float64(x0), incX, cb.Width, 0, steps)
	lo, hi = lineSteps(float64(y0), incY, cb.Height, lo, hi)

	x := float64(x0) + incX*float64(lo)
	y := float64(y0) + incY*float64(lo)
	for i := lo; i <= hi; i++ {
		cb.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
		x += incX
		y += incY
	}
}

// DrawRect draws a filled rectangle.
func (cb *ColorBuffer) DrawRect(x, y, w, h int, c uint32) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			cb.SetPixel(px, py, c)
		}
	}
}

// DrawDottedGrid sets one pixel at every multiple of spacing on both axes.
func (cb *ColorBuffer) DrawDottedGrid(spacing int, c uint32) {
	if spacing <= 0 {
		return
	}
	for y := 0; y < cb.Height; y += spacing {
		for x := 0; x < cb.Width; x += spacing {
			cb.Pixels[y*cb.Width+x] = c
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBABytes writes the buffer as R, G, B, A bytes into dst, growing it when
// needed, and returns it.
func (cb *ColorBuffer) RGBABytes(dst []byte) []byte {
	n := len(cb.Pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range cb.Pixels {
		dst[i*4] = uint8(p >> 16)
		dst[i*4+1] = uint8(p >> 8)
		dst[i*4+2] = uint8(p)
		dst[i*4+3] = uint8(p >> 24)
	}
	return dst
}

// ToImage converts the buffer to a standard Go image.
func (cb *ColorBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cb.Width, cb.Height))
	img.Pix = cb.RGBABytes(img.Pix)
	return img
}

// SavePNG saves the buffer as a PNG file.
func (cb *ColorBuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, cb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
