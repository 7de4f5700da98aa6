package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	xdraw "golang.org/x/image/draw"
)

// Texture is a row-major grid of ARGB texels.
type Texture struct {
	Width  int
	Height int
	Texels []uint32
}

// NewTexture creates an empty texture. Non-positive sizes yield a 1x1
// texture.
func NewTexture(width, height int) *Texture {
	width = max(width, 1)
	height = max(height, 1)
	return &Texture{
		Width:  width,
		Height: height,
		Texels: make([]uint32, width*height),
	}
}

// LoadTexture decodes an image file (PNG, JPEG, BMP, TIFF or WebP).
// When maxDim is positive the image is downscaled so neither side exceeds it.
func LoadTexture(path string, maxDim int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	if maxDim > 0 {
		img = FitImage(img, maxDim)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage converts an image to a texture.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	tex := NewTexture(bounds.Dx(), bounds.Dy())

	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			tex.Texels[y*tex.Width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return tex
}

// FitImage scales img down with Catmull-Rom filtering so its larger side is
// maxDim. Images already within bounds are returned as is.
func FitImage(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(max(w, h))
	dw := max(1, int(math.Round(float64(w)*scale)))
	dh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// NewCheckerTexture creates a procedural checkerboard texture.
func NewCheckerTexture(width, height, checkSize int, c1, c2 uint32) *Texture {
	tex := NewTexture(width, height)
	checkSize = max(checkSize, 1)
	for y := range tex.Height {
		for x := range tex.Width {
			c := c2
			if (x/checkSize+y/checkSize)%2 == 0 {
				c = c1
			}
			tex.Texels[y*tex.Width+x] = c
		}
	}
	return tex
}

// DefaultTexture is the built-in 64x64 red and grey checkerboard used when
// no texture file is given.
func DefaultTexture() *Texture {
	return NewCheckerTexture(64, 64, 8, RGB(0xB0, 0x3A, 0x2E), RGB(0xC8, 0xC8, 0xC8))
}

// TexelAt returns the texel at (x, y) with coordinates clamped to the edge.
func (t *Texture) TexelAt(x, y int) uint32 {
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)
	return t.Texels[y*t.Width+x]
}

// SampleUV maps a texture coordinate to the nearest texel:
// x = round(u*Width), y = round(v*Height), both clamped to the texture.
// V=0 is the top row.
func (t *Texture) SampleUV(u, v float64) uint32 {
	return t.TexelAt(roundCoord(u*float64(t.Width)), roundCoord(v*float64(t.Height)))
}

// roundCoord rounds to the nearest integer, mapping NaN to 0 and keeping
// infinities inside int range.
func roundCoord(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(f))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
