package render

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// gradientTexture gives every texel a distinct value: x in the low byte,
// y in the next one.
func gradientTexture(w, h int) *Texture {
	tex := NewTexture(w, h)
	for y := range h {
		for x := range w {
			tex.Texels[y*w+x] = ARGB(0xFF, 0, uint8(y), uint8(x))
		}
	}
	return tex
}

func TestSampleUVMapping(t *testing.T) {
	tex := gradientTexture(4, 4)

	tests := []struct {
		name         string
		u, v         float64
		wantX, wantY int
	}{
		{"origin", 0, 0, 0, 0},
		{"far corner clamps", 1, 1, 3, 3},
		{"rounds half up", 0.375, 0.125, 2, 1},
		{"rounds down", 0.3, 0.6, 1, 2},
		{"negative clamps", -2, -0.5, 0, 0},
		{"beyond clamps", 5, 0.25, 3, 1},
		{"NaN is origin", math.NaN(), math.NaN(), 0, 0},
		{"infinity clamps", math.Inf(1), math.Inf(-1), 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.SampleUV(tt.u, tt.v)
			want := tex.TexelAt(tt.wantX, tt.wantY)
			if got != want {
				t.Errorf("SampleUV(%v, %v) = %08X, want texel (%d, %d) = %08X",
					tt.u, tt.v, got, tt.wantX, tt.wantY, want)
			}
		})
	}
}

func TestNewTextureMinimumSize(t *testing.T) {
	tex := NewTexture(0, -3)
	if tex.Width != 1 || tex.Height != 1 || len(tex.Texels) != 1 {
		t.Errorf("got %dx%d with %d texels", tex.Width, tex.Height, len(tex.Texels))
	}
}

func TestTextureFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 13))
	img.SetNRGBA(11, 12, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	tex := TextureFromImage(img)
	if tex.Width != 2 || tex.Height != 3 {
		t.Fatalf("size = %dx%d, want 2x3", tex.Width, tex.Height)
	}
	if got := tex.TexelAt(1, 2); got != 0xFF010203 {
		t.Errorf("texel = %08X, want FF010203", got)
	}
}

func TestFitImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))

	got := FitImage(src, 10).Bounds()
	if got.Dx() != 10 || got.Dy() != 5 {
		t.Errorf("fit size = %dx%d, want 10x5", got.Dx(), got.Dy())
	}

	if FitImage(src, 200) != image.Image(src) {
		t.Error("image within bounds should be returned unchanged")
	}
}

func TestNewCheckerTexture(t *testing.T) {
	tex := NewCheckerTexture(4, 4, 2, ColorWhite, ColorBlack)
	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 0, ColorWhite},
		{1, 1, ColorWhite},
		{2, 0, ColorBlack},
		{0, 2, ColorBlack},
		{3, 3, ColorWhite},
	}
	for _, tt := range tests {
		if got := tex.TexelAt(tt.x, tt.y); got != tt.want {
			t.Errorf("texel (%d, %d) = %08X, want %08X", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLoadTextureMissing(t *testing.T) {
	if _, err := LoadTexture("/nonexistent/texture.png", 0); err == nil {
		t.Error("expected error for missing file")
	}
}
