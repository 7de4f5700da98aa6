package render

import (
	"image/color"
	"testing"
)

func TestLightApply(t *testing.T) {
	tests := []struct {
		name   string
		c      uint32
		factor float64
		want   uint32
	}{
		{"identity", 0xFF336699, 1, 0xFF336699},
		{"black out keeps alpha", 0x80336699, 0, 0x80000000},
		{"half", 0xFF806040, 0.5, 0xFF403020},
		{"saturates", 0xFF80FF10, 3, 0xFFFFFF30},
		{"negative clamps to zero", 0xFFFFFFFF, -0.5, 0xFF000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LightApply(tt.c, tt.factor); got != tt.want {
				t.Errorf("LightApply(%08X, %v) = %08X, want %08X", tt.c, tt.factor, got, tt.want)
			}
		})
	}
}

func TestColorPacking(t *testing.T) {
	c := ARGB(0x11, 0x22, 0x33, 0x44)
	if c != 0x11223344 {
		t.Fatalf("ARGB = %08X", c)
	}
	a, r, g, b := Channels(c)
	if a != 0x11 || r != 0x22 || g != 0x33 || b != 0x44 {
		t.Errorf("Channels = %x %x %x %x", a, r, g, b)
	}
	if RGB(1, 2, 3) != 0xFF010203 {
		t.Errorf("RGB = %08X", RGB(1, 2, 3))
	}

	n := ToNRGBA(0xFF102030)
	if n != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Errorf("ToNRGBA = %v", n)
	}
	if got := FromColor(n); got != 0xFF102030 {
		t.Errorf("FromColor = %08X", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#336699", 0xFF336699, false},
		{"0x80336699", 0x80336699, false},
		{"FF000000", 0xFF000000, false},
		{"#123", 0, true},
		{"zzzzzz", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %08X, want %08X", tt.in, got, tt.want)
			}
		})
	}
}
