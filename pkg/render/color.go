package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Colors are packed 32-bit ARGB values: 0xAARRGGBB.
const (
	ColorBlack  uint32 = 0xFF000000
	ColorWhite  uint32 = 0xFFFFFFFF
	ColorRed    uint32 = 0xFFFF0000
	ColorGreen  uint32 = 0xFF00FF00
	ColorBlue   uint32 = 0xFF0000FF
	ColorYellow uint32 = 0xFFFFFF00
	ColorGray   uint32 = 0xFF808080

	// Defaults for the frame decorations.
	ColorGrid   uint32 = 0xFF333333
	ColorWire   uint32 = 0xFF444444
	ColorVertex uint32 = 0xFFFF0000
)

// ARGB packs four channels into a color.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) uint32 {
	return ARGB(0xFF, r, g, b)
}

// Channels unpacks a color.
func Channels(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToNRGBA converts a packed color to the standard library's
// non-premultiplied color type.
func ToNRGBA(c uint32) color.NRGBA {
	a, r, g, b := Channels(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor packs any color.Color.
func FromColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// LightApply scales the red, green and blue channels of c by factor,
// clamping each to [0, 255]. Alpha is kept.
func LightApply(c uint32, factor float64) uint32 {
	a, r, g, b := Channels(c)
	return ARGB(a, scaleChannel(r, factor), scaleChannel(g, factor), scaleChannel(b, factor))
}

func scaleChannel(v uint8, factor float64) uint8 {
	f := float64(v) * factor
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// ParseColor accepts "#RRGGBB", "#AARRGGBB", "0xAARRGGBB" or a bare hex
// value. Six-digit values are made opaque.
func ParseColor(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x"), "0X")
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	switch len(h) {
	case 6:
		return 0xFF000000 | uint32(v), nil
	case 8:
		return uint32(v), nil
	default:
		return 0, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
}
