package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw paints the buffer onto a terminal screen with upper half-block
// cells: each cell shows two stacked pixels, the top one as foreground and
// the bottom one as background. The buffer height should be twice the
// area height.
func (cb *ColorBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		if topY >= cb.Height {
			break
		}
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= cb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(cb.At(x, topY)),
					Bg: cellColor(cb.At(x, botY)),
				},
			})
		}
	}
}

// cellColor converts a packed pixel for the terminal. Fully transparent
// pixels map to the terminal's default color.
func cellColor(c uint32) color.Color {
	if c>>24 == 0 {
		return nil
	}
	return ToNRGBA(c)
}
