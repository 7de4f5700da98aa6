package render

import (
	"math"

	"github.com/taigrr/softrender/pkg/math3d"
	"github.com/taigrr/softrender/pkg/models"
)

// Triangle is a projected face ready for rasterization.
type Triangle struct {
	// Points hold screen x, y, NDC z and view depth in W, in the source
	// face's A, B, C order.
	Points    [3]math3d.Vec4
	TexCoords [3]models.UV
	Color     uint32

	// Intensity is the unclamped diffuse factor from the light.
	Intensity float64

	// AvgDepth is the mean view-space z of the three corners.
	AvgDepth float64
}

// rasterVertex is a triangle corner snapped to the pixel grid.
type rasterVertex struct {
	x, y float64
	uv   models.UV
	w    float64
}

// snapVertices rounds the corners to whole pixels and orders them by
// ascending y. Texture coordinates and depth travel with their corner.
func snapVertices(t *Triangle) [3]rasterVertex {
	var v [3]rasterVertex
	for i, p := range t.Points {
		v[i] = rasterVertex{
			x:  math.Round(p.X),
			y:  math.Round(p.Y),
			uv: t.TexCoords[i],
			w:  p.W,
		}
	}

	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].y > v[2].y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	return v
}

// splitPoint returns the point on the long edge top-bottom at the height
// of mid. Its y equals mid.y exactly.
func splitPoint(top, mid, bottom rasterVertex) rasterVertex {
	t := (mid.y - top.y) / (bottom.y - top.y)
	return rasterVertex{
		x: top.x + (bottom.x-top.x)*t,
		y: mid.y,
	}
}

// area2 is twice the signed area of the snapped triangle.
func area2(v [3]rasterVertex) float64 {
	return (v[1].x-v[0].x)*(v[2].y-v[0].y) - (v[2].x-v[0].x)*(v[1].y-v[0].y)
}

// drawable reports whether the snapped corners are finite and enclose a
// non-zero area.
func drawable(v [3]rasterVertex) bool {
	for _, p := range v {
		if !finite(p.x) || !finite(p.y) {
			return false
		}
	}
	a := area2(v)
	return a != 0 && !math.IsNaN(a)
}
