package render

import "math"

// markerSize is the side of the square drawn on each vertex.
const markerSize = 6

// DrawTriangleWire outlines t with one DDA line per edge.
func (r *Rasterizer) DrawTriangleWire(t *Triangle, c uint32) {
	for i := range 3 {
		p, q := t.Points[i], t.Points[(i+1)%3]
		r.buf.DrawLine(roundCoord(p.X), roundCoord(p.Y), roundCoord(q.X), roundCoord(q.Y), c)
	}
}

// DrawVertexMarkers draws a small filled square centred on each corner of t.
func (r *Rasterizer) DrawVertexMarkers(t *Triangle, c uint32) {
	for _, p := range t.Points {
		x := roundCoord(p.X) - markerSize/2
		y := roundCoord(p.Y) - markerSize/2
		r.buf.DrawRect(x, y, markerSize, markerSize, c)
	}
}

// lineSteps narrows the DDA step range [lo, hi] to steps whose position
// start + i*inc can round into [0, size). Steps outside are skipped without
// visiting them, so lines from far off-screen stay cheap.
func lineSteps(start, inc float64, size, lo, hi int) (int, int) {
	if inc == 0 {
		if start < -1 || start > float64(size) {
			return 1, 0
		}
		return lo, hi
	}

	a := (-1 - start) / inc
	b := (float64(size) - start) / inc
	if a > b {
		a, b = b, a
	}
	a = math.Max(math.Floor(a), float64(lo))
	b = math.Min(math.Ceil(b), float64(hi))
	if a > b {
		return 1, 0
	}
	return int(a), int(b)
}
