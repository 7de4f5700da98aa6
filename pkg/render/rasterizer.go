package render

import (
	"math"

	"github.com/taigrr/softrender/pkg/math3d"
)

// Rasterizer scan-converts projected triangles into a color buffer.
// It has no depth buffer; callers draw triangles back to front.
type Rasterizer struct {
	buf *ColorBuffer
}

// NewRasterizer creates a rasterizer drawing into buf.
func NewRasterizer(buf *ColorBuffer) *Rasterizer {
	return &Rasterizer{buf: buf}
}

// SetTarget switches the destination buffer, e.g. after a resize.
func (r *Rasterizer) SetTarget(buf *ColorBuffer) {
	r.buf = buf
}

// FillTriangle draws t in a single color. Corners are snapped to whole
// pixels and the triangle is split at the height of its middle corner into
// a flat-bottom and a flat-top half, each walked one row at a time.
// Zero-area triangles and ones with non-finite corners draw nothing.
func (r *Rasterizer) FillTriangle(t *Triangle, c uint32) {
	v := snapVertices(t)
	if !drawable(v) {
		return
	}

	w := r.buf.Width
	pix := r.buf.Pixels
	r.scan(v, func(y, x0, x1 int) {
		row := pix[y*w : y*w+w]
		for x := x0; x <= x1; x++ {
			row[x] = c
		}
	})
}

// DrawTriangleTextured draws t with its texture coordinates mapped onto
// tex, lit by the triangle's intensity. Weights come from the snapped,
// y-sorted corners. With perspective set, u and v are interpolated over
// 1/w instead of linearly in screen space.
func (r *Rasterizer) DrawTriangleTextured(t *Triangle, tex *Texture, perspective bool) {
	v := snapVertices(t)
	if !drawable(v) {
		return
	}

	a := math3d.V2(v[0].x, v[0].y)
	b := math3d.V2(v[1].x, v[1].y)
	c := math3d.V2(v[2].x, v[2].y)
	w := r.buf.Width
	pix := r.buf.Pixels

	r.scan(v, func(y, x0, x1 int) {
		for x := x0; x <= x1; x++ {
			bc, ok := math3d.Barycentric(a, b, c, math3d.V2(float64(x), float64(y)))
			if !ok {
				return
			}

			var u, tv float64
			if perspective {
				recipA, recipB, recipC := 1/v[0].w, 1/v[1].w, 1/v[2].w
				recip := bc.X*recipA + bc.Y*recipB + bc.Z*recipC
				u = (bc.X*v[0].uv.U*recipA + bc.Y*v[1].uv.U*recipB + bc.Z*v[2].uv.U*recipC) / recip
				tv = (bc.X*v[0].uv.V*recipA + bc.Y*v[1].uv.V*recipB + bc.Z*v[2].uv.V*recipC) / recip
			} else {
				u = bc.X*v[0].uv.U + bc.Y*v[1].uv.U + bc.Z*v[2].uv.U
				tv = bc.X*v[0].uv.V + bc.Y*v[1].uv.V + bc.Z*v[2].uv.V
			}

			pix[y*w+x] = LightApply(tex.SampleUV(u, tv), t.Intensity)
		}
	})
}

// scan walks the rows of a non-degenerate, y-sorted triangle and calls fn
// with each inclusive, clipped span. The row of the middle corner belongs
// to both halves and may be reported twice.
func (r *Rasterizer) scan(v [3]rasterVertex, fn func(y, x0, x1 int)) {
	top, mid, bottom := v[0], v[1], v[2]
	switch {
	case mid.y == bottom.y:
		r.scanFlatBottom(top, mid, bottom, fn)
	case top.y == mid.y:
		r.scanFlatTop(top, mid, bottom, fn)
	default:
		m := splitPoint(top, mid, bottom)
		r.scanFlatBottom(top, mid, m, fn)
		r.scanFlatTop(mid, m, bottom, fn)
	}
}

// scanFlatBottom walks down from top to the row shared by b1 and b2.
func (r *Rasterizer) scanFlatBottom(top, b1, b2 rasterVertex, fn func(y, x0, x1 int)) {
	h := b1.y - top.y
	inv1 := (b1.x - top.x) / h
	inv2 := (b2.x - top.x) / h

	y0, y1, ok := r.rows(top.y, b1.y)
	if !ok {
		return
	}
	xs := top.x + inv1*(float64(y0)-top.y)
	xe := top.x + inv2*(float64(y0)-top.y)
	for y := y0; y <= y1; y++ {
		r.span(y, xs, xe, fn)
		xs += inv1
		xe += inv2
	}
}

// scanFlatTop walks up from bottom to the row shared by t1 and t2.
func (r *Rasterizer) scanFlatTop(t1, t2, bottom rasterVertex, fn func(y, x0, x1 int)) {
	h := bottom.y - t1.y
	inv1 := (bottom.x - t1.x) / h
	inv2 := (bottom.x - t2.x) / h

	y0, y1, ok := r.rows(t1.y, bottom.y)
	if !ok {
		return
	}
	xs := bottom.x - inv1*(bottom.y-float64(y1))
	xe := bottom.x - inv2*(bottom.y-float64(y1))
	for y := y1; y >= y0; y-- {
		r.span(y, xs, xe, fn)
		xs -= inv1
		xe -= inv2
	}
}

// rows clips the row range [from, to] to the buffer.
func (r *Rasterizer) rows(from, to float64) (int, int, bool) {
	if math.IsNaN(from) || math.IsNaN(to) {
		return 0, 0, false
	}
	lo := math.Max(from, 0)
	hi := math.Min(to, float64(r.buf.Height-1))
	if lo > hi {
		return 0, 0, false
	}
	return int(lo), int(hi), true
}

// span rounds, orders and clips one row before handing it to fn.
func (r *Rasterizer) span(y int, xa, xb float64, fn func(y, x0, x1 int)) {
	if math.IsNaN(xa) || math.IsNaN(xb) {
		return
	}
	if xa > xb {
		xa, xb = xb, xa
	}
	xa = math.Round(xa)
	xb = math.Round(xb)
	if xb < 0 || xa > float64(r.buf.Width-1) {
		return
	}
	fn(y, int(math.Max(xa, 0)), int(math.Min(xb, float64(r.buf.Width-1))))
}
