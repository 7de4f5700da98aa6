package math3d

// Barycentric returns the weights (α, β, γ) of point p with respect to the
// triangle a, b, c, packed as X, Y, Z. Weights are ratios of signed
// parallelogram areas: α = area(p,b,c)/area(a,b,c), β = area(a,p,c)/area(a,b,c)
// and γ = 1 - α - β, so they always sum to 1. A point outside the triangle
// has at least one negative weight.
//
// ok is false for a degenerate (zero-area) triangle.
func Barycentric(a, b, c, p Vec2) (w Vec3, ok bool) {
	area := b.Sub(a).Cross(c.Sub(a))
	if area == 0 {
		return Vec3{}, false
	}

	alpha := b.Sub(p).Cross(c.Sub(p)) / area
	beta := p.Sub(a).Cross(c.Sub(a)) / area

	return Vec3{alpha, beta, 1 - alpha - beta}, true
}
