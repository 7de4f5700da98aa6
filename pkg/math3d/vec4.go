package math3d

// Vec4 represents a 4D vector (or homogeneous 3D point).
// After projection W carries the unmodified camera-space depth.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// V4FromV3 lifts a point into homogeneous form with W = 1.
func V4FromV3(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Vec3 returns the Vec3 portion (ignoring W).
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide divides X, Y, Z by W and keeps W untouched.
// ok is false when W is zero; the vector is returned unchanged in that case.
func (v Vec4) PerspectiveDivide() (Vec4, bool) {
	if v.W == 0 {
		return v, false
	}
	return Vec4{v.X / v.W, v.Y / v.W, v.Z / v.W, v.W}, true
}
