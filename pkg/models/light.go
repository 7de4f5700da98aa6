package models

import "github.com/taigrr/softrender/pkg/math3d"

// Light is a single directional light. Direction points from the light
// into the scene.
type Light struct {
	Direction math3d.Vec3
}

// NewLight creates a light shining along dir (normalized).
func NewLight(dir math3d.Vec3) Light {
	return Light{Direction: dir.Normalize()}
}

// Intensity returns the diffuse factor for a surface with the given unit
// normal. The sign is flipped because a lit surface faces against the
// light's travel direction. The result is not clamped.
func (l Light) Intensity(normal math3d.Vec3) float64 {
	return -normal.Dot(l.Direction)
}
