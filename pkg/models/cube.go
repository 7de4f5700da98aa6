package models

import "github.com/taigrr/softrender/pkg/math3d"

// ColorWhite is the default ARGB face color.
const ColorWhite uint32 = 0xFFFFFFFF

// cubeVertices are the corners of a 2x2x2 cube centered at the origin.
var cubeVertices = []math3d.Vec3{
	{X: -1, Y: -1, Z: -1}, // 1
	{X: -1, Y: 1, Z: -1},  // 2
	{X: 1, Y: 1, Z: -1},   // 3
	{X: 1, Y: -1, Z: -1},  // 4
	{X: 1, Y: 1, Z: 1},    // 5
	{X: 1, Y: -1, Z: 1},   // 6
	{X: -1, Y: 1, Z: 1},   // 7
	{X: -1, Y: -1, Z: 1},  // 8
}

// cubeFaces use 1-based vertex indices, clockwise winding seen from outside.
// Each side is two triangles sharing the diagonal from its first to its
// third corner.
var cubeFaces = []Face{
	// front
	{A: 1, B: 2, C: 3, AUV: UV{0, 1}, BUV: UV{0, 0}, CUV: UV{1, 0}, Color: ColorWhite},
	{A: 1, B: 3, C: 4, AUV: UV{0, 1}, BUV: UV{1, 0}, CUV: UV{1, 1}, Color: ColorWhite},
	// right
	{A: 4, B: 3, C: 5, AUV: UV{0, 1}, BUV: UV{0, 0}, CUV: UV{1, 0}, Color: ColorWhite},
	{A: 4, B: 5, C: 6, AUV: UV{0, 1}, BUV: UV{1, 0}, CUV: UV{1, 1}, Color: ColorWhite},
	// back
	{A: 6, B: 5, C: 7, AUV: UV{0, 1}, BUV: UV{0, 0}, CUV: UV{1, 0}, Color: ColorWhite},
	{A: 6, B: 7, C: 8, AUV: UV{0, 1}, BUV: UV{1, 0}, CUV: UV{1, 1}, Color: ColorWhite},
	// left
	{A: 8, B: 7, C: 2, AUV: UV{0, 1}, BUV: UV{0, 0}, CUV: UV{1, 0}, Color: ColorWhite},
	{A: 8, B: 2, C: 1, AUV: UV{0, 1}, BUV: UV{1, 0}, CUV: UV{1, 1}, Color: ColorWhite},
	// top
	{A: 2, B: 7, C: 5, AUV: UV{0, 1}, BUV: UV{0, 0}, CUV: UV{1, 0}, Color: ColorWhite},
	{A: 2, B: 5, C: 3, AUV: UV{0, 1}, BUV: UV{1, 0}, CUV: UV{1, 1}, Color: ColorWhite},
	// bottom
	{A: 6, B: 8, C: 1, AUV: UV{0, 1}, BUV: UV{0, 0}, CUV: UV{1, 0}, Color: ColorWhite},
	{A: 6, B: 1, C: 4, AUV: UV{0, 1}, BUV: UV{1, 0}, CUV: UV{1, 1}, Color: ColorWhite},
}

// NewCube returns the built-in unit cube: 8 vertices, 12 faces.
func NewCube() *Mesh {
	m := NewMesh("cube")
	m.Vertices = append(m.Vertices, cubeVertices...)
	for _, f := range cubeFaces {
		f.A--
		f.B--
		f.C--
		m.Faces = append(m.Faces, f)
	}
	m.CalculateBounds()
	return m
}
