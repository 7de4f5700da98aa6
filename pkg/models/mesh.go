// Package models provides the scene model of the renderer: meshes, their
// loaders and the light source.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/softrender/pkg/math3d"
)

// ErrFaceIndex is returned when a face references a vertex that does not exist.
var ErrFaceIndex = errors.New("face vertex index out of range")

// UV is a texture coordinate pair in the 0-1 range.
type UV struct {
	U, V float64
}

// Face is a triangle referencing three mesh vertices by 0-based index.
// A, B, C are wound clockwise when the face is seen from its front side.
type Face struct {
	A, B, C       int
	AUV, BUV, CUV UV
	Color         uint32 // ARGB fallback when no texture is drawn
}

// Indices returns the vertex indices in A, B, C order.
func (f Face) Indices() [3]int {
	return [3]int{f.A, f.B, f.C}
}

// UVs returns the texture coordinates in A, B, C order.
func (f Face) UVs() [3]UV {
	return [3]UV{f.AUV, f.BUV, f.CUV}
}

// Mesh is an indexed triangle mesh plus the transform that places it in
// the world. Rotation is in radians per axis.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	Scale       math3d.Vec3
	Rotation    math3d.Vec3
	Translation math3d.Vec3

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh with unit scale.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
		Scale:    math3d.One3(),
	}
}

// Validate checks that every face index resolves to a vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.Indices() {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh %q face %d: index %d with %d vertices: %w", m.Name, i, idx, n, ErrFaceIndex)
			}
		}
	}
	return nil
}

// WorldMatrix returns the mesh's scale → rotate → translate transform.
func (m *Mesh) WorldMatrix() math3d.Mat4 {
	return math3d.World(m.Scale, m.Rotation, m.Translation)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Normalize recenters the vertices on the origin and scales them so the
// largest bounding box dimension equals size.
func (m *Mesh) Normalize(size float64) {
	m.CalculateBounds()
	dims := m.Size()
	maxDim := max(dims.X, dims.Y, dims.Z)
	if maxDim == 0 {
		return
	}

	center := m.Center()
	s := size / maxDim
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center).Scale(s)
	}
	m.CalculateBounds()
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := *m
	clone.Vertices = make([]math3d.Vec3, len(m.Vertices))
	clone.Faces = make([]Face, len(m.Faces))
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return &clone
}

// FillColor sets the fallback color of every face.
func (m *Mesh) FillColor(argb uint32) {
	for i := range m.Faces {
		m.Faces[i].Color = argb
	}
}
