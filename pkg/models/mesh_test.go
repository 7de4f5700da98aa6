package models

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/softrender/pkg/math3d"
)

func triangleMesh() *Mesh {
	m := NewMesh("tri")
	m.Vertices = []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(4, 0, 0),
		math3d.V3(0, 2, 1),
	}
	m.Faces = []Face{{A: 0, B: 1, C: 2, Color: ColorWhite}}
	return m
}

func TestNewMeshUnitScale(t *testing.T) {
	m := NewMesh("empty")
	if m.Scale != math3d.One3() {
		t.Errorf("Scale = %v, want (1,1,1)", m.Scale)
	}
	if m.WorldMatrix() != math3d.Identity() {
		t.Error("default transform should be identity")
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		face    Face
		wantErr bool
	}{
		{"in range", Face{A: 0, B: 1, C: 2}, false},
		{"past end", Face{A: 0, B: 1, C: 3}, true},
		{"negative", Face{A: -1, B: 1, C: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := triangleMesh()
			m.Faces = []Face{tt.face}
			err := m.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrFaceIndex) {
					t.Errorf("Validate() = %v, want ErrFaceIndex", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestMeshBounds(t *testing.T) {
	m := triangleMesh()
	m.CalculateBounds()

	if m.BoundsMin != math3d.V3(0, 0, 0) {
		t.Errorf("BoundsMin = %v", m.BoundsMin)
	}
	if m.BoundsMax != math3d.V3(4, 2, 1) {
		t.Errorf("BoundsMax = %v", m.BoundsMax)
	}
	if c := m.Center(); c != math3d.V3(2, 1, 0.5) {
		t.Errorf("Center = %v", c)
	}
}

func TestMeshNormalize(t *testing.T) {
	m := triangleMesh()
	m.Normalize(2)

	size := m.Size()
	if math.Abs(size.X-2) > 1e-9 {
		t.Errorf("largest dimension = %f, want 2", size.X)
	}
	if c := m.Center(); c.Len() > 1e-9 {
		t.Errorf("center = %v, want origin", c)
	}
}

func TestMeshNormalizeFlat(t *testing.T) {
	m := NewMesh("point")
	m.Vertices = []math3d.Vec3{math3d.V3(1, 1, 1)}
	m.Normalize(1)
	if m.Vertices[0] != math3d.V3(1, 1, 1) {
		t.Errorf("zero-size mesh should be untouched, got %v", m.Vertices[0])
	}
}

func TestMeshClone(t *testing.T) {
	m := triangleMesh()
	c := m.Clone()

	c.Vertices[0] = math3d.V3(9, 9, 9)
	c.Faces[0].Color = 0xFF00FF00

	if m.Vertices[0] == c.Vertices[0] {
		t.Error("clone shares vertex storage")
	}
	if m.Faces[0].Color != ColorWhite {
		t.Error("clone shares face storage")
	}
}

func TestMeshFillColor(t *testing.T) {
	m := NewCube()
	m.FillColor(0xFF123456)
	for i, f := range m.Faces {
		if f.Color != 0xFF123456 {
			t.Fatalf("face %d color = %08X", i, f.Color)
		}
	}
}

func TestLightIntensity(t *testing.T) {
	l := NewLight(math3d.V3(0, 0, 2))
	if l.Direction != math3d.V3(0, 0, 1) {
		t.Errorf("direction not normalized: %v", l.Direction)
	}

	tests := []struct {
		name   string
		normal math3d.Vec3
		want   float64
	}{
		{"facing light", math3d.V3(0, 0, -1), 1},
		{"perpendicular", math3d.V3(1, 0, 0), 0},
		{"facing away", math3d.V3(0, 0, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Intensity(tt.normal); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Intensity = %f, want %f", got, tt.want)
			}
		})
	}
}
