package math3d

import (
	"math"
	"testing"
)

func TestBarycentric(t *testing.T) {
	a, b, c := V2(10, 10), V2(60, 20), V2(30, 70)

	tests := []struct {
		name     string
		p        Vec2
		expected Vec3
	}{
		{"vertex a", a, V3(1, 0, 0)},
		{"vertex b", b, V3(0, 1, 0)},
		{"vertex c", c, V3(0, 0, 1)},
		{"centroid", V2((10+60+30)/3.0, (10+20+70)/3.0), V3(1.0/3, 1.0/3, 1.0/3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := Barycentric(a, b, c, tc.p)
			if !ok {
				t.Fatal("unexpected degenerate triangle")
			}
			if math.Abs(w.X-tc.expected.X) > 1e-9 ||
				math.Abs(w.Y-tc.expected.Y) > 1e-9 ||
				math.Abs(w.Z-tc.expected.Z) > 1e-9 {
				t.Errorf("Barycentric(%v) = %v, want %v", tc.p, w, tc.expected)
			}
		})
	}

	t.Run("interior points sum to one", func(t *testing.T) {
		for _, p := range []Vec2{V2(30, 30), V2(35, 40), V2(20, 15), V2(45, 30)} {
			w, _ := Barycentric(a, b, c, p)
			if math.Abs(w.X+w.Y+w.Z-1) > 1e-9 {
				t.Errorf("weights at %v sum to %v", p, w.X+w.Y+w.Z)
			}
			if w.X < 0 || w.Y < 0 || w.Z < 0 {
				t.Errorf("interior point %v has negative weight %v", p, w)
			}
		}
	})

	t.Run("outside triangle", func(t *testing.T) {
		w, _ := Barycentric(a, b, c, V2(0, 0))
		if w.X >= 0 && w.Y >= 0 && w.Z >= 0 {
			t.Error("point outside triangle should have a negative weight")
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		if _, ok := Barycentric(V2(0, 0), V2(1, 1), V2(2, 2), V2(1, 1)); ok {
			t.Error("collinear triangle should be reported as degenerate")
		}
	})
}
