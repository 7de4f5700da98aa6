package render

import (
	"math/rand/v2"
	"testing"
)

func TestSortByDepth(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tris := make([]Triangle, 200)
	for i := range tris {
		tris[i].AvgDepth = rng.Float64() * 100
	}
	tris[10].AvgDepth = tris[20].AvgDepth

	SortByDepth(tris)

	for i := 1; i < len(tris); i++ {
		if tris[i-1].AvgDepth < tris[i].AvgDepth {
			t.Fatalf("depth[%d] = %f < depth[%d] = %f", i-1, tris[i-1].AvgDepth, i, tris[i].AvgDepth)
		}
	}
}

func TestSortByDepthEmpty(t *testing.T) {
	SortByDepth(nil)
	SortByDepth([]Triangle{{AvgDepth: 1}})
}

func BenchmarkSortByDepth(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	src := make([]Triangle, 5000)
	for i := range src {
		src[i].AvgDepth = rng.Float64() * 100
	}
	tris := make([]Triangle, len(src))

	for b.Loop() {
		copy(tris, src)
		SortByDepth(tris)
	}
}
