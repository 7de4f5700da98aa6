package arena

import (
	"testing"
)

type record struct {
	depth float64
	tag   *string
}

func TestArenaPushAndAt(t *testing.T) {
	a := New[int](2)
	for i := range 10 {
		a.Push(i * i)
	}

	if a.Len() != 10 {
		t.Fatalf("Len = %d, want 10", a.Len())
	}
	if a.Cap() < 10 {
		t.Errorf("Cap = %d, want >= 10", a.Cap())
	}
	for i := range 10 {
		if got := *a.At(i); got != i*i {
			t.Errorf("At(%d) = %d, want %d", i, got, i*i)
		}
	}

	*a.At(3) = -1
	if a.Items()[3] != -1 {
		t.Error("At should return a pointer into the arena")
	}
}

func TestArenaResetKeepsCapacity(t *testing.T) {
	a := New[record](0)
	for i := range 64 {
		a.Push(record{depth: float64(i)})
	}
	capBefore := a.Cap()

	a.Reset()

	if a.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", a.Len())
	}
	if a.Cap() != capBefore {
		t.Errorf("Cap after Reset = %d, want %d", a.Cap(), capBefore)
	}

	// Refilling to the same size must not reallocate.
	for i := range 64 {
		a.Push(record{depth: float64(i)})
	}
	if a.Cap() != capBefore {
		t.Errorf("Cap after refill = %d, want %d", a.Cap(), capBefore)
	}
}

func TestArenaResetClearsRecords(t *testing.T) {
	name := "frame-1"
	a := New[record](4)
	a.Push(record{depth: 1, tag: &name})
	a.Reset()

	// Look at the retained storage directly: the record must be zeroed.
	backing := a.items[:1]
	if backing[0].tag != nil || backing[0].depth != 0 {
		t.Errorf("Reset left stale record %+v", backing[0])
	}
}

func TestArenaZeroValue(t *testing.T) {
	var a Arena[string]
	a.Push("x")
	if a.Len() != 1 || *a.At(0) != "x" {
		t.Errorf("zero-value arena unusable: len=%d", a.Len())
	}
	a.Reset()
	a.Reset()
	if a.Len() != 0 {
		t.Error("double Reset should leave the arena empty")
	}
}

func BenchmarkArenaFrame(b *testing.B) {
	a := New[record](0)
	for b.Loop() {
		for i := range 200 {
			a.Push(record{depth: float64(i)})
		}
		a.Reset()
	}
}
