// Package arena provides a growable, reusable sequence for per-frame data.
//
// An Arena grows on demand while it is filled and is Reset (not freed) when
// the frame ends, so steady-state frames allocate nothing. Slices returned by
// Items alias the arena's storage and are only valid until the next Reset or
// Push; callers must not keep them across frames.
package arena

// Arena is a growable buffer of T values. The zero value is an empty arena
// ready to use.
type Arena[T any] struct {
	items []T
}

// New creates an arena with room for capacity items before it has to grow.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Push appends v, growing the backing storage if needed.
func (a *Arena[T]) Push(v T) {
	a.items = append(a.items, v)
}

// Len returns the number of items currently held.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Cap returns the number of items the arena can hold without growing.
func (a *Arena[T]) Cap() int {
	return cap(a.items)
}

// At returns a pointer to item i. It panics if i is out of range, like a
// slice index would.
func (a *Arena[T]) At(i int) *T {
	return &a.items[i]
}

// Items returns the held items. The slice aliases the arena.
func (a *Arena[T]) Items() []T {
	return a.items
}

// Reset empties the arena while keeping its capacity. Held items are zeroed
// so nothing they reference outlives the frame.
func (a *Arena[T]) Reset() {
	clear(a.items)
	a.items = a.items[:0]
}
