package render

import (
	"cmp"
	"slices"
)

// SortByDepth orders triangles farthest first so nearer ones paint over
// them. Equal depths keep no particular order.
func SortByDepth(tris []Triangle) {
	slices.SortFunc(tris, func(a, b Triangle) int {
		return cmp.Compare(b.AvgDepth, a.AvgDepth)
	})
}
