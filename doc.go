// Package enclose answers containment queries on closed rectilinear regions.
//
// # Overview
//
// A region is given as an ordered list of vertices on the integer lattice.
// Consecutive vertices, and the last and first vertex, are joined by
// axis-aligned edges. Each lattice point is a unit tile; the region is the
// set of boundary tiles plus every tile they enclose.
//
// enclose answers two questions about such a region:
//   - Is the rectangle spanned by two corners made only of region tiles?
//   - Which pair of vertices spans the largest such rectangle?
//
// # Quick Start
//
//	import "github.com/gogpu/enclose"
//
//	r, err := enclose.Build([]enclose.Vertex{
//	    {X: 0, Y: 0}, {X: 0, Y: 10}, {X: 4, Y: 10},
//	    {X: 4, Y: 4}, {X: 10, Y: 4}, {X: 10, Y: 0},
//	})
//	if err != nil {
//	    return err
//	}
//
//	r.Enclosed(enclose.Vertex{X: 0, Y: 0}, enclose.Vertex{X: 4, Y: 10}) // true
//	best := r.MaxEnclosedArea() // 55
//
// # Pipeline
//
// Build runs four stages, each consuming the output of the previous one:
//   - Compaction: every distinct coordinate and the coordinate after it
//     become interval boundaries, so the grid size depends on the number of
//     vertices rather than on the coordinate range.
//   - Boundary rasterization: edges are projected onto the compacted grid
//     and their cells marked as walls.
//   - Interior fill: a scanline parity pass finds interior seeds and a flood
//     fill marks every cell reachable from them.
//   - Containment index: a summed-area table over exterior cells answers
//     any rectangle query in constant time.
//
// A Region is immutable once built and safe for concurrent queries.
//
// # Coordinate System
//
// X selects the row and Y the column. Coordinates are non-negative. Areas
// are inclusive: the rectangle from (0,0) to (5,5) covers 36 tiles.
//
// # Logging
//
// enclose is silent by default. Use SetLogger to receive stage diagnostics
// through log/slog.
package enclose
