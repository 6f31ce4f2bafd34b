// Package geom holds the vertex model shared by every pipeline stage.
package geom

import (
	"fmt"
	"math"
)

// MaxCoordinate is the largest accepted vertex coordinate. It keeps v+1 tile
// edges and inclusive areas, (MaxCoordinate+1) squared, inside int64.
const MaxCoordinate int64 = math.MaxInt32

// Vertex is a boundary corner. X indexes rows and Y indexes columns.
type Vertex struct {
	X, Y int64
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Edge is one side of the closed boundary ring.
type Edge struct {
	// Index is the position of From in the vertex list.
	Index int

	From, To Vertex
}

// Aligned reports whether the edge runs along exactly one axis.
// Zero-length edges share both coordinates and are not aligned.
func (e Edge) Aligned() bool {
	return (e.From.X == e.To.X) != (e.From.Y == e.To.Y)
}

// Degenerate reports whether both endpoints coincide.
func (e Edge) Degenerate() bool {
	return e.From == e.To
}

// Edges returns the n edges of the closed ring through vs.
// The closing edge from the last vertex back to the first is generated here;
// vs is never modified.
func Edges(vs []Vertex) []Edge {
	if len(vs) < 2 {
		return nil
	}
	edges := make([]Edge, len(vs))
	for i := range vs {
		edges[i] = Edge{Index: i, From: vs[i], To: vs[(i+1)%len(vs)]}
	}
	return edges
}

// Normalize drops consecutive duplicate vertices, including a trailing
// vertex that repeats the first one. The input slice is left untouched.
func Normalize(vs []Vertex) []Vertex {
	out := make([]Vertex, 0, len(vs))
	for _, v := range vs {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// Validate rejects inputs that cannot describe a region: fewer than three
// vertices or a coordinate outside [0, MaxCoordinate].
func Validate(vs []Vertex) error {
	if len(vs) < 3 {
		return &DegenerateInputError{Count: len(vs)}
	}
	for i, v := range vs {
		if v.X < 0 || v.Y < 0 || v.X > MaxCoordinate || v.Y > MaxCoordinate {
			return &CoordinateError{Index: i, Vertex: v}
		}
	}
	return nil
}

// Bounds returns the per-axis minimum and maximum over vs.
// It returns zero values for an empty slice.
func Bounds(vs []Vertex) (lo, hi Vertex) {
	if len(vs) == 0 {
		return
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo.X = min(lo.X, v.X)
		lo.Y = min(lo.Y, v.Y)
		hi.X = max(hi.X, v.X)
		hi.Y = max(hi.Y, v.Y)
	}
	return lo, hi
}

// Xs returns the X coordinate of every vertex.
func Xs(vs []Vertex) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.X
	}
	return out
}

// Ys returns the Y coordinate of every vertex.
func Ys(vs []Vertex) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.Y
	}
	return out
}
