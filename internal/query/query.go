// Package query enumerates vertex pairs and finds the largest rectangles.
package query

import (
	"github.com/gogpu/enclose/internal/geom"
	"github.com/gogpu/enclose/internal/parallel"
)

// Checker decides whether the rectangle with opposite corners a and b lies
// entirely inside the region. Implementations must be safe for concurrent use.
type Checker interface {
	Enclosed(a, b geom.Vertex) bool
}

// Result is the best rectangle found by a query.
type Result struct {
	// Area is the inclusive tile area of the rectangle.
	Area int64

	// A and B are the opposite corners, vertices I and J of the input.
	A, B geom.Vertex
	I, J int

	// Found is false when no pair qualified.
	Found bool

	// Checked counts containment checks that survived pruning.
	Checked int
}

// better reports whether r beats o: larger area first, then the
// lexicographically smaller (I, J) pair.
func (r Result) better(o Result) bool {
	if !r.Found {
		return false
	}
	if !o.Found || r.Area != o.Area {
		return r.Area > o.Area
	}
	return r.I < o.I || (r.I == o.I && r.J < o.J)
}

// Area returns the number of unit tiles in the rectangle spanned by a and b,
// both corners included.
func Area(a, b geom.Vertex) int64 {
	return (abs(a.X-b.X) + 1) * (abs(a.Y-b.Y) + 1)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// MaxArea returns the largest vertex-pair rectangle ignoring containment.
func MaxArea(vs []geom.Vertex) Result {
	var best Result
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if area := Area(vs[i], vs[j]); !best.Found || area > best.Area {
				best = Result{Area: area, A: vs[i], B: vs[j], I: i, J: j, Found: true}
			}
		}
	}
	return best
}

// MaxEnclosed returns the largest vertex-pair rectangle that chk accepts.
//
// A pair is only checked when its area beats the best found so far. With
// workers > 1 the first-vertex indices are interleaved across a worker pool;
// each worker prunes against its own best and the results are merged so the
// answer matches a sequential run. workers <= 0 means GOMAXPROCS.
func MaxEnclosed(vs []geom.Vertex, chk Checker, workers int) Result {
	if workers == 1 || len(vs) < 3 {
		return scan(vs, chk, 0, 1)
	}

	pool := parallel.NewPool(workers)
	defer pool.Close()

	n := pool.Workers()
	partial := make([]Result, n)
	tasks := make([]func(), n)
	for w := range n {
		tasks[w] = func() {
			partial[w] = scan(vs, chk, w, n)
		}
	}
	pool.Run(tasks)

	var best Result
	checked := 0
	for _, r := range partial {
		checked += r.Checked
		if r.better(best) {
			best = r
		}
	}
	best.Checked = checked
	return best
}

// scan enumerates pairs (i, j) with i = first, first+stride, ... and j > i.
func scan(vs []geom.Vertex, chk Checker, first, stride int) Result {
	var best Result
	checked := 0
	for i := first; i < len(vs); i += stride {
		for j := i + 1; j < len(vs); j++ {
			area := Area(vs[i], vs[j])
			if best.Found && area <= best.Area {
				continue
			}
			checked++
			if chk.Enclosed(vs[i], vs[j]) {
				best = Result{Area: area, A: vs[i], B: vs[j], I: i, J: j, Found: true}
			}
		}
	}
	best.Checked = checked
	return best
}
