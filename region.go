package enclose

import (
	"github.com/gogpu/enclose/internal/compact"
	"github.com/gogpu/enclose/internal/fill"
	"github.com/gogpu/enclose/internal/geom"
	"github.com/gogpu/enclose/internal/grid"
	"github.com/gogpu/enclose/internal/prefix"
	"github.com/gogpu/enclose/internal/query"
	"github.com/gogpu/enclose/internal/raster"
)

// Vertex is a boundary corner. X is the row coordinate and Y the column
// coordinate; both must lie in [0, MaxCoordinate].
type Vertex = geom.Vertex

// MaxCoordinate is the largest vertex coordinate Build accepts.
const MaxCoordinate = geom.MaxCoordinate

// Result is the best rectangle found by a query: its inclusive tile area,
// the two opposite corners and their indices in Region.Vertices.
type Result = query.Result

// Cell is the classification of one compacted grid cell.
type Cell = grid.Cell

// Cell classifications.
const (
	Free   = grid.Free
	Wall   = grid.Wall
	Filled = grid.Filled
)

// SeedStrategy selects how the interior flood fill is seeded.
type SeedStrategy = fill.Strategy

// Seed strategies.
const (
	SeedMiddleRow = fill.MiddleRow
	SeedEveryRow  = fill.EveryRow
)

// ParseSeedStrategy maps "middle" or "every-row" to a SeedStrategy.
func ParseSeedStrategy(name string) (SeedStrategy, error) {
	return fill.ParseStrategy(name)
}

// Area returns the number of unit tiles in the rectangle with opposite
// corners a and b, both corners included.
func Area(a, b Vertex) int64 {
	return query.Area(a, b)
}

// Stats describes the compacted grid of a Region.
type Stats struct {
	Rows, Cols int

	// Walls, Filled and Exterior count cells by final classification.
	Walls    int
	Filled   int
	Exterior int

	// Seeds is the number of flood fill seeds used.
	Seeds int
}

// Region is a closed rectilinear region prepared for containment queries.
//
// A Region is immutable after Build and safe for concurrent use.
type Region struct {
	vertices []Vertex
	rows     *compact.Compaction
	cols     *compact.Compaction
	cells    *grid.Grid
	index    *prefix.Index
	stats    Stats
	workers  int
}

// Build validates the boundary and runs the pipeline: compaction, boundary
// rasterization, interior flood fill and containment index.
//
// Consecutive duplicate vertices are dropped, including a last vertex equal
// to the first. The closing edge from the last vertex back to the first is
// implied. Build fails with *DegenerateInputError for fewer than three
// remaining vertices, *CoordinateError for a coordinate outside [0, MaxCoordinate],
// *GeometryError for an edge that is not axis-aligned and
// *UnreachableInteriorError when the seed scan finds an inconsistent
// boundary, no interior at all, or (with SeedMiddleRow) interior cells the
// single seed cannot reach.
func Build(vs []Vertex, opts ...Option) (*Region, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := geom.Normalize(vs)
	if err := geom.Validate(vertices); err != nil {
		return nil, err
	}

	// Each vertex coordinate gets a unit interval of its own, so boundary
	// lines and the gaps between them land in separate cells. The ceiling
	// keeps at least one exterior interval past the last coordinate.
	_, hi := geom.Bounds(vertices)
	xs, ys := geom.Xs(vertices), geom.Ys(vertices)
	rows := compact.New(compact.TileEdges(xs), max(o.domainMax, hi.X+2))
	cols := compact.New(compact.TileEdges(ys), max(o.domainMax, hi.Y+2))

	log := Logger()
	log.Debug("enclose: axes compacted",
		"vertices", len(vertices), "rows", rows.Len(), "cols", cols.Len())

	rasterizer := raster.NewRasterizer(rows, cols, stageLogger(log, "raster"))
	walls, err := rasterizer.Rasterize(vertices)
	if err != nil {
		return nil, err
	}

	filled, fs, err := fill.Fill(walls, rasterizer.Crossings(vertices), o.seed, stageLogger(log, "fill"))
	if err != nil {
		return nil, err
	}

	index := prefix.New(filled)

	r := &Region{
		vertices: vertices,
		rows:     rows,
		cols:     cols,
		cells:    filled,
		index:    index,
		workers:  o.workers,
		stats: Stats{
			Rows:     filled.Rows(),
			Cols:     filled.Cols(),
			Walls:    filled.Count(grid.Wall),
			Filled:   filled.Count(grid.Filled),
			Exterior: index.Total(),
			Seeds:    len(fs.Seeds),
		},
	}

	log.Info("enclose: region built",
		"vertices", len(vertices),
		"rows", r.stats.Rows, "cols", r.stats.Cols,
		"walls", r.stats.Walls, "filled", r.stats.Filled,
		"exterior", r.stats.Exterior)
	return r, nil
}

// Vertices returns a copy of the normalized boundary vertices.
// Result.I and Result.J index into this slice.
func (r *Region) Vertices() []Vertex {
	out := make([]Vertex, len(r.vertices))
	copy(out, r.vertices)
	return out
}

// Stats returns the grid summary.
func (r *Region) Stats() Stats {
	return r.stats
}

// Rows returns the number of compacted rows.
func (r *Region) Rows() int { return r.cells.Rows() }

// Cols returns the number of compacted columns.
func (r *Region) Cols() int { return r.cells.Cols() }

// Cell returns the classification of compacted cell (row, col).
func (r *Region) Cell(row, col int) Cell { return r.cells.At(row, col) }

// Locate returns the compacted cell holding the tile at v.
func (r *Region) Locate(v Vertex) (row, col int) {
	return r.rows.Downgrade(v.X), r.cols.Downgrade(v.Y)
}

// ExteriorCount returns the number of exterior compacted cells touched by
// the rectangle with opposite corners a and b.
func (r *Region) ExteriorCount(a, b Vertex) int {
	r1, c1 := r.Locate(a)
	r2, c2 := r.Locate(b)
	return r.index.ExteriorCount(r1, c1, r2, c2)
}

// Enclosed reports whether every tile of the rectangle with opposite corners
// a and b is boundary or interior. The corners need not be vertices.
func (r *Region) Enclosed(a, b Vertex) bool {
	if a.X < 0 || a.Y < 0 || b.X < 0 || b.Y < 0 {
		return false
	}
	return r.ExteriorCount(a, b) == 0
}

// MaxArea returns the largest rectangle spanned by two vertices, ignoring
// containment. It is an upper bound for MaxEnclosedArea.
func (r *Region) MaxArea() Result {
	res := query.MaxArea(r.vertices)
	Logger().Debug("enclose: max area", "area", res.Area, "a", res.A, "b", res.B)
	return res
}

// MaxEnclosedArea returns the largest rectangle spanned by two vertices that
// is fully enclosed by the region.
func (r *Region) MaxEnclosedArea() Result {
	res := query.MaxEnclosed(r.vertices, r, r.workers)
	Logger().Debug("enclose: max enclosed area",
		"area", res.Area, "a", res.A, "b", res.B, "checked", res.Checked)
	return res
}
