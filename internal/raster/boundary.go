// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster projects the region boundary onto the compacted grid.
package raster

import (
	"log/slog"

	"github.com/gogpu/enclose/internal/compact"
	"github.com/gogpu/enclose/internal/geom"
	"github.com/gogpu/enclose/internal/grid"
)

// Rasterizer marks boundary cells on a compacted grid.
//
// The grid has one row per interval of the row compaction and one column
// per interval of the column compaction. A vertex (x, y) lands on the cell
// (rows.Downgrade(x), cols.Downgrade(y)).
type Rasterizer struct {
	rows   *compact.Compaction
	cols   *compact.Compaction
	logger *slog.Logger
}

// NewRasterizer creates a rasterizer over the given axis compactions.
// A nil logger discards output.
func NewRasterizer(rows, cols *compact.Compaction, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Rasterizer{rows: rows, cols: cols, logger: logger}
}

// Project maps a vertex to its compacted cell.
func (r *Rasterizer) Project(v geom.Vertex) grid.Point {
	return grid.Point{Row: r.rows.Downgrade(v.X), Col: r.cols.Downgrade(v.Y)}
}

// Rasterize returns a new grid whose Wall cells trace the closed boundary
// through vs. Every other cell is Free.
//
// Each vertex cell is marked first, then every edge (including the closing
// edge from the last vertex to the first) marks the cells strictly between
// its compacted endpoints. Zero-length edges are skipped. An edge whose
// endpoints share no coordinate fails with *geom.GeometryError.
func (r *Rasterizer) Rasterize(vs []geom.Vertex) (*grid.Grid, error) {
	g := grid.New(r.rows.Len(), r.cols.Len())

	for _, v := range vs {
		p := r.Project(v)
		g.Promote(p.Row, p.Col, grid.Wall)
	}

	edges := geom.Edges(vs)
	for _, e := range edges {
		if e.Degenerate() {
			continue
		}
		if !e.Aligned() {
			return nil, &geom.GeometryError{Index: e.Index, From: e.From, To: e.To}
		}
		r.markBetween(g, r.Project(e.From), r.Project(e.To))
	}

	r.logger.Debug("raster: boundary marked",
		"rows", g.Rows(), "cols", g.Cols(),
		"edges", len(edges), "walls", g.Count(grid.Wall))
	return g, nil
}

// markBetween marks the cells strictly between a and b, which share a row
// or a column.
func (r *Rasterizer) markBetween(g *grid.Grid, a, b grid.Point) {
	if a.Row == b.Row {
		lo, hi := min(a.Col, b.Col), max(a.Col, b.Col)
		for c := lo + 1; c < hi; c++ {
			g.Promote(a.Row, c, grid.Wall)
		}
		return
	}
	lo, hi := min(a.Row, b.Row), max(a.Row, b.Row)
	for row := lo + 1; row < hi; row++ {
		g.Promote(row, a.Col, grid.Wall)
	}
}

// Crossings records, for every compacted row, the columns where a boundary
// segment running across rows intersects that row.
//
// A segment from x=a to x=b (a < b) at column y crosses the rows of the
// half-open range [a, b), so a row passing exactly through one of its
// endpoints is counted once, not twice. Walking a row from column 0 and
// toggling parity at each crossing classifies every non-Wall cell as inside
// (odd) or outside (even).
type Crossings struct {
	rows, cols int
	bits       []bool
}

// At reports whether row r is crossed at column c.
func (x *Crossings) At(r, c int) bool {
	if r < 0 || r >= x.rows || c < 0 || c >= x.cols {
		return false
	}
	return x.bits[r*x.cols+c]
}

// Rows returns the number of rows in the table.
func (x *Crossings) Rows() int { return x.rows }

// Crossings builds the crossing table for the boundary through vs.
// Edges that are not axis-aligned are ignored; Rasterize reports them.
func (r *Rasterizer) Crossings(vs []geom.Vertex) *Crossings {
	x := &Crossings{rows: r.rows.Len(), cols: r.cols.Len()}
	x.bits = make([]bool, x.rows*x.cols)

	for _, e := range geom.Edges(vs) {
		if !e.Aligned() || e.From.Y != e.To.Y {
			continue
		}
		col := r.cols.Downgrade(e.From.Y)
		lo := r.rows.Downgrade(min(e.From.X, e.To.X))
		hi := r.rows.Downgrade(max(e.From.X, e.To.X))
		for row := lo; row < hi; row++ {
			x.bits[row*x.cols+col] = true
		}
	}
	return x
}
