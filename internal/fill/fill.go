// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fill classifies the interior of a rasterized boundary.
//
// Seeds come from scanning compacted rows left to right while toggling
// parity at every boundary crossing recorded in a raster.Crossings table:
// the first Free cell of each run at odd parity is inside the region. From
// each seed an iterative 4-connected flood fill promotes reachable Free
// cells to Filled without crossing Wall cells.
package fill

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/enclose/internal/geom"
	"github.com/gogpu/enclose/internal/grid"
	"github.com/gogpu/enclose/internal/raster"
)

// Strategy selects which rows contribute seeds.
type Strategy int

const (
	// MiddleRow takes a single seed from the middle compacted row, or from
	// the nearest row that has an interior cell. Fill rejects interiors split
	// into several 4-connected components by touching walls, since one seed
	// cannot reach them all.
	MiddleRow Strategy = iota

	// EveryRow takes a seed from every interior run of every row, which
	// reaches every interior cell.
	EveryRow
)

// String returns the strategy name used in configuration files.
func (s Strategy) String() string {
	switch s {
	case MiddleRow:
		return "middle"
	case EveryRow:
		return "every-row"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration name to a Strategy.
// The empty string selects MiddleRow.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "middle":
		return MiddleRow, nil
	case "every-row":
		return EveryRow, nil
	default:
		return MiddleRow, fmt.Errorf("fill: unknown seed strategy %q", name)
	}
}

// Stats summarizes one fill.
type Stats struct {
	// Seeds are the cells the fill started from, in scan order.
	Seeds []grid.Point

	// Filled is the number of cells promoted to Filled.
	Filled int
}

// Fill returns a copy of g with the interior promoted to Filled.
//
// A scanned row whose crossing count is odd, a grid with no interior cell
// on any row, or an interior cell the seeds did not reach fails with
// *geom.UnreachableInteriorError.
func Fill(g *grid.Grid, x *raster.Crossings, s Strategy, logger *slog.Logger) (*grid.Grid, Stats, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seeds, err := FindSeeds(g, x, s)
	if err != nil {
		return nil, Stats{}, err
	}

	out := g.Clone()
	stats := Stats{Seeds: seeds}
	for _, seed := range seeds {
		stats.Filled += fillFrom(out, seed)
	}
	if s == MiddleRow {
		if err := checkReached(out, x); err != nil {
			return nil, Stats{}, err
		}
	}

	logger.Debug("fill: interior filled",
		"strategy", s.String(), "seeds", len(seeds), "filled", stats.Filled)
	return out, stats, nil
}

// FindSeeds scans the rows of g for interior seeds.
// When no row yields a seed the error reports the middle row.
func FindSeeds(g *grid.Grid, x *raster.Crossings, s Strategy) ([]grid.Point, error) {
	var seeds []grid.Point
	for _, r := range scanOrder(g.Rows(), s) {
		found, crossings := scanRow(g, x, r)
		if crossings%2 != 0 {
			return nil, &geom.UnreachableInteriorError{Row: r, Crossings: crossings}
		}
		if len(found) == 0 {
			continue
		}
		if s == MiddleRow {
			return found[:1], nil
		}
		seeds = append(seeds, found...)
	}
	if len(seeds) == 0 {
		mid := g.Rows() / 2
		_, crossings := scanRow(g, x, mid)
		return nil, &geom.UnreachableInteriorError{Row: mid, Crossings: crossings}
	}
	return seeds, nil
}

// scanOrder lists row indices in the order they are examined.
// MiddleRow walks outward from rows/2, lower row first on ties.
func scanOrder(rows int, s Strategy) []int {
	order := make([]int, 0, rows)
	if s != MiddleRow {
		for r := range rows {
			order = append(order, r)
		}
		return order
	}
	mid := rows / 2
	for d := 0; len(order) < rows; d++ {
		if r := mid - d; d > 0 && r >= 0 {
			order = append(order, r)
		}
		if r := mid + d; r < rows {
			order = append(order, r)
		}
	}
	return order
}

// scanRow walks row r from column 0 and returns the first Free cell of every
// run that lies at odd parity, together with the total crossing count.
func scanRow(g *grid.Grid, x *raster.Crossings, r int) (seeds []grid.Point, crossings int) {
	inRun := false
	for c := range g.Cols() {
		if x.At(r, c) {
			crossings++
		}
		inside := crossings%2 == 1 && g.At(r, c) == grid.Free
		if inside && !inRun {
			seeds = append(seeds, grid.Point{Row: r, Col: c})
		}
		inRun = inside
	}
	return seeds, crossings
}

// checkReached rescans every row of a filled grid and reports the first
// row that still has a Free cell at odd parity.
func checkReached(g *grid.Grid, x *raster.Crossings) error {
	for r := range g.Rows() {
		if left, crossings := scanRow(g, x, r); len(left) > 0 {
			return &geom.UnreachableInteriorError{Row: r, Crossings: crossings}
		}
	}
	return nil
}

// FloodFill returns a copy of g with every Free cell 4-connected to seed
// through Free cells promoted to Filled, and the number of cells promoted.
// If seed is out of range or not Free, the copy is unchanged.
func FloodFill(g *grid.Grid, seed grid.Point) (*grid.Grid, int) {
	out := g.Clone()
	return out, fillFrom(out, seed)
}

// neighbors are the 4-connected offsets.
var neighbors = [4]grid.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// fillFrom floods g in place from seed using an explicit stack, so depth is
// bounded by grid area rather than call depth.
func fillFrom(g *grid.Grid, seed grid.Point) int {
	if !g.Promote(seed.Row, seed.Col, grid.Filled) {
		return 0
	}
	filled := 1
	stack := []grid.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbors {
			n := grid.Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if g.Promote(n.Row, n.Col, grid.Filled) {
				filled++
				stack = append(stack, n)
			}
		}
	}
	return filled
}
