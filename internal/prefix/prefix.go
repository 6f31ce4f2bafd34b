// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package prefix answers "how many exterior cells does this rectangle hold?"
// in constant time using a 2D prefix-sum table.
package prefix

import "github.com/gogpu/enclose/internal/grid"

// Index is a summed-area table over the cells still Free after flood fill.
// It is read-only after New and safe for concurrent use.
type Index struct {
	rows, cols int

	// table[r*cols+c] counts Free cells in [0,r] x [0,c].
	table []int
}

// New builds the index for a filled grid in O(rows*cols).
func New(g *grid.Grid) *Index {
	rows, cols := g.Rows(), g.Cols()
	idx := &Index{rows: rows, cols: cols, table: make([]int, rows*cols)}

	for r := range rows {
		for c := range cols {
			v := 0
			if g.At(r, c) == grid.Free {
				v = 1
			}
			v += idx.at(r-1, c) + idx.at(r, c-1) - idx.at(r-1, c-1)
			idx.table[r*cols+c] = v
		}
	}
	return idx
}

// at returns the prefix count at (r, c); negative indices read as zero.
func (idx *Index) at(r, c int) int {
	if r < 0 || c < 0 {
		return 0
	}
	return idx.table[r*idx.cols+c]
}

// Rows returns the number of rows covered.
func (idx *Index) Rows() int { return idx.rows }

// Cols returns the number of columns covered.
func (idx *Index) Cols() int { return idx.cols }

// ExteriorCount returns the number of Free cells in the closed rectangle
// [r1,r2] x [c1,c2]. Corners may be given in any order; the rectangle is
// clipped to the grid.
func (idx *Index) ExteriorCount(r1, c1, r2, c2 int) int {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	r1, c1 = max(r1, 0), max(c1, 0)
	r2, c2 = min(r2, idx.rows-1), min(c2, idx.cols-1)
	if r1 > r2 || c1 > c2 {
		return 0
	}
	return idx.at(r2, c2) - idx.at(r1-1, c2) - idx.at(r2, c1-1) + idx.at(r1-1, c1-1)
}

// Enclosed reports whether the rectangle holds no exterior cell.
func (idx *Index) Enclosed(r1, c1, r2, c2 int) bool {
	return idx.ExteriorCount(r1, c1, r2, c2) == 0
}

// Total returns the number of exterior cells in the whole grid.
func (idx *Index) Total() int {
	if idx.rows == 0 || idx.cols == 0 {
		return 0
	}
	return idx.at(idx.rows-1, idx.cols-1)
}
