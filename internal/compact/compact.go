// Package compact reduces a coordinate axis to the few intervals that matter.
//
// A Compaction partitions [0, ceiling) into contiguous half-open intervals
// whose boundaries are the distinct input values. Grid sizes then scale with
// the number of distinct coordinates instead of the width of the domain.
package compact

import (
	"slices"
	"sort"
)

// DefaultCeiling is the upper sentinel used when the caller has no better bound.
const DefaultCeiling int64 = 100_000

// Interval is the half-open range [Lo, Hi).
type Interval struct {
	Lo, Hi int64
}

// Contains reports whether v lies in the interval.
func (iv Interval) Contains(v int64) bool {
	return v >= iv.Lo && v < iv.Hi
}

// Len returns the number of integer coordinates in the interval.
func (iv Interval) Len() int64 {
	return iv.Hi - iv.Lo
}

// Compaction is an ordered partition of [0, ceiling).
// It is immutable after New returns.
type Compaction struct {
	// bounds holds the interval boundaries, strictly increasing,
	// bounds[0] == 0 and bounds[len-1] == ceiling.
	bounds []int64
}

// New builds the compaction of values over [0, ceiling).
// Values outside the domain are ignored. A ceiling below 1 is raised to 1.
func New(values []int64, ceiling int64) *Compaction {
	ceiling = max(ceiling, 1)

	bounds := make([]int64, 0, len(values)+2)
	bounds = append(bounds, 0)
	for _, v := range values {
		if v > 0 && v < ceiling {
			bounds = append(bounds, v)
		}
	}
	bounds = append(bounds, ceiling)

	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	return &Compaction{bounds: bounds}
}

// TileEdges returns v and v+1 for every value, so that each coordinate gets
// a unit interval of its own when the result is compacted.
func TileEdges(values []int64) []int64 {
	out := make([]int64, 0, 2*len(values))
	for _, v := range values {
		out = append(out, v, v+1)
	}
	return out
}

// Len returns the number of intervals.
func (c *Compaction) Len() int {
	return len(c.bounds) - 1
}

// Ceiling returns the exclusive upper end of the domain.
func (c *Compaction) Ceiling() int64 {
	return c.bounds[len(c.bounds)-1]
}

// Interval returns the i-th interval.
func (c *Compaction) Interval(i int) Interval {
	return Interval{Lo: c.bounds[i], Hi: c.bounds[i+1]}
}

// Intervals returns a copy of all intervals in ascending order.
func (c *Compaction) Intervals() []Interval {
	out := make([]Interval, c.Len())
	for i := range out {
		out[i] = c.Interval(i)
	}
	return out
}

// Downgrade maps a raw coordinate to the index of the interval containing it.
// The mapping is monotonic. Coordinates below 0 map to the first interval and
// coordinates at or above the ceiling map to the last one.
func (c *Compaction) Downgrade(v int64) int {
	// First boundary strictly greater than v, minus one, is the interval start.
	i := sort.Search(len(c.bounds), func(i int) bool { return c.bounds[i] > v }) - 1
	return min(max(i, 0), c.Len()-1)
}
