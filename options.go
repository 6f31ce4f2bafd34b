package enclose

import "github.com/gogpu/enclose/internal/compact"

// Option configures Build.
// Use functional options to customize the pipeline.
//
// Example:
//
//	// Default: domain ceiling 100000, sequential queries, middle-row seed
//	r, err := enclose.Build(vertices)
//
//	// Parallel pair enumeration and full scanline seeding
//	r, err := enclose.Build(vertices,
//	    enclose.WithWorkers(0),
//	    enclose.WithSeedStrategy(enclose.SeedEveryRow))
type Option func(*options)

// options holds optional configuration for Build.
type options struct {
	domainMax int64
	workers   int
	seed      SeedStrategy
}

// defaultOptions returns the default build options.
func defaultOptions() options {
	return options{
		domainMax: compact.DefaultCeiling,
		workers:   1,
		seed:      SeedMiddleRow,
	}
}

// WithDomainMax sets the exclusive upper bound of the coordinate domain on
// both axes. The bound is raised automatically when a vertex lies beyond it.
// Non-positive values keep the default of 100000.
func WithDomainMax(v int64) Option {
	return func(o *options) {
		if v > 0 {
			o.domainMax = v
		}
	}
}

// WithWorkers sets the number of goroutines used by MaxEnclosedArea.
// 1 runs sequentially; 0 or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSeedStrategy selects how interior seeds are found.
//
// SeedMiddleRow (the default) starts a single flood fill from the interior
// row nearest the middle of the grid, and Build fails with
// *UnreachableInteriorError if that fill leaves interior cells behind.
// SeedEveryRow also seeds interior runs on every other row, which handles
// boundary walls that touch and split the interior into several pieces.
func WithSeedStrategy(s SeedStrategy) Option {
	return func(o *options) {
		o.seed = s
	}
}
