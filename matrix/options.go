// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for row-parallel dispatch.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Options never change results: sequential and parallel dispatch compute
// every output element with the same loop order, so results are bitwise
// identical for any worker count.
package matrix

import "github.com/katalvlaran/linalg/internal/parallel"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) at call time.
	DefaultWorkers = 0

	// DefaultMinParallelWork is the estimated number of multiply-adds below
	// which a kernel stays on the calling goroutine. Matches a 64×64×64 product.
	DefaultMinParallelWork = 64 * 64 * 64
)

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be > 0"
	panicMinWorkInvalid = "matrix: WithMinParallelWork: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective dispatch configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers         int // >0 after gatherOptions
	minParallelWork int // >=0
}

// WithWorkers caps the number of goroutines a kernel may use.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSequential forces every kernel onto the calling goroutine.
func WithSequential() Option {
	return func(o *Options) { o.workers = 1 }
}

// WithMinParallelWork sets the multiply-add threshold for parallel dispatch.
// Zero parallelizes every kernel with more than one output row.
// Panics if n < 0.
func WithMinParallelWork(n int) Option {
	if n < 0 {
		panic(panicMinWorkInvalid)
	}

	return func(o *Options) { o.minParallelWork = n }
}

// gatherOptions applies user setters on top of defaults and resolves
// DefaultWorkers to a concrete count.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:         DefaultWorkers,
		minParallelWork: DefaultMinParallelWork,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = parallel.DefaultWorkers()
	}

	return o
}

// workersFor returns how many goroutines a kernel producing rows output rows
// with an estimated work of multiply-adds should use.
func (o Options) workersFor(rows, work int) int {
	if o.workers <= 1 || rows <= 1 || work < o.minParallelWork {
		return 1
	}

	return min(o.workers, rows)
}
