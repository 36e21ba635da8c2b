// SPDX-License-Identifier: MIT

// Package parallel provides the fork-join primitive used by row-parallel
// matrix kernels: split an index range into contiguous chunks, run each chunk
// on its own goroutine, and wait for all of them before returning.
//
// There is no persistent pool and no package state. Every call owns its
// goroutines, so concurrent callers with disjoint data never interfere.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the worker count used when a caller asks for <= 0.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// For executes fn over [0, n) split into at most workers contiguous,
// non-overlapping [start, end) chunks and blocks until every chunk returns.
// Chunks cover the range exactly once and are handed out in index order, but
// may finish in any order; fn must only write state owned by its own chunk.
//
// If workers <= 0, DefaultWorkers is used. When a single worker suffices
// (workers == 1 or n == 1), fn runs on the calling goroutine.
// The first non-nil error returned by any chunk is returned after the barrier.
//
// Complexity: O(workers) scheduling overhead on top of fn.
func For(n, workers int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	workers = min(workers, n)
	if workers == 1 {
		return fn(0, n)
	}

	chunk := ChunkSize(n, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			return fn(start, end)
		})
	}

	return g.Wait()
}

// ChunkSize is the number of indices each worker receives when n items are
// split across workers (the last chunk may be shorter). It returns 0 when
// n <= 0 and n when workers <= 1.
func ChunkSize(n, workers int) int {
	if n <= 0 {
		return 0
	}
	if workers <= 1 {
		return n
	}

	return (n + workers - 1) / workers
}
