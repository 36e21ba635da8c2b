// SPDX-License-Identifier: MIT

package matrix

// OptionsSnapshot is a test-only view of the resolved Options.
type OptionsSnapshot struct {
	Workers         int
	MinParallelWork int
}

// GatherOptionsSnapshot resolves opts the way kernels do.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Workers: o.workers, MinParallelWork: o.minParallelWork}
}

// WorkersFor reports the goroutine count a kernel would use.
func WorkersFor(rows, work int, opts ...Option) int {
	return gatherOptions(opts...).workersFor(rows, work)
}
