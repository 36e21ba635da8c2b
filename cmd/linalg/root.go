// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dispatchFlags maps CLI flags onto matrix options.
type dispatchFlags struct {
	workers         int
	minParallelWork int
}

func (f *dispatchFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.workers, "workers", 0, "max goroutines per matrix operation (0 = GOMAXPROCS)")
	fs.IntVar(&f.minParallelWork, "min-parallel-work", matrix.DefaultMinParallelWork,
		"multiply-adds below which matrix operations run sequentially")
}

// options validates the flags and returns the matching matrix options.
// Option constructors panic on nonsense, so flags are checked here first.
func (f *dispatchFlags) options() ([]matrix.Option, error) {
	if f.workers < 0 {
		return nil, errors.Newf("--workers must be >= 0, got %d", f.workers)
	}
	if f.minParallelWork < 0 {
		return nil, errors.Newf("--min-parallel-work must be >= 0, got %d", f.minParallelWork)
	}

	opts := []matrix.Option{matrix.WithMinParallelWork(f.minParallelWork)}
	if f.workers > 0 {
		opts = append(opts, matrix.WithWorkers(f.workers))
	}

	return opts, nil
}

func newRootCmd() *cobra.Command {
	var df dispatchFlags

	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense vector and matrix arithmetic over float64",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	df.register(root.PersistentFlags())

	root.AddCommand(
		newEvalCmd(&df),
		newBenchCmd(&df),
		newOpsCmd(),
	)

	return root
}
