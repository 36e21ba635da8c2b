// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/internal/parallel"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
)

// benchConfig holds the bench subcommand flags.
type benchConfig struct {
	size   int
	seed   int64
	repeat int
}

func newBenchCmd(df *dispatchFlags) *cobra.Command {
	cfg := benchConfig{size: 500, seed: 1, repeat: 1}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time mul_matrices on random square matrices, sequential vs parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.size <= 0 {
				return errors.Newf("--size must be > 0, got %d", cfg.size)
			}
			if cfg.repeat <= 0 {
				return errors.Newf("--repeat must be > 0, got %d", cfg.repeat)
			}
			opts, err := df.options()
			if err != nil {
				return err
			}
			return runBench(cmd, cfg, df.workers, opts)
		},
	}

	cmd.Flags().IntVar(&cfg.size, "size", cfg.size, "rows and columns of each operand")
	cmd.Flags().Int64Var(&cfg.seed, "seed", cfg.seed, "random seed for operand values")
	cmd.Flags().IntVar(&cfg.repeat, "repeat", cfg.repeat, "products timed per mode; the best run is reported")

	return cmd
}

// runBench multiplies two random size×size matrices in both modes, checks the
// results agree and prints the best wall-clock time of each.
func runBench(cmd *cobra.Command, cfg benchConfig, workers int, opts []matrix.Option) error {
	rng := rand.New(rand.NewSource(cfg.seed))
	a, b := randomRows(rng, cfg.size), randomRows(rng, cfg.size)

	seq, seqBest, err := timeMul(a, b, cfg.repeat, matrix.WithSequential())
	if err != nil {
		return err
	}
	par, parBest, err := timeMul(a, b, cfg.repeat, opts...)
	if err != nil {
		return err
	}
	if !sameRows(seq, par) {
		return errors.AssertionFailedf("sequential and parallel products differ")
	}

	if workers <= 0 {
		workers = parallel.DefaultWorkers()
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mul_matrices %dx%d (seed %d, best of %d)\n", cfg.size, cfg.size, cfg.seed, cfg.repeat)
	fmt.Fprintf(out, "  sequential:            %v\n", seqBest)
	fmt.Fprintf(out, "  parallel (%2d workers): %v\n", workers, parBest)
	if parBest > 0 {
		fmt.Fprintf(out, "  speedup:               %.2fx\n", float64(seqBest)/float64(parBest))
	}

	return nil
}

// timeMul runs MulMatrices repeat times and returns the last product and the fastest run.
func timeMul(a, b [][]float64, repeat int, opts ...matrix.Option) ([][]float64, time.Duration, error) {
	var (
		out  [][]float64
		best time.Duration
	)
	for i := 0; i < repeat; i++ {
		start := time.Now()
		res, err := linalg.MulMatrices(a, b, opts...)
		if err != nil {
			return nil, 0, err
		}
		if d := time.Since(start); i == 0 || d < best {
			best = d
		}
		out = res
	}

	return out, best, nil
}

// randomRows returns an n×n matrix of values uniform in [0, 1).
func randomRows(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
	}

	return rows
}

func sameRows(x, y [][]float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if len(x[i]) != len(y[i]) {
			return false
		}
		for j := range x[i] {
			if x[i][j] != y[i][j] {
				return false
			}
		}
	}

	return true
}
