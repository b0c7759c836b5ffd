// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-mlprims/hwy"
	"github.com/ajroetker/go-mlprims/hwy/contrib/matrix"
	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

type benchConfig struct {
	op      string
	n       int
	rows    int
	cols    int
	dtype   string
	iters   int
	callers int
}

func newBenchCmd(a *app) *cobra.Command {
	cfg := benchConfig{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time one operator on random data",
		Long: `Time one operator on random data.

Each caller owns its own buffers and runs the operator --iters times on the
shared worker pool. The input is restored before every iteration and only
the operator itself is timed. Use --op list to print the operator names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.op == "list" {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(opNames(), "\n"))
				return nil
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			switch cfg.dtype {
			case "f32":
				return runBench(cmd.Context(), cmd.OutOrStdout(), opTable[float32]()[cfg.op], cfg, a.pool)
			default:
				return runBench(cmd.Context(), cmd.OutOrStdout(), opTable[float64]()[cfg.op], cfg, a.pool)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.op, "op", "list", "operator to run, or 'list'")
	flags.IntVar(&cfg.n, "n", 0, "vector length for elementwise operators (overrides --rows and --cols)")
	flags.IntVar(&cfg.rows, "rows", 1024, "matrix rows")
	flags.IntVar(&cfg.cols, "cols", 256, "matrix columns")
	flags.StringVar(&cfg.dtype, "dtype", "f32", "element type: f32 or f64")
	flags.IntVar(&cfg.iters, "iters", 10, "iterations per caller")
	flags.IntVar(&cfg.callers, "callers", 1, "concurrent callers sharing the pool")
	return cmd
}

func (c *benchConfig) validate() error {
	if _, ok := opTable[float32]()[c.op]; !ok {
		return fmt.Errorf("unknown operator %q, want one of: %s", c.op, strings.Join(opNames(), ", "))
	}
	if c.dtype != "f32" && c.dtype != "f64" {
		return fmt.Errorf("unknown dtype %q, want f32 or f64", c.dtype)
	}
	if c.n > 0 {
		c.rows, c.cols = c.n, 1
	}
	if c.rows <= 0 || c.cols <= 0 {
		return fmt.Errorf("invalid shape %dx%d", c.rows, c.cols)
	}
	if c.iters <= 0 {
		return fmt.Errorf("--iters must be positive, got %d", c.iters)
	}
	if c.callers <= 0 {
		return fmt.Errorf("--callers must be positive, got %d", c.callers)
	}
	return nil
}

func newBuffers[T hwy.Floats](rng *rand.Rand, rows, cols int) *buffers[T] {
	b := &buffers[T]{
		data: make([]T, rows*cols),
		vec:  make([]T, cols),
		out:  make([]T, rows*cols),
		rows: rows,
		cols: cols,
	}
	for i := range b.data {
		b.data[i] = T(rng.Float64()*2 - 0.5)
	}
	for j := range b.vec {
		b.vec[j] = T(rng.Float64())
	}
	return b
}

// validate checks every buffer an operator in opTable may touch.
func (b *buffers[T]) validate() error {
	if err := matrix.ValidateBroadcast(b.data, b.vec, b.rows, b.cols, matrix.PerColumn); err != nil {
		return err
	}
	return matrix.ValidateLen(b.data, b.out)
}

func runBench[T hwy.Floats](ctx context.Context, w io.Writer, op opFunc[T], cfg benchConfig, pool *workerpool.Pool) error {
	var opTime atomic.Int64
	wall := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for c := range cfg.callers {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(uint64(c), 0x6d6c))
			b := newBuffers[T](rng, cfg.rows, cfg.cols)
			if err := b.validate(); err != nil {
				return err
			}
			src := append([]T(nil), b.data...)

			for range cfg.iters {
				if err := ctx.Err(); err != nil {
					return err
				}
				copy(b.data, src)
				start := time.Now()
				op(b, pool)
				opTime.Add(int64(time.Since(start)))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(wall)

	elems := float64(cfg.iters) * float64(cfg.callers) * float64(cfg.rows*cfg.cols)
	slog.Debug("bench: done", "op", cfg.op, "wall", elapsed, "workers", pool.NumWorkers())
	fmt.Fprintf(w, "%s %s %dx%d iters=%d callers=%d: %.3f ns/elem\n",
		cfg.op, cfg.dtype, cfg.rows, cfg.cols, cfg.iters, cfg.callers,
		float64(opTime.Load())/elems)
	return nil
}
