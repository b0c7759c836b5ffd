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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

// app holds the state shared by all subcommands.
type app struct {
	workers  int
	minChunk int
	verbose  bool

	pool *workerpool.Pool
}

// newRootCmd returns the command tree and the state it fills in. The caller
// closes the state once Execute returns, whether or not it failed.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:           "mlprims",
		Short:         "Inspect and benchmark the matrix operators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.setupLogging(cmd)
			return a.setupPool(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&a.workers, "workers", 0, "number of workers (default: "+workerpool.EnvNumWorkers+" or GOMAXPROCS)")
	flags.IntVar(&a.minChunk, "min-chunk", 0, "smallest range handed to a worker (default: "+workerpool.EnvMinChunk+" or 4096)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newInfoCmd(a), newBenchCmd(a))
	return root, a
}

// close stops the pool's workers, if a command got as far as starting them.
func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *app) setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func (a *app) setupPool(cmd *cobra.Command) error {
	cfg, err := workerpool.ConfigFromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.NumWorkers = a.workers
		cfg.Sequential = false
	}
	if cmd.Flags().Changed("min-chunk") {
		cfg.MinChunk = a.minChunk
	}
	a.pool = workerpool.NewWithConfig(cfg)
	return nil
}
