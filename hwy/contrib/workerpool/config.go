// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvNumWorkers = "MLPRIMS_NUM_WORKERS"
	EnvMinChunk   = "MLPRIMS_MIN_CHUNK"
	EnvSequential = "MLPRIMS_SEQUENTIAL"
)

// Config controls how a Pool splits work.
type Config struct {
	NumWorkers int  // Worker goroutines; <= 0 means GOMAXPROCS.
	MinChunk   int  // Minimum items per worker to be worth the hand-off.
	Sequential bool // Run everything on the calling goroutine.
}

// DefaultConfig returns sensible defaults based on GOMAXPROCS.
func DefaultConfig() Config {
	return Config{
		NumWorkers: numCPU(),
		MinChunk:   4096,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies MLPRIMS_NUM_WORKERS,
// MLPRIMS_MIN_CHUNK and MLPRIMS_SEQUENTIAL when they are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvNumWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("workerpool: %s=%q: %w", EnvNumWorkers, v, err)
		}
		cfg.NumWorkers = n
	}
	if v := os.Getenv(EnvMinChunk); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("workerpool: %s=%q: %w", EnvMinChunk, v, err)
		}
		cfg.MinChunk = n
	}
	if v := os.Getenv(EnvSequential); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("workerpool: %s=%q: %w", EnvSequential, v, err)
		}
		cfg.Sequential = b
	}
	return cfg, nil
}

func (c Config) normalize() Config {
	if c.NumWorkers <= 0 {
		c.NumWorkers = numCPU()
	}
	if c.Sequential {
		c.NumWorkers = 1
	}
	if c.MinChunk <= 0 {
		c.MinChunk = 1
	}
	return c
}
