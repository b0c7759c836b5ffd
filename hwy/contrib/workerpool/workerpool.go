// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the persistent worker pool behind every
// mlprims operator. A Pool is created once and reused across calls, so
// an elementwise transform costs one channel send per chunk instead of a
// goroutine spawn per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(len(data), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        data[i] *= data[i]
//	    }
//	})
//
// Most callers never build a pool and rely on Default instead.
package workerpool

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	minChunk   int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers and
// the default minimum chunk size.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	cfg := DefaultConfig()
	cfg.NumWorkers = numWorkers
	return NewWithConfig(cfg)
}

// NewWithConfig creates a pool from cfg. A sequential config produces a
// pool with a single worker, which runs every ParallelFor inline.
func NewWithConfig(cfg Config) *Pool {
	cfg = cfg.normalize()

	p := &Pool{
		numWorkers: cfg.NumWorkers,
		minChunk:   cfg.MinChunk,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, cfg.NumWorkers*2),
	}

	// A single worker never receives work, everything runs on the caller.
	if p.numWorkers > 1 {
		for range p.numWorkers {
			go p.worker()
		}
	}

	slog.Debug("workerpool: started", "workers", p.numWorkers, "min_chunk", p.minChunk)
	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// MinChunk returns the smallest number of items worth handing to a worker.
func (p *Pool) MinChunk() int {
	return p.minChunk
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
		slog.Debug("workerpool: closed", "workers", p.numWorkers)
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// ParallelFor executes fn over [0, n) split into at most NumWorkers
// contiguous ranges. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
// fn must not call back into the same pool.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForGrain(n, 1, fn)
}

// ParallelForGrain is ParallelFor with every range boundary, except the
// final end, rounded to a multiple of grain. Ranges never fall below
// MinChunk items, so small n runs inline on the caller.
func (p *Pool) ParallelForGrain(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = 1
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than there are MinChunk-sized pieces
	workers := min(p.numWorkers, max(n/max(p.minChunk, 1), 1))
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	chunkSize = (chunkSize + grain - 1) / grain * grain

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. Each index is one unit of work, which suits coarse items such as
// whole matrix columns. Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	workers := min(p.numWorkers, n)

	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var nextIdx atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool, built on first use from
// ConfigFromEnv. It is never closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		cfg, err := ConfigFromEnv()
		if err != nil {
			slog.Warn("workerpool: ignoring invalid environment", "error", err)
			cfg = DefaultConfig()
		}
		defaultPool = NewWithConfig(cfg)
	})
	return defaultPool
}

// numCPU is replaced in tests.
var numCPU = func() int { return runtime.GOMAXPROCS(0) }
