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

package matrix

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-mlprims/hwy"
	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

// Tolerance constants for floating point comparison
const (
	epsilon32 = 1e-6
	epsilon64 = 1e-12
)

// newTestPool returns a pool that splits even tiny inputs across workers,
// so the parallel paths run in every test.
func newTestPool(t testing.TB) *workerpool.Pool {
	t.Helper()
	pool := workerpool.NewWithConfig(workerpool.Config{NumWorkers: 4, MinChunk: 1})
	t.Cleanup(pool.Close)
	return pool
}

func newSequentialPool(t testing.TB) *workerpool.Pool {
	t.Helper()
	pool := workerpool.NewWithConfig(workerpool.Config{Sequential: true})
	t.Cleanup(pool.Close)
	return pool
}

func randSlice[T hwy.Floats](rng *rand.Rand, n int, lo, hi float64) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(lo + rng.Float64()*(hi-lo))
	}
	return out
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

func epsilonFor[T hwy.Floats]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return epsilon32
	}
	return epsilon64
}
