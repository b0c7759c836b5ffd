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

package linalg

import (
	"github.com/ajroetker/go-mlprims/hwy"
	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

// Sum returns the sum of all elements of in, or 0 for an empty slice.
//
// The slice is cut into one fixed range per worker, each range is summed
// independently, and the partial sums are added in range order. The result
// is therefore identical across calls with the same pool configuration,
// but may differ in the last bits from a strictly sequential sum.
func Sum[T hwy.Floats](in []T, pool *workerpool.Pool) T {
	n := len(in)
	if n == 0 {
		return 0
	}

	p := poolOrDefault(pool)
	chunks := min(p.NumWorkers(), max(n/max(p.MinChunk(), 1), 1))
	if chunks == 1 {
		return BaseSum(in)
	}

	chunk := hwy.AlignUp[T]((n + chunks - 1) / chunks)
	partials := make([]T, chunks)
	p.ParallelForAtomic(chunks, func(c int) {
		start := c * chunk
		end := min(start+chunk, n)
		if start < end {
			partials[c] = BaseSum(in[start:end])
		}
	})

	var total T
	for _, s := range partials {
		total += s
	}
	return total
}

// BaseSum returns the sum of v on the calling goroutine, accumulating one
// vector at a time and adding the tail with scalar code.
func BaseSum[T hwy.Floats](v []T) T {
	if len(v) == 0 {
		return 0
	}

	sum := hwy.Zero[T]()
	lanes := sum.NumLanes()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		sum = hwy.Add(sum, hwy.Load(v[i:]))
	}

	result := hwy.ReduceSum(sum)
	for ; i < len(v); i++ {
		result += v[i]
	}
	return result
}
