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
	"github.com/x448/float16"

	"github.com/ajroetker/go-mlprims/hwy"
	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

// Function types accepted by the engines.
type (
	// VecFunc transforms one vector of elements.
	VecFunc[T hwy.Floats] func(x hwy.Vec[T]) hwy.Vec[T]

	// BinaryFunc combines a matrix element a with a vector element b.
	BinaryFunc[T hwy.Floats] func(a, b T) T
)

func poolOrDefault(pool *workerpool.Pool) *workerpool.Pool {
	if pool == nil {
		return workerpool.Default()
	}
	return pool
}

// BaseApply transforms in to out on the calling goroutine, one vector at a
// time. The tail is loaded into a zero-padded vector and only its valid
// lanes are stored, so fn never sees a partial vector.
//
// Example usage:
//
//	two := hwy.Set[float32](2)
//	BaseApply(in, out, func(x hwy.Vec[float32]) hwy.Vec[float32] { return hwy.Mul(x, two) })
func BaseApply[T hwy.Floats](in, out []T, fn VecFunc[T]) {
	n := min(len(in), len(out))
	lanes := hwy.Zero[T]().NumLanes()
	i := 0

	// Process full vectors
	for ; i+lanes <= n; i += lanes {
		hwy.Store(fn(hwy.Load(in[i:i+lanes])), out[i:i+lanes])
	}

	if i < n {
		hwy.Store(fn(hwy.Load(in[i:n])), out[i:n])
	}
}

// Apply is BaseApply split across pool for i < min(len(in), len(out)).
// Chunk boundaries are multiples of the lane count, so only the last chunk
// has a tail. in and out may be the same slice; partially overlapping
// slices are not supported.
func Apply[T hwy.Floats](in, out []T, fn VecFunc[T], pool *workerpool.Pool) {
	n := min(len(in), len(out))
	if n == 0 {
		return
	}
	in, out = in[:n], out[:n]

	poolOrDefault(pool).ParallelForGrain(n, hwy.MaxLanes[T](), func(start, end int) {
		BaseApply(in[start:end], out[start:end], fn)
	})
}

// ApplyInPlace is Apply with the same slice as input and output.
func ApplyInPlace[T hwy.Floats](inout []T, fn VecFunc[T], pool *workerpool.Pool) {
	Apply(inout, inout, fn, pool)
}

// ApplyHalf is Apply for float16 buffers. Each vector's worth of elements
// is promoted to float32, transformed, and rounded back to the nearest
// float16.
func ApplyHalf(in, out []float16.Float16, fn VecFunc[float32], pool *workerpool.Pool) {
	n := min(len(in), len(out))
	if n == 0 {
		return
	}
	in, out = in[:n], out[:n]
	lanes := hwy.MaxLanes[float32]()

	poolOrDefault(pool).ParallelForGrain(n, lanes, func(start, end int) {
		var buf [hwy.MaxVecLanes]float32
		for i := start; i < end; i += lanes {
			m := min(lanes, end-i)
			for k := range m {
				buf[k] = in[i+k].Float32()
			}
			hwy.Store(fn(hwy.Load(buf[:m])), buf[:m])
			for k := range m {
				out[i+k] = float16.Fromfloat32(buf[k])
			}
		}
	})
}
