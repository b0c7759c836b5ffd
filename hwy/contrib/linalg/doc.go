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

// Package linalg provides the generic apply engines that the matrix
// operators are built on.
//
// # Engines
//
//   - Apply / ApplyInPlace: apply a hwy.Vec function to a slice, one vector
//     at a time (BaseApply is the single-goroutine kernel).
//   - ApplyHalf: the same over float16 buffers, computed in float32.
//   - Sum: parallel reduction with a deterministic combine order, built on
//     the BaseSum vector kernel.
//   - MatrixVectorOp: combine every matrix element with the broadcast
//     vector entry selected by the layout and Alignment.
//
// Work is split across a workerpool.Pool (the process-wide Default when
// nil is passed). Slices smaller than the pool's MinChunk run on the
// calling goroutine, and chunk boundaries are multiples of
// hwy.MaxLanes[T]().
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mlprims/hwy/contrib/linalg"
//
//	// x² + x over the whole buffer, in place
//	linalg.ApplyInPlace(data, func(x hwy.Vec[float32]) hwy.Vec[float32] {
//	    return hwy.Add(hwy.Mul(x, x), x)
//	}, nil)
//
//	// subtract the column means of a row-major 3x4 matrix
//	linalg.MatrixVectorOp(data, means, 3, 4, true, linalg.PerColumn,
//	    func(a, b float32) float32 { return a - b }, nil)
//
// None of the engines validate lengths. Slices shorter than the shape they
// describe cause an index-out-of-range panic.
package linalg
