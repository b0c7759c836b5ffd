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

// Package hwy holds the portable foundation shared by the mlprims kernels:
// the element type constraints, the runtime detection of the CPU vector
// width used to size and align parallel work, and a small portable vector
// API (Vec, Mask and their lane operations) the kernels are written in.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-mlprims/hwy"
//
//	fmt.Printf("%s, %d bytes\n", hwy.CurrentName(), hwy.CurrentWidth())
//	lanes := hwy.MaxLanes[float32]() // 8 on AVX2
package hwy

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point element types.
type Floats interface {
	constraints.Float
}

// AlignUp rounds n up to the next multiple of the lane count for T.
// Values <= 0 are returned unchanged.
func AlignUp[T Floats](n int) int {
	lanes := MaxLanes[T]()
	if n <= 0 || lanes <= 1 {
		return n
	}
	return (n + lanes - 1) / lanes * lanes
}
