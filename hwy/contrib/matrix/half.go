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
	"github.com/x448/float16"

	"github.com/ajroetker/go-mlprims/hwy/contrib/linalg"
)

// Half-precision variants of the elementwise operators. Each element is
// promoted to float32, transformed with the same rule as the float32
// operator, and rounded back to float16. Results that overflow float16
// become ±Inf.

// PowerHalf is Power for float16 buffers.
func PowerHalf(inout []float16.Float16, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.ApplyHalf(inout, inout, powerKernel(float32(o.scalar)), o.pool)
}

// SqrtScaleHalf is SqrtScaleTo for float16 buffers; in and out may be the
// same slice.
func SqrtScaleHalf(in, out []float16.Float16, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.ApplyHalf(in, out, sqrtKernel(float32(o.scalar), o.clampNegative), o.pool)
}

// ReciprocalHalf is Reciprocal for float16 buffers.
func ReciprocalHalf(inout []float16.Float16, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.ApplyHalf(inout, inout, reciprocalKernel(float32(o.scalar), o.setZero, float32(o.thres)), o.pool)
}

// SetSmallValuesZeroHalf is SetSmallValuesZero for float16 buffers. The
// default threshold is below the smallest float16 subnormal, so by default
// only zeros and negative values are affected.
func SetSmallValuesZeroHalf(inout []float16.Float16, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.ApplyHalf(inout, inout, smallValuesZeroKernel(float32(o.thres)), o.pool)
}
