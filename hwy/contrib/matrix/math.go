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
	"github.com/ajroetker/go-mlprims/hwy"
	"github.com/ajroetker/go-mlprims/hwy/contrib/linalg"
)

// Power replaces every element x with x*x*scalar.
//
// Options: WithScalar.
//
// Example:
//
//	v := []float32{1, -2, 3}
//	Power(v, WithScalar(2)) // v is now [2, 8, 18]
func Power[T hwy.Floats](inout []T, opts ...Option) {
	PowerTo(inout, inout, opts...)
}

// PowerTo sets out[i] = in[i]*in[i]*scalar for i < min(len(in), len(out)).
func PowerTo[T hwy.Floats](in, out []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.Apply(in, out, powerKernel(T(o.scalar)), o.pool)
}

// SqrtScale replaces every element x with sqrt(x*scalar). Negative products
// yield NaN; WithClampNegative is not honored here.
//
// Options: WithScalar.
func SqrtScale[T hwy.Floats](inout []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.Apply(inout, inout, sqrtKernel(T(o.scalar), false), o.pool)
}

// SqrtScaleTo sets out[i] = sqrt(in[i]*scalar). With WithClampNegative,
// negative inputs yield 0 instead of NaN.
//
// Options: WithScalar, WithClampNegative.
func SqrtScaleTo[T hwy.Floats](in, out []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.Apply(in, out, sqrtKernel(T(o.scalar), o.clampNegative), o.pool)
}

// Reciprocal replaces every element x with scalar/x. With WithSetZero,
// elements x <= threshold become 0 instead.
//
// Options: WithScalar, WithSetZero, WithThreshold (default DefaultThreshold).
func Reciprocal[T hwy.Floats](inout []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.Apply(inout, inout, reciprocalKernel(T(o.scalar), o.setZero, T(o.thres)), o.pool)
}

// ReciprocalTo sets out[i] = scalar/in[i]. Division by zero follows IEEE 754;
// the WithSetZero guard of Reciprocal is not available here.
//
// Options: WithScalar.
func ReciprocalTo[T hwy.Floats](in, out []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.Apply(in, out, reciprocalKernel(T(o.scalar), false, 0), o.pool)
}

// SetSmallValuesZero replaces every element x <= threshold with 0. Note the
// comparison is signed, so all negative values are zeroed too.
//
// Options: WithThreshold (default DefaultThreshold).
func SetSmallValuesZero[T hwy.Floats](inout []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	linalg.Apply(inout, inout, smallValuesZeroKernel(T(o.thres)), o.pool)
}

// Ratio sets dst[i] = src[i]/total where total is the sum of the first
// min(len(src), len(dst)) elements of src. The total is computed once,
// before any element is written, so src and dst may be the same slice.
//
// If total is exactly 0, dst is left untouched.
//
// Example:
//
//	ev := []float64{6, 3, 1} // eigenvalues
//	ratio := make([]float64, 3)
//	Ratio(ev, ratio) // [0.6, 0.3, 0.1]
func Ratio[T hwy.Floats](src, dst []T, opts ...Option) {
	o := buildOptions(DefaultThreshold, opts)
	n := min(len(src), len(dst))
	if n == 0 {
		return
	}

	total := linalg.Sum(src[:n], o.pool)
	if total == 0 {
		return
	}
	totalVec := hwy.Set(total)
	linalg.Apply(src[:n], dst[:n], func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(x, totalVec) }, o.pool)
}

func powerKernel[T hwy.Floats](scalar T) linalg.VecFunc[T] {
	s := hwy.Set(scalar)
	return func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(hwy.Mul(x, x), s) }
}

func sqrtKernel[T hwy.Floats](scalar T, clampNegative bool) linalg.VecFunc[T] {
	s := hwy.Set(scalar)
	if clampNegative {
		zero := hwy.Zero[T]()
		return func(x hwy.Vec[T]) hwy.Vec[T] {
			return hwy.IfThenElse(hwy.LessThan(x, zero), zero, hwy.Sqrt(hwy.Mul(x, s)))
		}
	}
	return func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Sqrt(hwy.Mul(x, s)) }
}

func reciprocalKernel[T hwy.Floats](scalar T, setZero bool, thres T) linalg.VecFunc[T] {
	s := hwy.Set(scalar)
	if setZero {
		t := hwy.Set(thres)
		zero := hwy.Zero[T]()
		return func(x hwy.Vec[T]) hwy.Vec[T] {
			return hwy.IfThenElse(hwy.LessEqual(x, t), zero, hwy.Div(s, x))
		}
	}
	return func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(s, x) }
}

func smallValuesZeroKernel[T hwy.Floats](thres T) linalg.VecFunc[T] {
	t := hwy.Set(thres)
	zero := hwy.Zero[T]()
	return func(x hwy.Vec[T]) hwy.Vec[T] {
		return hwy.IfThenElse(hwy.LessEqual(x, t), zero, x)
	}
}
