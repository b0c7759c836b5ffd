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
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-mlprims/hwy"
	"github.com/ajroetker/go-mlprims/hwy/contrib/matrix"
	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

// buffers are the per-caller inputs of one benchmarked operator call. data
// is a row-major rows x cols matrix, vec has one entry per column and out
// has the length of data.
type buffers[T hwy.Floats] struct {
	data, vec, out []T
	rows, cols     int
}

type opFunc[T hwy.Floats] func(b *buffers[T], pool *workerpool.Pool)

func opTable[T hwy.Floats]() map[string]opFunc[T] {
	return map[string]opFunc[T]{
		"power": func(b *buffers[T], p *workerpool.Pool) {
			matrix.Power(b.data, matrix.WithScalar(0.5), matrix.WithPool(p))
		},
		"powerto": func(b *buffers[T], p *workerpool.Pool) {
			matrix.PowerTo(b.data, b.out, matrix.WithScalar(0.5), matrix.WithPool(p))
		},
		"sqrtscale": func(b *buffers[T], p *workerpool.Pool) {
			matrix.SqrtScale(b.data, matrix.WithScalar(2), matrix.WithPool(p))
		},
		"sqrtscaleto": func(b *buffers[T], p *workerpool.Pool) {
			matrix.SqrtScaleTo(b.data, b.out, matrix.WithScalar(2), matrix.WithClampNegative(), matrix.WithPool(p))
		},
		"reciprocal": func(b *buffers[T], p *workerpool.Pool) {
			matrix.Reciprocal(b.data, matrix.WithSetZero(), matrix.WithPool(p))
		},
		"reciprocalto": func(b *buffers[T], p *workerpool.Pool) {
			matrix.ReciprocalTo(b.data, b.out, matrix.WithPool(p))
		},
		"setsmallvalueszero": func(b *buffers[T], p *workerpool.Pool) {
			matrix.SetSmallValuesZero(b.data, matrix.WithThreshold(0.75), matrix.WithPool(p))
		},
		"ratio": func(b *buffers[T], p *workerpool.Pool) {
			matrix.Ratio(b.data, b.out, matrix.WithPool(p))
		},
		"signflip": func(b *buffers[T], p *workerpool.Pool) {
			// The row-major rows x cols buffer is read as a column-major cols x rows one.
			matrix.SignFlip(b.data, b.cols, b.rows, matrix.WithPool(p))
		},
		"mult": func(b *buffers[T], p *workerpool.Pool) {
			matrix.MatrixVectorBinaryMult(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, matrix.WithPool(p))
		},
		"multskipzero": func(b *buffers[T], p *workerpool.Pool) {
			matrix.MatrixVectorBinaryMultSkipZero(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, matrix.WithPool(p))
		},
		"div": func(b *buffers[T], p *workerpool.Pool) {
			matrix.MatrixVectorBinaryDiv(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, matrix.WithPool(p))
		},
		"divskipzero": func(b *buffers[T], p *workerpool.Pool) {
			matrix.MatrixVectorBinaryDivSkipZero(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, true, matrix.WithPool(p))
		},
		"add": func(b *buffers[T], p *workerpool.Pool) {
			matrix.MatrixVectorBinaryAdd(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, matrix.WithPool(p))
		},
		"sub": func(b *buffers[T], p *workerpool.Pool) {
			matrix.MatrixVectorBinarySub(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, matrix.WithPool(p))
		},
		"setsmallvalueszeromatrix": func(b *buffers[T], p *workerpool.Pool) {
			matrix.SetSmallValuesZeroMatrix(b.data, b.vec, b.rows, b.cols, true, matrix.PerColumn, matrix.WithPool(p))
		},
	}
}

// opNames returns the benchmarkable operators in sorted order.
func opNames() []string {
	names := lo.Keys(opTable[float32]())
	slices.Sort(names)
	return names
}
