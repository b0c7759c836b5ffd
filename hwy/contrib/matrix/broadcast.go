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

// Alignment selects which matrix index picks the broadcast vector entry.
type Alignment = linalg.Alignment

const (
	// PerColumn applies vec[j] to column j; len(vec) == nCols.
	PerColumn = linalg.PerColumn
	// PerRow applies vec[i] to row i; len(vec) == nRows.
	PerRow = linalg.PerRow
)

// All broadcast operators below update data, an nRows x nCols matrix laid
// out row-major when rowMajor is set and column-major otherwise, in place.
// vec is only read.

// MatrixVectorBinaryMult sets each element a to a*b.
func MatrixVectorBinaryMult[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, mulOp[T], o.pool)
}

// MatrixVectorBinaryMultSkipZero sets each element a to a*b, except that a
// zero vector entry leaves its elements unchanged.
func MatrixVectorBinaryMultSkipZero[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, mulSkipZeroOp[T], o.pool)
}

// MatrixVectorBinaryDiv sets each element a to a/b. Zero entries divide by
// zero.
func MatrixVectorBinaryDiv[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, divOp[T], o.pool)
}

// MatrixVectorBinaryDivSkipZero sets each element a to a/b when
// b >= threshold. Otherwise the element becomes 0 if returnZero is set and
// stays a if not.
//
// Options: WithThreshold (default DefaultBroadcastThreshold), WithPool.
func MatrixVectorBinaryDivSkipZero[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, returnZero bool, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, divSkipZeroOp(T(o.thres), returnZero), o.pool)
}

// MatrixVectorBinaryAdd sets each element a to a+b.
func MatrixVectorBinaryAdd[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, addOp[T], o.pool)
}

// MatrixVectorBinarySub sets each element a to a-b.
func MatrixVectorBinarySub[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, subOp[T], o.pool)
}

// SetSmallValuesZeroMatrix zeroes every row or column whose vector entry is
// below threshold and leaves the rest of the matrix as is.
//
// Options: WithThreshold (default DefaultBroadcastThreshold), WithPool.
func SetSmallValuesZeroMatrix[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, opts ...Option) {
	o := buildOptions(DefaultBroadcastThreshold, opts)
	linalg.MatrixVectorOp(data, vec, nRows, nCols, rowMajor, align, maskSmallOp(T(o.thres)), o.pool)
}

func mulOp[T hwy.Floats](a, b T) T { return a * b }
func divOp[T hwy.Floats](a, b T) T { return a / b }
func addOp[T hwy.Floats](a, b T) T { return a + b }
func subOp[T hwy.Floats](a, b T) T { return a - b }

func mulSkipZeroOp[T hwy.Floats](a, b T) T {
	if b == 0 {
		return a
	}
	return a * b
}

func divSkipZeroOp[T hwy.Floats](thres T, returnZero bool) linalg.BinaryFunc[T] {
	if returnZero {
		return func(a, b T) T {
			if b < thres {
				return 0
			}
			return a / b
		}
	}
	return func(a, b T) T {
		if b < thres {
			return a
		}
		return a / b
	}
}

func maskSmallOp[T hwy.Floats](thres T) linalg.BinaryFunc[T] {
	return func(a, b T) T {
		if b < thres {
			return 0
		}
		return a
	}
}
