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

// Alignment selects which matrix index picks the broadcast vector entry.
type Alignment int

const (
	// PerColumn applies vec[j] to every element of column j; len(vec) == nCols.
	PerColumn Alignment = iota

	// PerRow applies vec[i] to every element of row i; len(vec) == nRows.
	PerRow
)

// String returns "per-column" or "per-row".
func (a Alignment) String() string {
	switch a {
	case PerColumn:
		return "per-column"
	case PerRow:
		return "per-row"
	default:
		return "unknown"
	}
}

// VectorLen returns the broadcast vector length a matrix of the given shape needs.
func (a Alignment) VectorLen(nRows, nCols int) int {
	if a == PerRow {
		return nRows
	}
	return nCols
}

// MatrixVectorOp sets every element data[idx] of an nRows x nCols matrix to
// op(data[idx], vec[k]), where k is the element's column index for PerColumn
// or its row index for PerRow. rowMajor gives the layout of data.
//
// The matrix is processed as lines (rows when rowMajor, columns otherwise).
// When the vector is indexed by the line, its entry is loaded once per line;
// otherwise the line walks vec in step with data.
func MatrixVectorOp[T hwy.Floats](data, vec []T, nRows, nCols int, rowMajor bool, align Alignment, op BinaryFunc[T], pool *workerpool.Pool) {
	n := nRows * nCols
	if n <= 0 {
		return
	}
	data = data[:n]

	lineLen := nRows
	if rowMajor {
		lineLen = nCols
	}
	perLine := (rowMajor && align == PerRow) || (!rowMajor && align == PerColumn)

	poolOrDefault(pool).ParallelForGrain(n, hwy.MaxLanes[T](), func(start, end int) {
		line, k := start/lineLen, start%lineLen
		for i := start; i < end; {
			stop := min(end, i+lineLen-k)
			seg := data[i:stop]
			if perLine {
				b := vec[line]
				for x, a := range seg {
					seg[x] = op(a, b)
				}
			} else {
				v := vec[k : k+len(seg)]
				for x, a := range seg {
					seg[x] = op(a, v[x])
				}
			}
			i = stop
			line++
			k = 0
		}
	})
}
