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
	"github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"
)

// SignFlip gives every column of a column-major nRows x nCols matrix a
// canonical sign: the column is negated when its element of largest
// magnitude is negative. On ties the first such element in the column wins.
// Columns whose elements are all zero are left alone.
//
// This makes eigenvectors returned by different decompositions (or by the
// same one on different runs) directly comparable. Applying SignFlip twice
// is the same as applying it once.
//
// Options: WithPool.
func SignFlip[T hwy.Floats](inout []T, nRows, nCols int, opts ...Option) {
	if nRows <= 0 || nCols <= 0 {
		return
	}
	o := buildOptions(DefaultThreshold, opts)
	inout = inout[:nRows*nCols]

	pool := o.pool
	if pool == nil {
		pool = workerpool.Default()
	}

	// Small matrices are not worth a hand-off to the workers.
	if nRows*nCols < pool.MinChunk() {
		for j := range nCols {
			signFlipColumn(inout[j*nRows : (j+1)*nRows])
		}
		return
	}
	pool.ParallelForAtomic(nCols, func(j int) {
		signFlipColumn(inout[j*nRows : (j+1)*nRows])
	})
}

func signFlipColumn[T hwy.Floats](col []T) {
	var maxAbs T
	maxIdx := 0
	for i, v := range col {
		if v < 0 {
			v = -v
		}
		if v > maxAbs {
			maxAbs = v
			maxIdx = i
		}
	}

	if col[maxIdx] < 0 {
		for i := range col {
			col[i] = -col[i]
		}
	}
}
