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

// Package matrix provides elementwise and broadcast operators over dense
// matrices stored in flat, caller-owned slices. They are the building blocks
// of PCA-style post-processing: squaring singular values, explained variance
// ratios, whitening, and eigenvector sign normalization.
//
// # Elementwise operators
//
//   - Power, PowerTo: x*x*scalar
//   - SqrtScale, SqrtScaleTo: sqrt(x*scalar), optional clamp of negatives
//   - Reciprocal, ReciprocalTo: scalar/x, optional zero guard
//   - SetSmallValuesZero: x <= threshold becomes 0
//   - Ratio: x / sum(x), skipped when the sum is 0
//   - SignFlip: per-column sign normalization of a column-major matrix
//
// # Broadcast operators
//
// MatrixVectorBinaryMult, MatrixVectorBinaryMultSkipZero,
// MatrixVectorBinaryDiv, MatrixVectorBinaryDivSkipZero,
// MatrixVectorBinaryAdd, MatrixVectorBinarySub and SetSmallValuesZeroMatrix
// combine each matrix element with one entry of a vector. The layout flag
// says how the matrix is stored; the Alignment says whether the vector has
// one entry per column or one per row.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mlprims/hwy/contrib/matrix"
//
//	// explained variance ratio from singular values
//	matrix.PowerTo(sv, variance, matrix.WithScalar(1/float64(nSamples-1)))
//	matrix.Ratio(variance, ratio)
//
//	// scale each column of a row-major matrix
//	matrix.MatrixVectorBinaryMult(data, scale, nRows, nCols, true, matrix.PerColumn)
//
// Optional parameters (scalar, threshold, the zero guards, the worker pool)
// are passed as Options. The operators do not validate buffer sizes (see
// ValidateShape and ValidateBroadcast) and the only scratch memory is the
// per-worker partial sums of Ratio.
//
// Operators are safe to call concurrently on disjoint buffers.
package matrix
