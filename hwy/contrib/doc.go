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

// Package contrib groups the packages built on top of hwy.
//
// # Subpackages
//
//   - workerpool: persistent worker pool shared by all operators
//   - linalg: parallel apply engines (elementwise, matrix-vector, sum)
//   - matrix: the elementwise and broadcast operators used by PCA-style
//     post-processing
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mlprims/hwy/contrib/matrix"
//
//	matrix.PowerTo(sv, variance, matrix.WithScalar(1/float64(nSamples-1)))
//	matrix.Ratio(variance, ratio)
//	matrix.SignFlip(components, nFeatures, nComponents)
//
// Set MLPRIMS_NUM_WORKERS, MLPRIMS_MIN_CHUNK or MLPRIMS_SEQUENTIAL to tune
// the default pool, and MLPRIMS_NO_SIMD to make chunk boundaries independent
// of the CPU.
package contrib
