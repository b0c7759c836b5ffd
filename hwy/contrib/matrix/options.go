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

import "github.com/ajroetker/go-mlprims/hwy/contrib/workerpool"

// Default thresholds.
const (
	// DefaultThreshold bounds "small" values for SetSmallValuesZero and the
	// zero guard of Reciprocal.
	DefaultThreshold = 1e-15

	// DefaultBroadcastThreshold bounds "small" broadcast vector entries for
	// MatrixVectorBinaryDivSkipZero and SetSmallValuesZeroMatrix.
	DefaultBroadcastThreshold = 1e-10
)

// Option customizes a single operator call. Options an operator does not
// use are ignored.
type Option func(*options)

type options struct {
	scalar        float64
	thres         float64
	setZero       bool
	clampNegative bool
	pool          *workerpool.Pool
}

// WithScalar sets the per-call multiplier (default 1). It is converted to
// the element type of the buffer.
func WithScalar(s float64) Option {
	return func(o *options) { o.scalar = s }
}

// WithThreshold overrides the "small value" boundary of the operator.
func WithThreshold(thres float64) Option {
	return func(o *options) { o.thres = thres }
}

// WithSetZero makes the in-place Reciprocal write 0 for elements <= threshold.
func WithSetZero() Option {
	return func(o *options) { o.setZero = true }
}

// WithClampNegative makes SqrtScaleTo write 0 for negative inputs.
func WithClampNegative() Option {
	return func(o *options) { o.clampNegative = true }
}

// WithPool runs the operator on pool instead of workerpool.Default().
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) { o.pool = pool }
}

func buildOptions(defaultThres float64, opts []Option) options {
	o := options{scalar: 1, thres: defaultThres}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
