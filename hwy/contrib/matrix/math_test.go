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
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mlprims/hwy"
)

func TestPower(t *testing.T) {
	t.Run("float32", testPower[float32])
	t.Run("float64", testPower[float64])
}

func testPower[T hwy.Floats](t *testing.T) {
	pool := newTestPool(t)
	tests := []struct {
		x, scalar, want T
	}{
		{2, 1, 4},
		{-3, 1, 9},
		{0, 5, 0},
		{1.5, 2, 4.5},
		{-4, -0.5, -8},
	}
	for _, tt := range tests {
		v := []T{tt.x}
		Power(v, WithScalar(float64(tt.scalar)), WithPool(pool))
		assert.Equal(t, tt.want, v[0], "Power(%v, scalar=%v)", tt.x, tt.scalar)

		in := []T{tt.x}
		out := []T{-1}
		PowerTo(in, out, WithScalar(float64(tt.scalar)), WithPool(pool))
		assert.Equal(t, tt.want, out[0], "PowerTo(%v, scalar=%v)", tt.x, tt.scalar)
		assert.Equal(t, tt.x, in[0], "PowerTo modified its input")
	}

	// Omitted scalar is the identity.
	v := []T{1, 2, 3}
	Power(v)
	assert.Equal(t, []T{1, 4, 9}, v)
}

func TestPowerLarge(t *testing.T) {
	pool := newTestPool(t)
	rng := rand.New(rand.NewPCG(1, 1))
	in := randSlice[float32](rng, 10007, -3, 3)
	out := make([]float32, len(in))

	PowerTo(in, out, WithScalar(0.5), WithPool(pool))
	for i, x := range in {
		require.Equal(t, x*x*0.5, out[i], "index %d", i)
	}
}

func TestSqrtScale(t *testing.T) {
	t.Run("float32", testSqrtScale[float32])
	t.Run("float64", testSqrtScale[float64])
}

func testSqrtScale[T hwy.Floats](t *testing.T) {
	pool := newTestPool(t)
	eps := epsilonFor[T]()

	for _, x := range []float64{0, 0.25, 1, 2, 9, 1e6} {
		for _, s := range []float64{1, 0.5, 4} {
			want := math.Sqrt(x * s)

			v := []T{T(x)}
			SqrtScale(v, WithScalar(s), WithPool(pool))
			assert.InDelta(t, want, float64(v[0]), eps*math.Max(1, want), "SqrtScale(%v, %v)", x, s)

			out := []T{0}
			SqrtScaleTo([]T{T(x)}, out, WithScalar(s), WithPool(pool))
			assert.InDelta(t, want, float64(out[0]), eps*math.Max(1, want), "SqrtScaleTo(%v, %v)", x, s)
		}
	}
}

func TestSqrtScaleNegative(t *testing.T) {
	pool := newTestPool(t)

	// In-place form has no clamp.
	v := []float64{-4}
	SqrtScale(v, WithClampNegative(), WithPool(pool))
	assert.True(t, math.IsNaN(v[0]), "SqrtScale(-4) = %v, want NaN", v[0])

	out := []float64{7}
	SqrtScaleTo([]float64{-4}, out, WithPool(pool))
	assert.True(t, math.IsNaN(out[0]), "SqrtScaleTo(-4) = %v, want NaN", out[0])

	in := []float32{-4, 4, -0.5, 0}
	out32 := make([]float32, len(in))
	SqrtScaleTo(in, out32, WithClampNegative(), WithPool(pool))
	assert.Equal(t, []float32{0, 2, 0, 0}, out32)
}

func TestReciprocal(t *testing.T) {
	t.Run("float32", testReciprocal[float32])
	t.Run("float64", testReciprocal[float64])
}

func testReciprocal[T hwy.Floats](t *testing.T) {
	pool := newTestPool(t)

	v := []T{2, -4, 0.5, 8}
	Reciprocal(v, WithPool(pool))
	assert.Equal(t, []T{0.5, -0.25, 2, 0.125}, v)

	v = []T{2, -4, 0.5, 8}
	Reciprocal(v, WithScalar(3), WithPool(pool))
	assert.Equal(t, []T{1.5, -0.75, 6, 0.375}, v)

	in := []T{2, -4}
	out := []T{0, 0}
	ReciprocalTo(in, out, WithScalar(2), WithPool(pool))
	assert.Equal(t, []T{1, -0.5}, out)
	assert.Equal(t, []T{2, -4}, in)
}

func TestReciprocalSetZero(t *testing.T) {
	pool := newTestPool(t)

	// x <= thres becomes 0, including every negative value.
	v := []float64{0, 1e-16, 1e-15, -3, 2, 0.25}
	Reciprocal(v, WithSetZero(), WithPool(pool))
	assert.Equal(t, []float64{0, 0, 0, 0, 0.5, 4}, v)

	v = []float64{0.05, 0.5, 5}
	Reciprocal(v, WithSetZero(), WithThreshold(0.1), WithPool(pool))
	assert.Equal(t, []float64{0, 2, 0.2}, v)

	// Without the guard a zero divides by zero.
	v = []float64{0, math.Copysign(0, -1)}
	Reciprocal(v, WithPool(pool))
	assert.True(t, math.IsInf(v[0], 1))
	assert.True(t, math.IsInf(v[1], -1))
}

func TestReciprocalToIgnoresSetZero(t *testing.T) {
	out := []float32{9}
	ReciprocalTo([]float32{0}, out, WithSetZero())
	assert.True(t, math.IsInf(float64(out[0]), 1), "got %v", out[0])
}

func TestSetSmallValuesZero(t *testing.T) {
	t.Run("float32", testSetSmallValuesZero[float32])
	t.Run("float64", testSetSmallValuesZero[float64])
}

func testSetSmallValuesZero[T hwy.Floats](t *testing.T) {
	pool := newTestPool(t)

	v := []T{1e-16, 1e-15, 0, -1, 1e-10, 3}
	SetSmallValuesZero(v, WithPool(pool))
	assert.Equal(t, []T{0, 0, 0, 0, 1e-10, 3}, v)

	v = []T{0.5, 1, 1.5}
	SetSmallValuesZero(v, WithThreshold(1), WithPool(pool))
	assert.Equal(t, []T{0, 0, 1.5}, v)
}

func TestSetSmallValuesZeroIdempotent(t *testing.T) {
	pool := newTestPool(t)
	rng := rand.New(rand.NewPCG(2, 2))
	v := randSlice[float64](rng, 5000, -1, 1)

	SetSmallValuesZero(v, WithThreshold(0.25), WithPool(pool))
	once := clone(v)
	SetSmallValuesZero(v, WithThreshold(0.25), WithPool(pool))
	assert.Equal(t, once, v)
}

func TestRatio(t *testing.T) {
	t.Run("float32", testRatio[float32])
	t.Run("float64", testRatio[float64])
}

func testRatio[T hwy.Floats](t *testing.T) {
	pool := newTestPool(t)
	eps := epsilonFor[T]()

	src := []T{1, 2, 3}
	dst := make([]T, 3)
	Ratio(src, dst, WithPool(pool))

	want := []float64{1.0 / 6, 2.0 / 6, 3.0 / 6}
	var sum float64
	for i := range want {
		assert.InDelta(t, want[i], float64(dst[i]), eps)
		sum += float64(dst[i])
	}
	assert.InDelta(t, 1, sum, 3*eps)
	assert.Equal(t, []T{1, 2, 3}, src)
}

func TestRatioZeroTotal(t *testing.T) {
	pool := newTestPool(t)

	dst := []float64{7, 8, 9}
	Ratio([]float64{0, 0, 0}, dst, WithPool(pool))
	assert.Equal(t, []float64{7, 8, 9}, dst)

	// Entries cancel out: still a zero total.
	dst = []float64{7, 8}
	Ratio([]float64{2, -2}, dst, WithPool(pool))
	assert.Equal(t, []float64{7, 8}, dst)
}

func TestRatioInPlaceUsesOriginalTotal(t *testing.T) {
	pool := newTestPool(t)
	rng := rand.New(rand.NewPCG(3, 3))
	v := randSlice[float64](rng, 20000, 0, 1)
	orig := clone(v)

	var total float64
	for _, x := range orig {
		total += x
	}

	Ratio(v, v, WithPool(pool))
	var sum float64
	for i := range v {
		require.InDelta(t, orig[i]/total, v[i], 1e-12, "index %d", i)
		sum += v[i]
	}
	assert.InDelta(t, 1, sum, 1e-9)
}

func TestRatioEmpty(t *testing.T) {
	Ratio([]float32{}, []float32{})
	dst := []float32{5}
	Ratio(nil, dst)
	assert.Equal(t, []float32{5}, dst)
}

func TestOperatorsAgreeAcrossPools(t *testing.T) {
	seq := newSequentialPool(t)
	par := newTestPool(t)
	rng := rand.New(rand.NewPCG(4, 4))
	in := randSlice[float64](rng, 4099, -2, 2)

	ops := map[string]func([]float64, ...Option){
		"Power":              func(v []float64, o ...Option) { Power(v, append(o, WithScalar(3))...) },
		"SqrtScale":          func(v []float64, o ...Option) { SqrtScale(v, o...) },
		"Reciprocal":         func(v []float64, o ...Option) { Reciprocal(v, append(o, WithSetZero())...) },
		"SetSmallValuesZero": func(v []float64, o ...Option) { SetSmallValuesZero(v, o...) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			a, b := clone(in), clone(in)
			op(a, WithPool(seq))
			op(b, WithPool(par))
			require.Equal(t, len(a), len(b))
			for i := range a {
				if math.IsNaN(a[i]) {
					require.True(t, math.IsNaN(b[i]), "index %d", i)
					continue
				}
				require.Equal(t, a[i], b[i], fmt.Sprintf("index %d", i))
			}
		})
	}
}
