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

package hwy

import (
	"math"

	"github.com/chewxy/math32"
)

// MaxVecLanes is the lane capacity of a Vec: one 512-bit register of float32.
const MaxVecLanes = 16

// Vec is a portable vector of MaxLanes[T]() elements. It is a value type
// backed by a fixed array, so creating and combining vectors never allocates.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Floats] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Mask is the result of a lane-wise comparison, consumed by IfThenElse.
type Mask[T Floats] struct {
	bits [MaxVecLanes]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits[:m.n] {
		if bit {
			return true
		}
	}
	return false
}

func vecLanes[T Floats]() int {
	return min(MaxLanes[T](), MaxVecLanes)
}

// Load creates a vector from the first lanes of src. When src is shorter
// than a vector the remaining lanes are zero.
func Load[T Floats](src []T) Vec[T] {
	v := Vec[T]{n: vecLanes[T]()}
	copy(v.data[:v.n], src)
	return v
}

// Store writes the vector to dst, stopping early if dst is shorter.
func Store[T Floats](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Floats](value T) Vec[T] {
	v := Vec[T]{n: vecLanes[T]()}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: vecLanes[T]()}
}

// Add performs element-wise addition.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] += b.data[i]
	}
	return a
}

// Mul performs element-wise multiplication.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] *= b.data[i]
	}
	return a
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	a.n = min(a.n, b.n)
	for i := range a.n {
		a.data[i] /= b.data[i]
	}
	return a
}

// Sqrt computes the square root of every lane. float32 lanes use math32
// and never round-trip through float64.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	var zero T
	if _, ok := any(zero).(float32); ok {
		for i := range v.n {
			v.data[i] = T(math32.Sqrt(float32(v.data[i])))
		}
		return v
	}
	for i := range v.n {
		v.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return v
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] < b.data[i]
	}
	return m
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.data[i] <= b.data[i]
	}
	return m
}

// IfThenElse returns a where mask is true and b elsewhere.
func IfThenElse[T Floats](mask Mask[T], a, b Vec[T]) Vec[T] {
	b.n = min(mask.n, a.n, b.n)
	for i := range b.n {
		if mask.bits[i] {
			b.data[i] = a.data[i]
		}
	}
	return b
}

// IfThenElseZero returns a where mask is true and zero elsewhere.
func IfThenElseZero[T Floats](mask Mask[T], a Vec[T]) Vec[T] {
	a.n = min(mask.n, a.n)
	for i := range a.n {
		if !mask.bits[i] {
			a.data[i] = 0
		}
	}
	return a
}

// ReduceSum sums all lanes in lane order.
func ReduceSum[T Floats](v Vec[T]) T {
	var sum T
	for _, x := range v.data[:v.n] {
		sum += x
	}
	return sum
}
