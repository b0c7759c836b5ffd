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
	"errors"
	"fmt"

	"github.com/ajroetker/go-mlprims/hwy"
)

// Sentinel errors returned (wrapped) by the Validate functions. The
// operators themselves never validate; callers that cannot guarantee shapes
// run a validator first.
var (
	ErrLengthMismatch = errors.New("buffer length mismatch")
	ErrVectorLength   = errors.New("broadcast vector length mismatch")
	ErrInvalidShape   = errors.New("invalid matrix shape")
)

func matrixErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("matrix: %s: %w: "+format, append([]any{op, err}, args...)...)
}

// ValidateLen checks that out can hold every element of in.
func ValidateLen[T hwy.Floats](in, out []T) error {
	if len(out) != len(in) {
		return matrixErrorf("ValidateLen", ErrLengthMismatch, "len(in)=%d, len(out)=%d", len(in), len(out))
	}
	return nil
}

// ValidateShape checks that data holds exactly an nRows x nCols matrix.
func ValidateShape[T hwy.Floats](data []T, nRows, nCols int) error {
	if nRows < 0 || nCols < 0 {
		return matrixErrorf("ValidateShape", ErrInvalidShape, "%dx%d", nRows, nCols)
	}
	if len(data) != nRows*nCols {
		return matrixErrorf("ValidateShape", ErrLengthMismatch, "len(data)=%d, want %d", len(data), nRows*nCols)
	}
	return nil
}

// ValidateBroadcast checks data against the shape and vec against align.
func ValidateBroadcast[T hwy.Floats](data, vec []T, nRows, nCols int, align Alignment) error {
	if err := ValidateShape(data, nRows, nCols); err != nil {
		return err
	}
	if want := align.VectorLen(nRows, nCols); len(vec) != want {
		return matrixErrorf("ValidateBroadcast", ErrVectorLength, "len(vec)=%d, want %d (%s)", len(vec), want, align)
	}
	return nil
}
