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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-mlprims/hwy/contrib/matrix"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeApp(t, args...)
	return out, err
}

func executeApp(t *testing.T, args ...string) (string, *app, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd, a := newRootCmd()
	defer a.close()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), a, err
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "--workers", "3", "--min-chunk", "128")
	require.NoError(t, err)
	assert.Contains(t, out, "workers:      3")
	assert.Contains(t, out, "min chunk:    128")
	assert.Contains(t, out, "dispatch:")
}

func TestInfoInvalidEnv(t *testing.T) {
	t.Setenv("MLPRIMS_NUM_WORKERS", "many")
	_, err := execute(t, "info")
	assert.ErrorContains(t, err, "MLPRIMS_NUM_WORKERS")
}

func TestBenchList(t *testing.T) {
	out, err := execute(t, "bench", "--op", "list")
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Equal(t, opNames(), names)
	assert.Contains(t, names, "ratio")
	assert.Contains(t, names, "divskipzero")
	assert.IsNonDecreasing(t, names)
}

func TestBenchEveryOp(t *testing.T) {
	for _, dtype := range []string{"f32", "f64"} {
		for _, op := range opNames() {
			t.Run(dtype+"/"+op, func(t *testing.T) {
				out, err := execute(t, "bench", "--op", op, "--dtype", dtype,
					"--rows", "16", "--cols", "8", "--iters", "2", "--callers", "3",
					"--workers", "2", "--min-chunk", "1")
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(out, op+" "+dtype+" 16x8"), "got %q", out)
				assert.Contains(t, out, "ns/elem")
			})
		}
	}
}

func TestBenchN(t *testing.T) {
	out, err := execute(t, "bench", "--op", "power", "--n", "100", "--iters", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "100x1")
}

func TestBenchInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown op", []string{"--op", "gemm"}, "unknown operator"},
		{"unknown dtype", []string{"--op", "power", "--dtype", "f16"}, "unknown dtype"},
		{"bad shape", []string{"--op", "add", "--rows", "0"}, "invalid shape"},
		{"bad iters", []string{"--op", "add", "--iters", "0"}, "--iters"},
		{"bad callers", []string{"--op", "add", "--callers", "-1"}, "--callers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a, err := executeApp(t, append([]string{"bench"}, tt.args...)...)
			assert.ErrorContains(t, err, tt.want)
			// The pool was started before RunE failed and must still be shut down.
			require.NotNil(t, a.pool)
			assert.True(t, a.pool.Closed())
		})
	}
}

func TestBuffersValidate(t *testing.T) {
	b := &buffers[float32]{
		data: make([]float32, 6),
		vec:  make([]float32, 3),
		out:  make([]float32, 6),
		rows: 2,
		cols: 3,
	}
	require.NoError(t, b.validate())

	b.out = b.out[:5]
	assert.ErrorIs(t, b.validate(), matrix.ErrLengthMismatch)

	b.out = make([]float32, 6)
	b.vec = b.vec[:2]
	assert.ErrorIs(t, b.validate(), matrix.ErrVectorLength)
}
